package main

import (
	"github.com/spf13/cobra"

	"github.com/lgbarn/chesscodec-go/internal/bitpack"
	"github.com/lgbarn/chesscodec-go/internal/chess"
)

func newSquareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "square",
		Short: "Convert board squares to and from 6-bit codes",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "encode <square>",
		Short: "Print the bits and code of a square such as e4",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sq, err := chess.ParseSquare(args[0])
			if err != nil {
				return err
			}
			a.printf("%s %d\n", sq.Bits(), sq.Code())
			return nil
		},
	}, &cobra.Command{
		Use:   "decode <bits>",
		Short: "Print the square named by six binary digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bitpack.ParseBits(args[0])
			if err != nil {
				return err
			}
			sq, err := chess.DecodeSquare(b)
			if err != nil {
				return err
			}
			a.printf("%s\n", sq)
			return nil
		},
	})
	return cmd
}
