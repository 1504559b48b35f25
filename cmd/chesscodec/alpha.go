package main

import (
	"github.com/spf13/cobra"

	"github.com/lgbarn/chesscodec-go/internal/alphabet"
)

func newAlphaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alpha",
		Short: "Convert identifiers to and from printable base-63336 text",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "encode <decimal>",
		Short: "Print the alphabet text of an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseDecimal(args[0])
			if err != nil {
				return err
			}
			s, err := alphabet.Encode(v)
			if err != nil {
				return err
			}
			a.printf("%s\n", s)
			return nil
		},
	}, &cobra.Command{
		Use:   "decode <text>",
		Short: "Print the identifier held in alphabet text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := alphabet.Decode(args[0])
			if err != nil {
				return err
			}
			a.printf("%s\n", v.String())
			return nil
		},
	})
	return cmd
}
