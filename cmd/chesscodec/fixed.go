package main

import (
	"encoding/hex"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chesscodec-go/internal/errors"
	"github.com/lgbarn/chesscodec-go/internal/fixedwidth"
)

func newFixedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixed",
		Short: "Convert position identifiers to and from 25-byte records",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "encode <decimal>",
		Short: "Print the 25-byte record of an identifier as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseDecimal(args[0])
			if err != nil {
				return err
			}
			rec, err := fixedwidth.Encode(v)
			if err != nil {
				return err
			}
			a.printf("%s\n", hex.EncodeToString(rec))
			return nil
		},
	}, &cobra.Command{
		Use:   "decode <hex>",
		Short: "Print the identifier held in a 25-byte hex record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := hex.DecodeString(args[0])
			if err != nil {
				return errors.Format("fixed decode", args[0], err.Error())
			}
			v, err := fixedwidth.Decode(rec)
			if err != nil {
				return err
			}
			a.printf("%s\n", v.String())
			return nil
		},
	})
	return cmd
}

func parseDecimal(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Format("parse", s, "not a decimal integer")
	}
	return v, nil
}
