package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/config"
	"github.com/lgbarn/chesscodec-go/internal/errors"
	"github.com/lgbarn/chesscodec-go/internal/movecode"
)

func newMoveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Pack and unpack 32-bit move records",
	}
	cmd.AddCommand(newMoveEncodeCmd(a), newMoveDecodeCmd(a))
	return cmd
}

type moveFlags struct {
	piece, colour      string
	from, to           string
	kind               string
	captured, promoted string
	checks             int
	canGoTo, sameRow   bool
}

func newMoveEncodeCmd(a *app) *cobra.Command {
	var f moveFlags
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the packed value of a move",
		Example: `  chesscodec move encode --piece N --from g1 --to f3
  chesscodec move encode --piece P --colour black --from e7 --to e8 --kind Promote --promoted Q`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := f.spec()
			if err != nil {
				return err
			}
			rec, err := movecode.NewRecord(spec)
			if err != nil {
				return err
			}
			a.printf("%d\n", movecode.Encode(rec))
			a.cfg.Logf(2, "%s (0x%08x)", a.render(rec), rec.Packed())
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.piece, "piece", "", "Moved piece letter: P N B R Q K")
	fl.StringVar(&f.colour, "colour", "white", "Mover colour: white or black")
	fl.StringVar(&f.from, "from", "", "Origin square")
	fl.StringVar(&f.to, "to", "", "Destination square")
	fl.StringVar(&f.kind, "kind", chess.Normal.String(), "Move kind, e.g. Capture or ShortCastle")
	fl.StringVar(&f.captured, "captured", "", "Captured piece letter")
	fl.StringVar(&f.promoted, "promoted", "", "Promoted piece letter")
	fl.IntVar(&f.checks, "checks", 0, "Checks given, 0-3")
	fl.BoolVar(&f.canGoTo, "can-go-to", false, "Another identical piece can reach the destination")
	fl.BoolVar(&f.sameRow, "same-row", false, "That other piece stands on the same rank")
	_ = cmd.MarkFlagRequired("piece")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (f *moveFlags) spec() (movecode.Spec, error) {
	var s movecode.Spec
	var err error

	if s.Moved.Type, err = parsePieceFlag(f.piece); err != nil {
		return s, err
	}
	switch f.colour {
	case "white", "w":
		s.Moved.Colour = chess.White
	case "black", "b":
		s.Moved.Colour = chess.Black
	default:
		return s, errors.Format("move encode", f.colour, "colour must be white or black")
	}
	if s.From, err = chess.ParseSquare(f.from); err != nil {
		return s, err
	}
	if s.To, err = chess.ParseSquare(f.to); err != nil {
		return s, err
	}
	if s.Kind, err = chess.ParseMoveKind(f.kind); err != nil {
		return s, err
	}
	if s.Captured, err = parsePieceFlag(f.captured); err != nil {
		return s, err
	}
	if s.Promoted, err = parsePieceFlag(f.promoted); err != nil {
		return s, err
	}
	s.Checks = f.checks
	s.OtherPieceCanGoTo = f.canGoTo
	s.OtherPieceSameRow = f.sameRow
	return s, nil
}

func parsePieceFlag(v string) (chess.PieceType, error) {
	switch len(v) {
	case 0:
		return chess.NoPiece, nil
	case 1:
		return chess.ParsePieceType(v[0])
	}
	return chess.NoPiece, errors.Format("move encode", v, "want a single piece letter")
}

func newMoveDecodeCmd(a *app) *cobra.Command {
	var verboseFields bool
	cmd := &cobra.Command{
		Use:   "decode <value>",
		Short: "Print the move held in a packed value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 0, 64)
			if err != nil {
				return errors.Format("move decode", args[0], "not an integer")
			}
			rec, err := movecode.Decode(v)
			if err != nil {
				return err
			}
			if rec == nil {
				a.printf("no move\n")
				return nil
			}
			a.printf("%s\n", a.render(rec))
			if verboseFields {
				a.printMoveFields(rec)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&verboseFields, "fields", false, "Also print every decoded field")
	return cmd
}

// render prints rec in the configured notation.
func (a *app) render(rec *movecode.Record) string {
	if a.cfg.Notation == config.LAN {
		return rec.LAN()
	}
	return rec.SAN()
}

func (a *app) printMoveFields(rec *movecode.Record) {
	a.printf("moved:     %s\n", rec.Moved())
	a.printf("from:      %s\n", rec.From())
	a.printf("to:        %s\n", rec.To())
	a.printf("kind:      %s\n", rec.Kind())
	a.printf("captured:  %s\n", rec.Captured())
	a.printf("promoted:  %s\n", rec.Promoted())
	a.printf("checks:    %d\n", rec.Checks())
	a.printf("can-go-to: %t\n", rec.OtherPieceCanGoTo())
	a.printf("same-row:  %t\n", rec.OtherPieceSameRow())
}
