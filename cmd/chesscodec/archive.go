package main

import (
	"io"
	"math/big"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chesscodec-go/internal/errors"
	"github.com/lgbarn/chesscodec-go/internal/hashing"
	"github.com/lgbarn/chesscodec-go/internal/movecode"
	"github.com/lgbarn/chesscodec-go/internal/store"
)

func newArchiveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Store and fetch game text by content fingerprint",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "put <file>",
		Short: "Store a file and print its fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := hashing.NewHasher(hashing.WithReadLimit(a.cfg.ReadLimit))
			data, err := readInput(cmd, args[0], h)
			if err != nil {
				return err
			}
			return a.withArchive(func(ar *store.Archive) error {
				had, err := ar.Has(h.Sum(data))
				if err != nil {
					return err
				}
				d, err := ar.PutContent(data)
				if err != nil {
					return err
				}
				a.printf("%s\n", d)
				if had {
					a.cfg.Logf(1, "%s: already stored as %s", args[0], d)
				} else {
					a.cfg.Logf(2, "stored %d bytes from %s", len(data), args[0])
				}
				return nil
			})
		},
	}, &cobra.Command{
		Use:   "get <digest>",
		Short: "Write the content stored under a fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := hashing.ParseDigest(args[0])
			if err != nil {
				return err
			}
			return a.withArchive(func(ar *store.Archive) error {
				data, err := ar.GetContent(d)
				if err != nil {
					return err
				}
				_, err = a.cfg.OutputFile.Write(data)
				return err
			})
		},
	}, newArchiveListCmd(a), newArchivePositionCmd(a), newArchiveMovesCmd(a))
	return cmd
}

func newArchiveListCmd(a *app) *cobra.Command {
	var positions bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every stored fingerprint",
		Long: `Print every stored fingerprint. With --positions, print every recorded
position instead as "<id> <key> <digest>".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withArchive(func(ar *store.Archive) error {
				if positions {
					return a.listPositions(ar)
				}
				digests, err := ar.Digests()
				if err != nil {
					return err
				}
				for _, d := range digests {
					a.printf("%s\n", d)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&positions, "positions", false, "List positions instead of content")
	return cmd
}

func (a *app) listPositions(ar *store.Archive) error {
	ids, err := ar.Positions()
	if err != nil {
		return err
	}
	for _, id := range ids {
		d, err := ar.GetPosition(id)
		if err != nil {
			return err
		}
		k, err := store.PositionKey(id)
		if err != nil {
			return err
		}
		a.printf("%s %s %s\n", id, k, d)
	}
	return nil
}

func newArchivePositionCmd(a *app) *cobra.Command {
	var asKey bool
	cmd := &cobra.Command{
		Use:   "position <id> [digest]",
		Short: "Record or look up the game holding a position",
		Long: `With a digest, record that position <id> occurs in that game.
Without one, print the recorded digest and the position's printable key.
The id is decimal; with --key it is a printable key from an earlier lookup.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePositionID(args[0], asKey)
			if err != nil {
				return err
			}
			return a.withArchive(func(ar *store.Archive) error {
				if len(args) == 2 {
					d, err := hashing.ParseDigest(args[1])
					if err != nil {
						return err
					}
					return ar.PutPosition(id, d)
				}
				d, err := ar.GetPosition(id)
				if err != nil {
					return err
				}
				k, err := store.PositionKey(id)
				if err != nil {
					return err
				}
				a.printf("%s %s\n", d, k)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&asKey, "key", "k", false, "Read <id> as a printable position key")
	return cmd
}

// parsePositionID reads a decimal identifier, or a printable key when asKey
// is set. Keys may consist of ASCII digits only, so the form is never guessed.
func parsePositionID(s string, asKey bool) (*big.Int, error) {
	if asKey {
		return store.ParsePositionKey(s)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Format("archive position", s, "not a decimal id (use --key for printable keys)")
	}
	return v, nil
}

func newArchiveMovesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "moves <digest> [values...]",
		Short: "Store or print the packed move list of a game",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := hashing.ParseDigest(args[0])
			if err != nil {
				return err
			}
			if len(args) > 1 {
				moves := make([]*movecode.Record, 0, len(args)-1)
				for _, arg := range args[1:] {
					v, err := strconv.ParseInt(arg, 0, 64)
					if err != nil {
						return errors.Format("archive moves", arg, "not an integer")
					}
					r, err := movecode.Decode(v)
					if err != nil {
						return err
					}
					moves = append(moves, r)
				}
				return a.withArchive(func(ar *store.Archive) error {
					return ar.PutMoves(d, moves)
				})
			}
			return a.withArchive(func(ar *store.Archive) error {
				moves, err := ar.GetMoves(d)
				if err != nil {
					return err
				}
				for i, m := range moves {
					if m == nil {
						a.printf("%d. -\n", i+1)
						continue
					}
					a.printf("%d. %s\n", i+1, a.render(m))
				}
				return nil
			})
		},
	}
}

// withArchive opens the configured archive for the duration of fn.
func (a *app) withArchive(fn func(*store.Archive) error) error {
	ar, err := store.Open(a.cfg.DataDir, nil)
	if err != nil {
		return err
	}
	a.cfg.Logf(2, "opened archive %s", a.cfg.DataDir)
	if err := fn(ar); err != nil {
		return errors.Join(err, ar.Close())
	}
	return ar.Close()
}

// readInput reads path, or stdin when path is "-", within h's read limit.
func readInput(cmd *cobra.Command, path string, h *hashing.Hasher) ([]byte, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != stdinName {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return h.ReadAll(r)
}
