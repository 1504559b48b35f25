package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chesscodec-go/internal/config"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		configPath string
		verbose    int
		quiet      bool
	)

	root := &cobra.Command{
		Use:   "chesscodec",
		Short: "Encode and decode stored chess values",
		Long: `chesscodec converts the compact values a chess database stores:

  - position identifiers as 25-byte records or printable keys
  - board squares as 6-bit codes
  - moves as packed 32-bit integers
  - game files as short base-62 content fingerprints`,
		Version:      programVersion,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				if p := config.DefaultConfigPath(); fileExists(p) {
					path = p
				}
			}
			b := config.NewConfigBuilder()
			if path != "" {
				cfg, err := config.LoadConfig(path)
				if err != nil {
					return err
				}
				b = config.NewConfigBuilderFrom(cfg)
			}
			b.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err := applyFlags(cmd, b); err != nil {
				return err
			}
			if quiet {
				b.WithVerbosity(0)
			} else if cmd.Flags().Changed("verbose") {
				b.WithVerbosity(verbose)
			}
			a.cfg = b.Build()
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if path != "" {
				a.cfg.Logf(2, "config: loaded %s", path)
			}
			a.cfg.Logf(2, "config: data_dir=%s workers=%d notation=%s", a.cfg.DataDir, a.cfg.Workers, a.cfg.Notation)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file (default ~/.config/chesscodec/config.yaml if present)")
	pf.CountVarP(&verbose, "verbose", "v", "Increase verbosity (repeatable)")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostics")
	pf.StringP("data-dir", "d", "", "Archive directory")
	pf.Int("workers", 0, "Parallel hashing workers")
	pf.Int("read-limit", 0, "Largest input to hash, in bytes")
	pf.String("notation", "", "Move notation: san or lan")

	root.AddCommand(
		newFixedCmd(a),
		newAlphaCmd(a),
		newSquareCmd(a),
		newMoveCmd(a),
		newHashCmd(a),
		newArchiveCmd(a),
		newConfigCmd(a),
	)
	return root
}

// applyFlags overrides config values with any flags given explicitly.
func applyFlags(cmd *cobra.Command, b *config.ConfigBuilder) error {
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		dir, _ := flags.GetString("data-dir")
		b.WithDataDir(dir)
	}
	if flags.Changed("workers") {
		n, _ := flags.GetInt("workers")
		b.WithWorkers(n)
	}
	if flags.Changed("read-limit") {
		n, _ := flags.GetInt("read-limit")
		b.WithReadLimit(n)
	}
	if flags.Changed("notation") {
		s, _ := flags.GetString("notation")
		n, err := config.ParseNotation(s)
		if err != nil {
			return err
		}
		b.WithNotation(n)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// printf writes to the command's output.
func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.cfg.OutputFile, format, args...)
}
