package main

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chesscodec-go/internal/hashing"
	"github.com/lgbarn/chesscodec-go/internal/worker"
)

const stdinName = "-"

func newHashCmd(a *app) *cobra.Command {
	var (
		dups     bool
		withCID  bool
		failFast bool
	)
	cmd := &cobra.Command{
		Use:   "hash [files...]",
		Short: "Print the content fingerprint of each file, or of stdin",
		Long: `Print "<digest>  <path>" for each file, or for stdin when no file is named.
With --cid a CIDv1 (raw codec, truncated sha2-256) is printed after the digest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := hashing.NewHasher(hashing.WithReadLimit(a.cfg.ReadLimit))

			if len(args) == 0 {
				d, err := h.SumReader(cmd.InOrStdin())
				if err != nil {
					return err
				}
				return a.printDigest(d, stdinName, withCID)
			}

			var opts []worker.HashOption
			var detector *hashing.ThreadSafeDuplicateDetector
			if dups {
				detector = hashing.NewThreadSafeDuplicateDetector(a.cfg.DuplicateCapacity)
				opts = append(opts, worker.WithDetector(detector))
			}
			if failFast {
				opts = append(opts, worker.WithFailFast())
			}

			var failed error
			for _, r := range worker.HashFiles(h, args, a.cfg.Workers, opts...) {
				if r.Err != nil {
					a.cfg.Logf(0, "%s: %v", r.Path, r.Err)
					failed = r.Err
					continue
				}
				if err := a.printDigest(r.Digest, r.Path, withCID); err != nil {
					return err
				}
				if r.DuplicateOf != "" {
					a.cfg.Logf(1, "%s duplicates %s", r.Path, r.DuplicateOf)
				}
			}
			if detector != nil {
				a.reportDuplicates(detector, len(args))
			}
			return failed
		},
	}
	cmd.Flags().BoolVar(&dups, "dups", false, "Report files whose content repeats another")
	cmd.Flags().BoolVar(&withCID, "cid", false, "Also print each digest as a CIDv1")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first unreadable file")
	return cmd
}

func (a *app) printDigest(d hashing.Digest, source string, withCID bool) error {
	if !withCID {
		a.printf("%s  %s\n", d, source)
		return nil
	}
	c, err := d.CID()
	if err != nil {
		return err
	}
	a.printf("%s  %s  %s\n", d, c, source)
	return nil
}

func (a *app) reportDuplicates(detector *hashing.ThreadSafeDuplicateDetector, files int) {
	a.cfg.Logf(1, "%d files, %d unique, %d duplicates",
		files, detector.UniqueCount(), detector.DuplicateCount())
	if detector.IsFull() {
		a.cfg.Logf(1, "duplicate capacity reached; later content was not tracked")
	}

	groups := detector.Duplicates()
	digests := make([]string, 0, len(groups))
	for d := range groups {
		digests = append(digests, string(d))
	}
	sort.Strings(digests)
	for _, d := range digests {
		a.cfg.Logf(2, "%s: %s", d, strings.Join(groups[hashing.Digest(d)], ", "))
	}
}
