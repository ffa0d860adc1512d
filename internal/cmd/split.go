package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"

	"github.com/viniciusth/lmfcs"
	"github.com/viniciusth/lmfcs/internal/config"
	"github.com/viniciusth/lmfcs/internal/fastaio"
	"github.com/viniciusth/lmfcs/internal/report"
)

func newSplitCommand() *cobra.Command {
	splitCmd := &cobra.Command{
		Use:   "split",
		Short: "split two sequence files at their best shared substring",
		Long: `split two sequence files at their best shared substring

The best shared substring is chosen as in "lmfcs find". Every record of each
file is then cut at the occurrences of that substring and written to
<out-dir>/splitted_1.fasta and <out-dir>/splitted_2.fasta, one record per
fragment, named <id>_part<N>. Records are written whole when nothing is
shared.

Inclusion policies:
  following   the substring starts the fragment after the cut
  standalone  the substring is a fragment of its own
  preceding   the substring ends the fragment before the cut
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := getOptions(cmd)
			settings, err := opt.Validate()
			if err != nil {
				return err
			}
			if opt.OutDir == "" {
				return fmt.Errorf("flag -O/--out-dir is needed")
			}
			if err := makeOutDir(opt.OutDir, opt.Force); err != nil {
				return err
			}

			q, err := runQuery(opt, settings)
			if err != nil {
				return err
			}

			if opt.Report != "" {
				if err := writeReport(filepath.Join(opt.OutDir, opt.Report), q.result.Candidates); err != nil {
					return err
				}
			}

			best, ok := q.result.Best()
			log.Info(report.Summary(best, ok))
			patterns, err := splitPatterns(best, ok, opt.BothStrands)
			if err != nil {
				return err
			}

			for i, records := range [][]fastaio.Record{q.records1, q.records2} {
				file := filepath.Join(opt.OutDir, fmt.Sprintf("splitted_%d.fasta", i+1))
				n, err := writeSplit(file, records, patterns, settings, opt)
				if err != nil {
					return err
				}
				log.Infof("%s fragments saved to %s", humanize.Comma(int64(n)), file)
			}
			return nil
		},
	}
	addQueryFlags(splitCmd)
	splitCmd.Flags().StringP("out-dir", "O", "", "output directory")
	splitCmd.Flags().StringP("report", "R", "substrings_frequencies.tsv", `candidate table written into the output directory, "" to skip`)
	splitCmd.Flags().StringP("inclusion", "n", "following", `where the substring goes: "following", "standalone" or "preceding"`)
	splitCmd.Flags().BoolP("both-strands", "b", false, "also split at the reverse complement of the substring")
	splitCmd.Flags().IntP("line-width", "w", fastaio.DefaultLineWidth, "line width of output sequences, 0 for no wrap")
	splitCmd.Flags().BoolP("force", "f", false, "overwrite a non-empty output directory")
	return splitCmd
}

func writeReport(file string, cands []lmfcs.Candidate) error {
	outfh, err := xopen.Wopen(file)
	if err != nil {
		return errors.Wrap(err, file)
	}
	err = report.WriteCandidates(outfh, cands, true)
	if cerr := outfh.Close(); err == nil {
		err = cerr
	}
	return errors.Wrap(err, file)
}

func writeSplit(file string, records []fastaio.Record, patterns []string,
	settings config.Settings, opt *config.Options) (n int, err error) {
	outfh, err := xopen.Wopen(file)
	if err != nil {
		return 0, errors.Wrap(err, file)
	}
	// Compressed output is only complete once Close succeeds.
	defer func() {
		if cerr := outfh.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, file)
		}
	}()

	for _, r := range records {
		frags := lmfcs.SplitSequenceAny(r.Seq, r.ID, patterns, settings.Inclusion)
		log.Debugf("%s: %d bp -> %d fragments", r.ID, len(r.Seq), len(frags))
		if err := fastaio.WriteFragments(outfh, frags, opt.LineWidth); err != nil {
			return n, errors.Wrap(err, file)
		}
		n += len(frags)
	}
	return n, nil
}
