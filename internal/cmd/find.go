package cmd

import (
	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"

	"github.com/viniciusth/lmfcs/internal/report"
)

func newFindCommand() *cobra.Command {
	findCmd := &cobra.Command{
		Use:   "find",
		Short: "list substrings shared by two sequence files",
		Long: `list substrings shared by two sequence files

All records of a file are searched as one sequence. Every shared substring
that passes the length filter is written as "substring, freq1, freq2",
best first. Frequencies count overlapping occurrences.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := getOptions(cmd)
			settings, err := opt.Validate()
			if err != nil {
				return err
			}

			q, err := runQuery(opt, settings)
			if err != nil {
				return err
			}

			outfh, err := xopen.Wopen(opt.Report)
			if err != nil {
				return errors.Wrap(err, opt.Report)
			}
			err = report.WriteCandidates(outfh, q.result.Candidates, !getFlagBool(cmd, "no-header"))
			if cerr := outfh.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return errors.Wrap(err, opt.Report)
			}
			log.Info(report.Summary(q.result.Best()))
			return nil
		},
	}
	addQueryFlags(findCmd)
	findCmd.Flags().StringP("out-file", "o", "-", `out file ("-" for stdout, ".gz" for gzipped output)`)
	findCmd.Flags().BoolP("no-header", "H", false, "do not write the header line")
	return findCmd
}
