// Package cmd implements the lmfcs command line.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/viniciusth/lmfcs/internal/config"
	"github.com/viniciusth/lmfcs/internal/fastaio"
)

// VERSION of lmfcs.
const VERSION = "0.2.0"

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "lmfcs",
		Short: "split sequences at their longest and most frequent common substring",
		Long: `lmfcs - split sequences at their longest and most frequent common substring

The sequences of two FASTA/FASTQ files are indexed together in a generalized
suffix array. Substrings shared by both files are ranked, and the best one is
used as a split point for every record of each file.
`,
		Version:       VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLog(getFlagBool(cmd, "verbose"), getFlagBool(cmd, "quiet"))
		},
	}
	root.PersistentFlags().BoolP("verbose", "V", false, "print debug messages")
	root.PersistentFlags().BoolP("quiet", "q", false, "only print warnings and errors")

	root.AddCommand(newFindCommand(), newSplitCommand())
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().String("file1", "", "first sequence file (FASTA/Q, may be gzipped, \"-\" for stdin)")
	cmd.Flags().String("file2", "", "second sequence file (FASTA/Q, may be gzipped)")
	cmd.Flags().IntP("length", "l", 4, "length threshold of shared substrings")
	cmd.Flags().StringP("mode", "m", "at-least", `length filter: "at-least" or "exactly"`)
	cmd.Flags().StringP("rank", "r", "length", `ranking policy: "length", "frequency" or "balanced"`)
	cmd.Flags().StringP("counting", "c", "scan", `frequency counting: "scan" or "index"`)
	cmd.Flags().BoolP("ignore-case", "i", false, "upper-case residues and drop white space before searching")
	cmd.Flags().IntP("max-length", "M", config.DefaultMaxLength, "maximum combined length of both inputs, 0 for no limit")
}

func getOptions(cmd *cobra.Command) *config.Options {
	opt := &config.Options{
		File1:      getFlagString(cmd, "file1"),
		File2:      getFlagString(cmd, "file2"),
		Length:     getFlagInt(cmd, "length"),
		Mode:       getFlagString(cmd, "mode"),
		Rank:       getFlagString(cmd, "rank"),
		Counting:   getFlagString(cmd, "counting"),
		IgnoreCase: getFlagBool(cmd, "ignore-case"),
		MaxLength:  getFlagInt(cmd, "max-length"),
		Inclusion:  "following",
		LineWidth:  fastaio.DefaultLineWidth,
	}
	if f := cmd.Flags().Lookup("out-file"); f != nil {
		opt.Report = f.Value.String()
	}
	if f := cmd.Flags().Lookup("report"); f != nil {
		opt.Report = f.Value.String()
	}
	if cmd.Flags().Lookup("out-dir") != nil {
		opt.OutDir = getFlagString(cmd, "out-dir")
		opt.Inclusion = getFlagString(cmd, "inclusion")
		opt.BothStrands = getFlagBool(cmd, "both-strands")
		opt.Force = getFlagBool(cmd, "force")
		opt.LineWidth = getFlagInt(cmd, "line-width")
	}
	return opt
}
