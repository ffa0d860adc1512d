package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/shenwei356/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("lmfcs")

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{color}[%{level:.4s}]%{color:reset} %{message}`,
)

func setupLog(verbose, quiet bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, logFormat))
	switch {
	case quiet:
		leveled.SetLevel(logging.WARNING, "")
	case verbose:
		leveled.SetLevel(logging.DEBUG, "")
	default:
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}

func checkError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func getFlagString(cmd *cobra.Command, flag string) string {
	value, err := cmd.Flags().GetString(flag)
	checkError(err)
	return value
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	value, err := cmd.Flags().GetBool(flag)
	checkError(err)
	return value
}

func getFlagInt(cmd *cobra.Command, flag string) int {
	value, err := cmd.Flags().GetInt(flag)
	checkError(err)
	return value
}

// makeOutDir creates outDir. An existing non-empty directory is an error
// unless force is set, in which case it is removed first.
func makeOutDir(outDir string, force bool) error {
	entries, err := os.ReadDir(outDir)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return errors.Wrapf(err, "checking output directory: %s", outDir)
	case len(entries) > 0 && !force:
		return fmt.Errorf("output directory not empty: %s, use --force to overwrite", outDir)
	case len(entries) > 0:
		if err := os.RemoveAll(outDir); err != nil {
			return errors.Wrapf(err, "removing output directory: %s", outDir)
		}
	}
	return errors.Wrapf(os.MkdirAll(outDir, 0o755), "creating output directory: %s", outDir)
}
