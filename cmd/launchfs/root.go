package main

import (
	"errors"
	"fmt"
	"os"

	"launchfs/internal/config"
	"launchfs/internal/logging"
	"launchfs/pkg/fileops"

	"github.com/spf13/cobra"
)

var (
	verbose   bool
	appLogger *logging.AppLogger
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "launchfs",
	Short: "Filesystem toolkit for the launcher",
	Long: `launchfs manages the launcher's on-disk state: copying and deleting
instance trees with safe symlink and junction handling, opening files and
folders in the desktop shell, and creating launcher shortcuts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		appLogger = logging.GetDefault()
		if verbose {
			appLogger.SetVerbose()
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
}

// reportTreeFailures prints per-entry failures of a tree operation. The
// operations themselves only return the aggregate, so the CLI is where
// individual paths become visible.
func reportTreeFailures(err error) error {
	if err == nil {
		return nil
	}
	var terr *fileops.TreeError
	if errors.As(err, &terr) {
		for _, e := range terr.Entries {
			appLogger.Warn("entry failed", "path", e.Path, "error", e.Err)
		}
		return fmt.Errorf("%d of the entries failed; the rest were processed", len(terr.Entries))
	}
	return err
}

// exitError prints msg and exits non-zero; used where a command's failure is
// an answer, not an error (e.g. `which` finding nothing).
func exitError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
