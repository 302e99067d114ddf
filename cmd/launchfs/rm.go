package main

import (
	"launchfs/pkg/fileops"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm PATH",
	Short: "Recursively delete a directory tree",
	Long: `Delete the directory tree at PATH. Symbolic links and junctions inside
the tree are removed as single objects, never followed, so a link pointing
outside the tree cannot drag unrelated data into the deletion. Deleting a
path that does not exist succeeds. System directories are refused.`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	path := fileops.NormalizePath(args[0])
	appLogger.Info("Deleting tree", "path", path)
	return reportTreeFailures(fileops.DeleteTree(path))
}
