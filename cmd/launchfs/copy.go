package main

import (
	"launchfs/pkg/fileops"

	"github.com/spf13/cobra"
)

var copyFollowSymlinks bool

var copyCmd = &cobra.Command{
	Use:   "copy SRC DST",
	Short: "Recursively copy a directory tree",
	Long: `Copy the directory tree at SRC to DST, creating DST and any missing
ancestors. Hidden files are included. Symbolic links are recreated as links
unless --follow-symlinks is given (on Windows links are always dereferenced).
A failing entry does not stop the copy; all failures are reported at the end.`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().BoolVar(&copyFollowSymlinks, "follow-symlinks", false, "Copy link targets instead of recreating links")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	follow := copyFollowSymlinks
	if !cmd.Flags().Changed("follow-symlinks") {
		follow = cfg.FollowSymlinks
	}

	src := fileops.NormalizePath(args[0])
	dst := fileops.NormalizePath(args[1])

	appLogger.Info("Copying tree", "src", src, "dst", dst, "follow_symlinks", follow)
	err := fileops.CopyTree(src, dst, fileops.CopyOptions{FollowSymlinks: follow})
	return reportTreeFailures(err)
}
