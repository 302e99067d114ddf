package main

import (
	"fmt"

	"launchfs/pkg/fileops"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	treeShowHidden bool
	treeMaxDepth   int
)

var (
	treeDirStyle   = lipgloss.NewStyle().Bold(true)
	treeStatsStyle = lipgloss.NewStyle().Faint(true)
)

var treeCmd = &cobra.Command{
	Use:   "tree PATH",
	Short: "List a directory tree with summary statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().BoolVar(&treeShowHidden, "hidden", false, "Include hidden entries")
	treeCmd.Flags().IntVar(&treeMaxDepth, "depth", 0, "Limit recursion depth (0 = default)")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	entries, err := fileops.ScanTree(args[0], fileops.ScanOptions{
		SkipUnreadableDirs: true,
		IncludeHidden:      treeShowHidden,
		MaxDepth:           treeMaxDepth,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		if e.IsDir {
			fmt.Fprintln(out, treeDirStyle.Render(e.Path+"/"))
		} else {
			fmt.Fprintln(out, e.Path)
		}
	}

	stats := fileops.Stats(entries)
	fmt.Fprintln(out, treeStatsStyle.Render(fmt.Sprintf(
		"%d files, %d directories, %s total",
		stats.TotalFiles, stats.TotalDirectories, formatSize(stats.TotalSize))))
	return nil
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
