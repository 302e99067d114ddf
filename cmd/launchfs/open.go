package main

import (
	"os"

	"launchfs/internal/desktop"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open PATH",
	Short: "Open a file or folder in the default program",
	Long: `Open PATH with whatever the desktop associates with it. A directory
(or a path that does not exist yet) is created if needed and opened in the
file manager; a file opens in its default viewer.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	path := args[0]
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return desktop.OpenFile(path)
	}
	return desktop.OpenDir(path)
}
