// Package main is the entry point for the launchfs CLI.
//
// launchfs exposes the launcher's filesystem toolkit on the command line:
// recursive tree copy and delete with safe link handling, opening files and
// folders in the OS shell, shortcut creation, and executable resolution.
// Each subcommand is thin glue over pkg/fileops and internal/desktop; the
// CLI layer only parses flags, loads configuration, and reports failures.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
