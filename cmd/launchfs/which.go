package main

import (
	"fmt"

	"launchfs/pkg/fileops"

	"github.com/spf13/cobra"
)

var whichCmd = &cobra.Command{
	Use:   "which NAME",
	Short: "Resolve an executable to its absolute path",
	Long: `Resolve NAME to the absolute path of an executable. Bare names are
searched in PATH; names containing a separator are checked directly.`,
	Args: cobra.ExactArgs(1),
	Run:  runWhich,
}

func init() {
	rootCmd.AddCommand(whichCmd)
}

func runWhich(cmd *cobra.Command, args []string) {
	resolved := fileops.ResolveExecutable(args[0])
	if resolved == "" {
		exitError(fmt.Sprintf("no executable found for %q", args[0]))
	}
	fmt.Fprintln(cmd.OutOrStdout(), resolved)
}
