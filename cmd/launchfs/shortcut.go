package main

import (
	"launchfs/internal/desktop"

	"github.com/spf13/cobra"
)

var (
	shortcutTarget   string
	shortcutIcon     string
	shortcutArgs     []string
	shortcutLocation string
)

var shortcutCmd = &cobra.Command{
	Use:   "shortcut NAME",
	Short: "Create a desktop shortcut",
	Long: `Create a launcher shortcut named NAME for an executable. With no
--location the shortcut lands in the configured shortcut directory, or on
the desktop if none is configured.`,
	Args: cobra.ExactArgs(1),
	RunE: runShortcut,
}

func init() {
	shortcutCmd.Flags().StringVar(&shortcutTarget, "target", "", "Executable the shortcut launches (required)")
	shortcutCmd.Flags().StringVar(&shortcutIcon, "icon", "", "Icon name or path")
	shortcutCmd.Flags().StringArrayVar(&shortcutArgs, "arg", nil, "Argument passed to the target; repeatable")
	shortcutCmd.Flags().StringVar(&shortcutLocation, "location", "", "Directory to place the shortcut in")
	shortcutCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(shortcutCmd)
}

func runShortcut(cmd *cobra.Command, args []string) error {
	location := shortcutLocation
	if location == "" {
		location = cfg.ShortcutDir
	}

	sc := desktop.Shortcut{
		Name:   args[0],
		Target: shortcutTarget,
		Args:   shortcutArgs,
		Icon:   shortcutIcon,
	}
	appLogger.Info("Creating shortcut", "name", sc.Name, "target", sc.Target, "location", location)
	return desktop.CreateShortcut(location, sc)
}
