// Package desktop integrates the launcher with the OS shell: opening files
// and folders in the user's default programs and creating launcher
// shortcuts. Everything here is thin glue over per-platform commands and
// file formats; the platform choice is made with build tags, not runtime
// switches.
package desktop

import (
	"fmt"
	"os"
	"path/filepath"

	"launchfs/internal/logging"
	"launchfs/pkg/fileops"

	"github.com/adrg/xdg"
)

// OpenFile opens the file at path in the user's default program for its
// type. The viewer is started detached; no result beyond successful launch
// is reported.
func OpenFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("cannot resolve path: %w", err)
	}
	return launch(abs)
}

// OpenDir opens the directory at path in the user's file manager, creating
// it (and missing ancestors) first so the user never stares at an error
// dialog for a folder that simply hasn't been made yet.
func OpenDir(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("cannot resolve path: %w", err)
	}
	if err := fileops.EnsureDirExists(abs); err != nil {
		return err
	}
	return launch(abs)
}

// Dir returns the user's desktop directory.
func Dir() string {
	if xdg.UserDirs.Desktop != "" {
		return xdg.UserDirs.Desktop
	}
	// Fallback for systems without user-dirs configuration.
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Desktop")
}

func launch(path string) error {
	cmd := openCommand(path)
	logging.Debug("Opening in default program", "path", path, "cmd", cmd.Path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	// The opener runs on its own; we neither wait for it nor track it.
	return cmd.Process.Release()
}
