//go:build linux

package desktop

import (
	"fmt"
	"os"
	"strings"

	"launchfs/pkg/fileops"
)

// createShortcut writes a freedesktop .desktop entry and marks it
// executable, which most desktop environments require before they will
// launch it without a warning prompt.
func createShortcut(location string, sc Shortcut) error {
	fileName := fileops.SanitizeFilename(sc.Name, '-') + ".desktop"
	path := fileops.JoinPath(location, fileName)

	execLine := sc.Target
	if len(sc.Args) > 0 {
		execLine += " '" + strings.Join(sc.Args, "' '") + "'"
	}

	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "TryExec=%s\n", sc.Target)
	fmt.Fprintf(&b, "Exec=%s\n", execLine)
	fmt.Fprintf(&b, "Name=%s\n", sc.Name)
	if sc.Icon != "" {
		fmt.Fprintf(&b, "Icon=%s\n", sc.Icon)
	}

	if err := fileops.AtomicWrite(path, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to write desktop entry: %w", err)
	}
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("failed to mark desktop entry executable: %w", err)
	}
	return nil
}
