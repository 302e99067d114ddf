//go:build !linux

package desktop

// Shortcut creation needs COM shell-link plumbing on Windows and alias
// creation on macOS; neither is wired up yet. When the Windows side lands,
// COM initialization belongs behind a sync.Once, not a bare flag.
func createShortcut(location string, sc Shortcut) error {
	return ErrShortcutsUnsupported
}
