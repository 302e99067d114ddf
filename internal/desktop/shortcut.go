package desktop

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShortcutsUnsupported is returned on platforms where launcher shortcut
// creation is not implemented.
var ErrShortcutsUnsupported = errors.New("desktop shortcuts are not supported on this platform")

// Shortcut describes a launcher entry to be placed in a directory, usually
// the desktop.
type Shortcut struct {
	// Name is the display name; it also names the shortcut file after
	// sanitization.
	Name string

	// Target is the executable the shortcut launches.
	Target string

	// Args are passed to the target verbatim.
	Args []string

	// Icon names or points at the icon to show. May be empty.
	Icon string
}

// Validate checks the fields a shortcut cannot do without.
func (s Shortcut) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("shortcut name cannot be empty")
	}
	if strings.TrimSpace(s.Target) == "" {
		return fmt.Errorf("shortcut target cannot be empty")
	}
	return nil
}

// CreateShortcut writes a launcher shortcut for sc into the location
// directory. An empty location means the user's desktop. Currently only
// freedesktop .desktop entries are produced; other platforms return
// ErrShortcutsUnsupported.
func CreateShortcut(location string, sc Shortcut) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	if location == "" {
		location = Dir()
		if location == "" {
			return fmt.Errorf("cannot determine desktop directory")
		}
	}
	return createShortcut(location, sc)
}
