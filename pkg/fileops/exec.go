package fileops

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// ResolveExecutable resolves name to the absolute path of an executable
// file, or returns "" if nothing executable is found. A bare name is looked
// up in PATH; a name containing a separator is checked directly. No error is
// returned because callers only branch on found versus not found.
func ResolveExecutable(name string) string {
	if name == "" {
		return ""
	}

	// exec.LookPath searches PATH for bare names and verifies execute
	// permission on explicit paths, which covers both cases.
	if !strings.ContainsRune(name, '/') && !strings.ContainsRune(name, filepath.Separator) {
		found, err := exec.LookPath(name)
		if err != nil {
			return ""
		}
		name = found
	} else if _, err := exec.LookPath(name); err != nil {
		return ""
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return ""
	}
	return abs
}
