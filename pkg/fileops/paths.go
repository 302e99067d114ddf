package fileops

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// badFilenameChars are characters that are invalid or troublesome in file
// names on at least one supported platform.
const badFilenameChars = `"\/?<>:*|!`

// JoinPath joins path elements into a single cleaned path, skipping empty
// elements so a missing component does not produce a leading or doubled
// separator.
func JoinPath(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return filepath.Join(nonEmpty...)
}

// NormalizePath makes paths inside the current working directory relative to
// it and all other paths absolute. Comparing or displaying paths in this
// form keeps local paths short without losing anything outside the tree.
func NormalizePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return rel
}

// ExpandPath expands a path that starts with "~/" to the user's home
// directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// SanitizeFilename replaces every character of name that is invalid in a
// file name on some platform with the replacement rune. The input is a bare
// name, not a path: separators count as invalid characters here.
func SanitizeFilename(name string, replacement rune) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(badFilenameChars, r) {
			return replacement
		}
		return r
	}, name)
}

// UniqueDirName derives a directory name from a display string that does not
// collide with anything already in inDir. Invalid characters are replaced
// with '-', and a numeric suffix is appended until the name is unused.
// Returns "" if no free name is found within a sane number of attempts.
//
// Usage example:
//
//	dir := fileops.UniqueDirName("My Mod Pack: Reborn!", instancesDir)
//	// -> "My Mod Pack- Reborn-", or "My Mod Pack- Reborn-1" if taken
func UniqueDirName(name, inDir string) string {
	baseName := SanitizeFilename(name, '-')
	for num := 0; num <= 9000; num++ {
		dirName := baseName
		if num > 0 {
			dirName = baseName + strconv.Itoa(num)
		}
		if _, err := os.Lstat(JoinPath(inDir, dirName)); err != nil {
			return dirName
		}
	}
	return ""
}

// HasProblematicBang reports whether the path contains a '!' anywhere.
// Java cannot load classpath entries from such paths, so launcher
// directories should avoid them.
func HasProblematicBang(path string) bool {
	return strings.Contains(path, "!")
}

// IsReservedDirectory checks if the path is a system directory that tree
// operations must never be pointed at.
func IsReservedDirectory(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// If we can't resolve it, treat as reserved.
		return true
	}

	reservedDirs := []string{
		"/",
		"/bin",
		"/boot",
		"/dev",
		"/etc",
		"/lib",
		"/proc",
		"/root",
		"/sbin",
		"/sys",
		"/usr",
		"/var",
	}
	if runtime.GOOS == "windows" {
		reservedDirs = append(reservedDirs,
			`C:\`,
			`C:\Windows`,
			`C:\Program Files`,
			`C:\Program Files (x86)`,
		)
	}

	for _, reserved := range reservedDirs {
		if strings.EqualFold(absPath, reserved) {
			return true
		}
	}
	return false
}
