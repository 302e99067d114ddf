//go:build !windows

package fileops

import "os"

// Symlinks behave sanely here, so callers may preserve them during a copy.
const forceFollowSymlinks = false

// classify uses lstat so links are reported as themselves, never as their
// target.
func classify(path string) EntryKind {
	info, err := os.Lstat(path)
	if err != nil {
		return KindUnknown
	}
	mode := info.Mode()
	switch {
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDir
	case mode.IsRegular():
		return KindFile
	default:
		// Devices, sockets, FIFOs and friends.
		return KindUnknown
	}
}
