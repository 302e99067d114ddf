//go:build windows

package fileops

import "golang.org/x/sys/windows"

// Windows link semantics are too messy to preserve: junctions, symlinks and
// other reparse points all answer the generic "is this a link" query, yet
// need different recreation APIs. Copying always dereferences instead.
const forceFollowSymlinks = true

// classify queries the raw file attributes rather than os.Lstat. The
// reparse-point bit takes priority over the directory bit: a junction also
// reports FILE_ATTRIBUTE_DIRECTORY, but treating it as a directory would let
// a traversal escape the tree it is walking.
func classify(path string) EntryKind {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return KindUnknown
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return KindUnknown
	}
	switch {
	case attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0:
		return KindReparsePoint
	case attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0:
		return KindDir
	default:
		return KindFile
	}
}
