package fileops

import (
	"fmt"
	"os"
	"path/filepath"
)

// CopyOptions controls how CopyTree treats symbolic links.
type CopyOptions struct {
	// FollowSymlinks dereferences links instead of recreating them: a link
	// to a file becomes a copy of the file, a link to a directory becomes a
	// full copy of that directory's contents. On Windows this is forced on
	// regardless of the value here, because link semantics there are not
	// reliable enough to preserve.
	FollowSymlinks bool
}

// CopyTree recursively copies the directory tree at src to dst, creating dst
// and any missing ancestors first. Hidden and system entries are included.
//
// A missing source or an uncreatable destination fails immediately with no
// partial action. After that point a failing entry does not abort the walk:
// every remaining entry is still processed and the failures are returned
// together as a *TreeError. A nil return means the whole tree copied.
//
// File copies go through AtomicCopy, so an interrupted copy leaves either no
// destination file or a complete one, never a truncated one.
func CopyTree(src, dst string, opts CopyOptions) error {
	follow := opts.FollowSymlinks || forceFollowSymlinks
	return copyTree(src, dst, follow)
}

func copyTree(src, dst string, follow bool) error {
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceMissing, src)
	}
	if err := EnsureDirExists(dst); err != nil {
		return fmt.Errorf("cannot create destination directory: %w", err)
	}

	var res treeResult
	entries, err := os.ReadDir(src)
	if err != nil {
		res.record(src, fmt.Errorf("cannot enumerate directory: %w", err))
	}
	for _, entry := range entries {
		innerSrc := filepath.Join(src, entry.Name())
		innerDst := filepath.Join(dst, entry.Name())
		res.merge(innerSrc, copyEntry(innerSrc, innerDst, follow))
	}
	return res.err("copy tree")
}

// copyEntry dispatches a single directory entry on its classified kind.
func copyEntry(src, dst string, follow bool) error {
	kind := Classify(src)
	if kind == KindSymlink || kind == KindReparsePoint {
		if !follow {
			return CloneSymlink(src, dst)
		}
		// Dereference the link and handle it as whatever it points at.
		// A broken link stats to nothing and is recorded as a failure.
		info, err := os.Stat(src)
		switch {
		case err != nil:
			return fmt.Errorf("cannot resolve link: %w", err)
		case info.IsDir():
			kind = KindDir
		default:
			kind = KindFile
		}
	}

	switch kind {
	case KindDir:
		return copyTree(src, dst, follow)
	case KindFile:
		return AtomicCopy(src, dst)
	default:
		return ErrUnknownEntry
	}
}
