package fileops

import (
	"fmt"
	"os"
	"path/filepath"
)

// DeleteTree recursively deletes the directory tree at path. Children are
// always removed before their parent; sibling order is whatever the
// filesystem reports and carries no meaning.
//
// Deleting something that is not an existing directory succeeds trivially,
// so DeleteTree is idempotent. If path itself or any entry below it is a
// symbolic link or a Windows reparse point, only the link object is removed,
// never the tree it points at: a junction may reference data far outside the
// tree being deleted.
//
// Like CopyTree, per-entry failures do not stop the walk; they come back
// collected in a *TreeError. Reserved system roots such as / or C:\Windows
// are refused outright with ErrReservedPath.
func DeleteTree(path string) error {
	switch Classify(path) {
	case KindSymlink, KindReparsePoint:
		// The caller handed us a link to a tree, not a tree. Removing the
		// link object is the only safe interpretation.
		if err := os.Remove(path); err != nil {
			return &TreeError{Op: "delete tree", Entries: []EntryError{{Path: path, Err: err}}}
		}
		return nil
	case KindDir:
		// Fall through to the recursive walk.
	default:
		// Absent, or a non-directory we were never asked to touch.
		return nil
	}

	if IsReservedDirectory(path) {
		return fmt.Errorf("%w: %s", ErrReservedPath, path)
	}
	return deleteTree(path)
}

func deleteTree(path string) error {
	var res treeResult

	// ReadDir may return the entries it managed to read alongside an
	// error; process those and record the failure.
	entries, err := os.ReadDir(path)
	if err != nil {
		res.record(path, fmt.Errorf("cannot enumerate directory: %w", err))
	}

	for _, entry := range entries {
		p := filepath.Join(path, entry.Name())
		switch Classify(p) {
		case KindSymlink, KindReparsePoint:
			// Remove the link object itself. os.Remove tries both the
			// file and directory removal syscalls, which covers junctions
			// presenting as directories.
			if err := os.Remove(p); err != nil {
				res.record(p, err)
			}
		case KindDir:
			res.merge(p, deleteTree(p))
		case KindFile:
			if err := os.Remove(p); err != nil {
				res.record(p, err)
			}
		default:
			res.record(p, ErrUnknownEntry)
		}
	}

	// All children handled; the directory itself goes last.
	if err := os.Remove(path); err != nil {
		res.record(path, err)
	}
	return res.err("delete tree")
}
