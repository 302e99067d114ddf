// Package fileops provides the filesystem primitives used by the launcher:
// atomic writes, recursive tree copy and delete, path normalization and
// sanitization, and executable resolution.
//
// # Tree Operations
//
// CopyTree and DeleteTree walk a directory tree depth-first. Both keep going
// when an individual entry fails and report every failed entry afterwards in
// a single *TreeError:
//
//	if err := fileops.CopyTree(src, dst, fileops.CopyOptions{}); err != nil {
//	    var terr *fileops.TreeError
//	    if errors.As(err, &terr) {
//	        for _, e := range terr.Entries {
//	            log.Warn("entry failed", "path", e.Path, "err", e.Err)
//	        }
//	    }
//	}
//
// Entry handling is driven by Classify, which tells files, directories,
// symbolic links and Windows reparse points apart. Reparse points and
// junctions are never traversed: a junction may point outside the tree being
// operated on, and following it from a delete would destroy unrelated data.
//
// # Atomic Operations
//
// AtomicWrite and AtomicCopy stage data in a temporary file next to the
// destination and rename it into place, so the destination either keeps its
// old content or shows the fully written new content, never a partial write.
//
// # Platform Notes
//
// On Windows symlink semantics are unreliable enough that CopyTree always
// dereferences links regardless of CopyOptions.FollowSymlinks. On Unix-like
// systems os.Lstat is trusted to identify symlinks faithfully.
package fileops
