package fileops

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for conditions callers may want to test with errors.Is.
var (
	// ErrSourceMissing is returned by CopyTree when the source is not an
	// existing directory. Nothing has been touched when this is returned.
	ErrSourceMissing = errors.New("source directory does not exist")

	// ErrUnknownEntry marks an entry the platform classifier could not
	// identify (special files, objects that vanished mid-traversal).
	ErrUnknownEntry = errors.New("unknown filesystem object")

	// ErrReservedPath is returned by DeleteTree when asked to remove a
	// system directory such as / or C:\Windows.
	ErrReservedPath = errors.New("refusing to operate on reserved directory")
)

// EntryError records the failure of a single entry during a tree operation.
type EntryError struct {
	Path string
	Err  error
}

func (e EntryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e EntryError) Unwrap() error { return e.Err }

// TreeError aggregates every per-entry failure from one CopyTree or
// DeleteTree call. The operation keeps walking after an entry fails, so a
// TreeError means "partially or fully failed" while all processable entries
// were still handled. A nil error from the tree operation means every entry
// succeeded.
type TreeError struct {
	Op      string
	Entries []EntryError
}

func (e *TreeError) Error() string {
	if len(e.Entries) == 1 {
		return fmt.Sprintf("%s: %v", e.Op, e.Entries[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d entries failed:", e.Op, len(e.Entries))
	for _, entry := range e.Entries {
		b.WriteString("\n\t")
		b.WriteString(entry.Error())
	}
	return b.String()
}

// Unwrap exposes the per-entry errors to errors.Is and errors.As.
func (e *TreeError) Unwrap() []error {
	errs := make([]error, len(e.Entries))
	for i, entry := range e.Entries {
		errs[i] = entry
	}
	return errs
}

// treeResult accumulates entry failures across one recursive traversal.
// The zero value is ready to use.
type treeResult struct {
	entries []EntryError
}

// record notes a failed entry and lets the traversal continue.
func (r *treeResult) record(path string, err error) {
	r.entries = append(r.entries, EntryError{Path: path, Err: err})
}

// merge folds the failure of one entry into this accumulator. Aggregates
// from recursive calls are flattened so the caller sees one level of
// EntryError values with full paths.
func (r *treeResult) merge(path string, err error) {
	if err == nil {
		return
	}
	var terr *TreeError
	if errors.As(err, &terr) {
		r.entries = append(r.entries, terr.Entries...)
		return
	}
	r.entries = append(r.entries, EntryError{Path: path, Err: err})
}

// err materializes the accumulated failures, or nil if there were none.
func (r *treeResult) err(op string) error {
	if len(r.entries) == 0 {
		return nil
	}
	return &TreeError{Op: op, Entries: r.entries}
}
