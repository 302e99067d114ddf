package fileops

// EntryKind is the category a filesystem entry falls into for tree
// operations. The distinction matters because each kind needs a different
// action during copy and delete: files are copied or removed, directories
// are recursed into, and link-like objects must be handled as single opaque
// objects.
type EntryKind int

const (
	// KindUnknown covers anything the platform classifier cannot identify:
	// device files, sockets, or entries that vanished mid-traversal.
	KindUnknown EntryKind = iota

	// KindFile is a regular file.
	KindFile

	// KindDir is a real directory (not a link to one).
	KindDir

	// KindSymlink is a symbolic link, reported only on platforms where the
	// native lstat-style query is trusted to identify links faithfully.
	KindSymlink

	// KindReparsePoint is a Windows reparse point or junction. It takes
	// priority over the file/directory bits because such objects may
	// redirect outside the tree being operated on and must never be
	// traversed.
	KindReparsePoint
)

// String returns a short human-readable name for the kind.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	case KindSymlink:
		return "symlink"
	case KindReparsePoint:
		return "reparse point"
	default:
		return "unknown"
	}
}

// Classify inspects the filesystem object at path and returns its kind.
// It never returns an error: objects that cannot be identified, including
// paths that no longer exist, classify as KindUnknown. The platform-specific
// implementation lives in classify_unix.go and classify_windows.go.
func Classify(path string) EntryKind {
	return classify(path)
}
