package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// ScanOptions configures directory scanning.
type ScanOptions struct {
	// SkipUnreadableDirs skips directories that cannot be opened or read
	// instead of failing the scan.
	SkipUnreadableDirs bool

	// MaxDepth limits recursion depth. Zero or negative means the default
	// of 20.
	MaxDepth int

	// IncludeHidden includes entries whose name starts with '.'.
	IncludeHidden bool

	// SkipNames are directory names skipped during scanning, matched
	// against the base name only.
	SkipNames []string

	// FileFilter, when non-nil, decides per file name whether the file is
	// reported. Directories are always traversed.
	FileFilter func(name string) bool
}

// ScanEntry describes one file discovered during a scan. Paths are relative
// to the scan root.
type ScanEntry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
	Mode    os.FileMode
}

// ScanStats summarizes a scan result.
type ScanStats struct {
	TotalFiles       int
	TotalDirectories int
	TotalSize        int64
	LargestFile      int64
}

// DirectoryScanner walks a directory tree confined to an os.Root, so
// symlinks inside the tree can never lead the scan outside it. Symlinked
// directories are not traversed; loop protection tracks visited paths as a
// second line of defense.
type DirectoryScanner struct {
	root     *os.Root
	opts     ScanOptions
	scanRoot string
	visited  map[string]bool
}

// NewDirectoryScanner creates a scanner for the given directory. Close must
// be called when the scanner is no longer needed.
func NewDirectoryScanner(scanPath string, opts ScanOptions) (*DirectoryScanner, error) {
	if strings.TrimSpace(scanPath) == "" {
		return nil, fmt.Errorf("scan path cannot be empty")
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 20
	}

	absPath, err := filepath.Abs(ExpandPath(scanPath))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve scan path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot access scan path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan path is not a directory: %s", absPath)
	}

	root, err := os.OpenRoot(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open scan root: %w", err)
	}

	return &DirectoryScanner{
		root:     root,
		opts:     opts,
		scanRoot: absPath,
		visited:  make(map[string]bool),
	}, nil
}

// Close releases the scanner's handle on the scan root.
func (s *DirectoryScanner) Close() error {
	if s.root != nil {
		err := s.root.Close()
		s.root = nil
		return err
	}
	return nil
}

// Scan walks the tree and returns every file matching the configured
// criteria.
func (s *DirectoryScanner) Scan() ([]ScanEntry, error) {
	if s.root == nil {
		return nil, fmt.Errorf("scanner has been closed")
	}

	s.visited = make(map[string]bool)
	var results []ScanEntry
	if err := s.scanRecursive(".", 1, &results); err != nil {
		return nil, fmt.Errorf("directory scan failed: %w", err)
	}
	return results, nil
}

func (s *DirectoryScanner) scanRecursive(relPath string, depth int, results *[]ScanEntry) error {
	if depth > s.opts.MaxDepth {
		return nil
	}

	cleanPath := filepath.Clean(relPath)
	if s.visited[cleanPath] {
		return nil
	}
	s.visited[cleanPath] = true

	dir, err := s.root.Open(relPath)
	if err != nil {
		if s.opts.SkipUnreadableDirs {
			return nil
		}
		return fmt.Errorf("failed to open directory %s: %w", relPath, err)
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		if s.opts.SkipUnreadableDirs {
			return nil
		}
		return fmt.Errorf("failed to read directory %s: %w", relPath, err)
	}

	for _, entry := range entries {
		entryPath := filepath.Join(relPath, entry.Name())

		if entry.IsDir() {
			if s.shouldSkipDir(entry.Name()) {
				continue
			}
			// A symlinked directory never reports IsDir from ReadDir, so
			// this branch only recurses into real directories.
			if err := s.scanRecursive(entryPath, depth+1, results); err != nil {
				return err
			}
			*results = append(*results, ScanEntry{
				Name:  entry.Name(),
				Path:  entryPath,
				IsDir: true,
			})
			continue
		}

		if !s.shouldIncludeFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if s.opts.SkipUnreadableDirs {
				continue
			}
			return fmt.Errorf("failed to stat %s: %w", entryPath, err)
		}
		*results = append(*results, ScanEntry{
			Name:    entry.Name(),
			Path:    entryPath,
			IsDir:   false,
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Mode:    info.Mode(),
		})
	}

	return nil
}

func (s *DirectoryScanner) shouldSkipDir(name string) bool {
	if !s.opts.IncludeHidden && strings.HasPrefix(name, ".") {
		return true
	}
	return slices.Contains(s.opts.SkipNames, name)
}

func (s *DirectoryScanner) shouldIncludeFile(name string) bool {
	if !s.opts.IncludeHidden && strings.HasPrefix(name, ".") {
		return false
	}
	if s.opts.FileFilter != nil {
		return s.opts.FileFilter(name)
	}
	return true
}

// Stats computes summary statistics over a scan result.
func Stats(entries []ScanEntry) ScanStats {
	var stats ScanStats
	for _, e := range entries {
		if e.IsDir {
			stats.TotalDirectories++
			continue
		}
		stats.TotalFiles++
		stats.TotalSize += e.Size
		if e.Size > stats.LargestFile {
			stats.LargestFile = e.Size
		}
	}
	return stats
}

// ScanTree is a convenience wrapper that scans scanPath with the given
// options in one call.
func ScanTree(scanPath string, opts ScanOptions) ([]ScanEntry, error) {
	scanner, err := NewDirectoryScanner(scanPath, opts)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()
	return scanner.Scan()
}
