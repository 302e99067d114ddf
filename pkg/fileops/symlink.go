package fileops

import (
	"fmt"
	"os"
	"path/filepath"
)

// IsSymlink checks if a given path is a symbolic link. It uses lstat so the
// link itself is examined, never its target.
func IsSymlink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat path: %w", err)
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

// SymlinkTarget returns the immediate target of a symbolic link without
// resolving the full chain. The result may be a relative path.
func SymlinkTarget(linkPath string) (string, error) {
	isLink, err := IsSymlink(linkPath)
	if err != nil {
		return "", fmt.Errorf("cannot verify symlink: %w", err)
	}
	if !isLink {
		return "", fmt.Errorf("path is not a symbolic link: %s", linkPath)
	}

	target, err := os.Readlink(linkPath)
	if err != nil {
		return "", fmt.Errorf("failed to read symlink: %w", err)
	}
	return target, nil
}

// CloneSymlink recreates the symbolic link at src as a new link at dst
// pointing at the same target. The target is not dereferenced or required to
// exist; a relative target stays relative, so a link inside a copied tree
// keeps pointing at its sibling in the copy.
//
// CopyTree uses this to preserve links when FollowSymlinks is off.
func CloneSymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf("failed to read symlink: %w", err)
	}
	if err := os.Symlink(target, dst); err != nil {
		return fmt.Errorf("failed to create symlink: %w", err)
	}
	return nil
}

// ResolveSymlink resolves a symbolic link chain and returns the final target
// path. Broken links and loops surface as errors.
func ResolveSymlink(linkPath string) (string, error) {
	resolved, err := filepath.EvalSymlinks(linkPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlink: %w", err)
	}
	return resolved, nil
}

// RemoveSymlink removes a symbolic link without affecting its target. It
// refuses to remove anything that is not actually a symlink, preventing
// accidental deletion of regular files.
func RemoveSymlink(linkPath string) error {
	isLink, err := IsSymlink(linkPath)
	if err != nil {
		return fmt.Errorf("cannot verify symlink: %w", err)
	}
	if !isLink {
		return fmt.Errorf("path is not a symbolic link, will not remove: %s", linkPath)
	}

	if err := os.Remove(linkPath); err != nil {
		return fmt.Errorf("failed to remove symlink: %w", err)
	}
	return nil
}
