package fileops

import (
	"path/filepath"
	"testing"
)

func TestIsSymlink(t *testing.T) {
	dir := createTempDir(t)
	target := createTestFile(t, dir, "target.txt", "content")

	t.Run("regular file is not a symlink", func(t *testing.T) {
		isLink, err := IsSymlink(target)
		if err != nil {
			t.Fatalf("IsSymlink failed: %v", err)
		}
		if isLink {
			t.Error("Expected false for regular file")
		}
	})

	t.Run("symlink is detected", func(t *testing.T) {
		link := filepath.Join(dir, "link")
		createTestSymlink(t, target, link)

		isLink, err := IsSymlink(link)
		if err != nil {
			t.Fatalf("IsSymlink failed: %v", err)
		}
		if !isLink {
			t.Error("Expected true for symlink")
		}
	})

	t.Run("missing path errors", func(t *testing.T) {
		if _, err := IsSymlink(filepath.Join(dir, "ghost")); err == nil {
			t.Error("Expected error for missing path")
		}
	})
}

func TestCloneSymlink(t *testing.T) {
	dir := createTempDir(t)

	t.Run("absolute target is preserved", func(t *testing.T) {
		target := createTestFile(t, dir, "t1.txt", "x")
		src := filepath.Join(dir, "l1")
		createTestSymlink(t, target, src)

		dst := filepath.Join(dir, "l1-copy")
		if err := CloneSymlink(src, dst); err != nil {
			t.Fatalf("CloneSymlink failed: %v", err)
		}

		got, err := SymlinkTarget(dst)
		if err != nil {
			t.Fatalf("SymlinkTarget failed: %v", err)
		}
		if got != target {
			t.Errorf("Expected target %q, got %q", target, got)
		}
	})

	t.Run("relative target stays relative", func(t *testing.T) {
		sub := createTestDir(t, dir, "sub")
		createTestFile(t, sub, "sibling.txt", "x")
		src := filepath.Join(sub, "rel-link")
		createTestSymlink(t, "sibling.txt", src)

		other := createTestDir(t, dir, "other")
		dst := filepath.Join(other, "rel-link")
		if err := CloneSymlink(src, dst); err != nil {
			t.Fatalf("CloneSymlink failed: %v", err)
		}

		got, err := SymlinkTarget(dst)
		if err != nil {
			t.Fatalf("SymlinkTarget failed: %v", err)
		}
		if got != "sibling.txt" {
			t.Errorf("Expected relative target to survive, got %q", got)
		}
	})

	t.Run("broken source link still clones", func(t *testing.T) {
		src := filepath.Join(dir, "dangling")
		createTestSymlink(t, filepath.Join(dir, "nowhere"), src)

		dst := filepath.Join(dir, "dangling-copy")
		if err := CloneSymlink(src, dst); err != nil {
			t.Fatalf("CloneSymlink failed on broken link: %v", err)
		}
		isLink, err := IsSymlink(dst)
		if err != nil || !isLink {
			t.Errorf("Expected cloned link, isLink=%v err=%v", isLink, err)
		}
	})
}

func TestSymlinkTarget(t *testing.T) {
	dir := createTempDir(t)
	target := createTestFile(t, dir, "target.txt", "content")

	t.Run("returns the immediate target", func(t *testing.T) {
		link := filepath.Join(dir, "link")
		createTestSymlink(t, target, link)

		got, err := SymlinkTarget(link)
		if err != nil {
			t.Fatalf("SymlinkTarget failed: %v", err)
		}
		if got != target {
			t.Errorf("Expected %q, got %q", target, got)
		}
	})

	t.Run("refuses regular files", func(t *testing.T) {
		if _, err := SymlinkTarget(target); err == nil {
			t.Error("Expected error for regular file")
		}
	})
}

func TestRemoveSymlink(t *testing.T) {
	dir := createTempDir(t)
	target := createTestFile(t, dir, "target.txt", "content")

	t.Run("removes link, keeps target", func(t *testing.T) {
		link := filepath.Join(dir, "removeme")
		createTestSymlink(t, target, link)

		if err := RemoveSymlink(link); err != nil {
			t.Fatalf("RemoveSymlink failed: %v", err)
		}
		if fileExists(link) {
			t.Error("Link still exists")
		}
		if !fileExists(target) {
			t.Error("Target was removed")
		}
	})

	t.Run("refuses regular files", func(t *testing.T) {
		if err := RemoveSymlink(target); err == nil {
			t.Error("Expected error when path is not a symlink")
		}
		if !fileExists(target) {
			t.Error("Regular file was removed")
		}
	})
}

func TestResolveSymlink(t *testing.T) {
	dir := createTempDir(t)
	target := createTestFile(t, dir, "final.txt", "content")

	link1 := filepath.Join(dir, "hop1")
	createTestSymlink(t, target, link1)
	link2 := filepath.Join(dir, "hop2")
	createTestSymlink(t, link1, link2)

	resolved, err := ResolveSymlink(link2)
	if err != nil {
		t.Fatalf("ResolveSymlink failed: %v", err)
	}

	want, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatalf("EvalSymlinks failed: %v", err)
	}
	if resolved != want {
		t.Errorf("Expected %q, got %q", want, resolved)
	}

	t.Run("broken chain errors", func(t *testing.T) {
		broken := filepath.Join(dir, "broken")
		createTestSymlink(t, filepath.Join(dir, "void"), broken)
		if _, err := ResolveSymlink(broken); err == nil {
			t.Error("Expected error for broken chain")
		}
	})
}
