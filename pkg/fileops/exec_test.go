//go:build !windows

package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func createTestExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := createTestFile(t, dir, name, "#!/bin/sh\nexit 0\n")
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	return path
}

func TestResolveExecutable(t *testing.T) {
	dir := createTempDir(t)

	t.Run("empty name resolves to nothing", func(t *testing.T) {
		if got := ResolveExecutable(""); got != "" {
			t.Errorf("Expected empty result, got %q", got)
		}
	})

	t.Run("bare name found in PATH", func(t *testing.T) {
		createTestExecutable(t, dir, "mytool")
		t.Setenv("PATH", dir)

		got := ResolveExecutable("mytool")
		if got == "" {
			t.Fatal("Expected to find mytool in PATH")
		}
		if !filepath.IsAbs(got) {
			t.Errorf("Expected absolute path, got %q", got)
		}
		if filepath.Base(got) != "mytool" {
			t.Errorf("Resolved wrong file: %q", got)
		}
	})

	t.Run("bare name missing from PATH", func(t *testing.T) {
		t.Setenv("PATH", dir)
		if got := ResolveExecutable("no-such-tool"); got != "" {
			t.Errorf("Expected empty result, got %q", got)
		}
	})

	t.Run("explicit path to executable", func(t *testing.T) {
		path := createTestExecutable(t, dir, "direct")
		got := ResolveExecutable(path)
		if got != path {
			t.Errorf("Expected %q, got %q", path, got)
		}
	})

	t.Run("explicit path without exec permission", func(t *testing.T) {
		path := createTestFile(t, dir, "notexec", "data")
		if got := ResolveExecutable(path); got != "" {
			t.Errorf("Expected empty result for non-executable, got %q", got)
		}
	})

	t.Run("explicit path that does not exist", func(t *testing.T) {
		if got := ResolveExecutable(filepath.Join(dir, "ghost")); got != "" {
			t.Errorf("Expected empty result, got %q", got)
		}
	})
}
