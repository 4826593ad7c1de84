package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRemoveCacheEntries(t *testing.T) {
	dir := t.TempDir()

	// Two files at the top level, one nested in a subdirectory
	files := []string{
		filepath.Join(dir, "a1b2.cache"),
		filepath.Join(dir, "c3d4.cache"),
		filepath.Join(dir, "ab", "e5f6.cache"),
	}
	if err := os.MkdirAll(filepath.Join(dir, "ab"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		if err := os.WriteFile(f, []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	count, err := removeCacheEntries(dir)
	if err != nil {
		t.Fatalf("removeCacheEntries() error: %v", err)
	}
	if count != len(files) {
		t.Errorf("removeCacheEntries() = %d, want %d", count, len(files))
	}

	for _, f := range files {
		if _, err := os.Stat(f); !os.IsNotExist(err) {
			t.Errorf("file %s should have been removed", f)
		}
	}

	// Subdirectory should be cleaned up, the cache dir itself kept
	if _, err := os.Stat(filepath.Join(dir, "ab")); !os.IsNotExist(err) {
		t.Error("empty subdirectory should have been removed")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache dir itself should remain: %v", err)
	}
}

func TestRemoveCacheEntriesEmptyDir(t *testing.T) {
	dir := t.TempDir()

	count, err := removeCacheEntries(dir)
	if err != nil {
		t.Fatalf("removeCacheEntries() error: %v", err)
	}
	if count != 0 {
		t.Errorf("removeCacheEntries() on empty dir = %d, want 0", count)
	}
}
