package bank

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListMarkdown(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "beta.md"), []byte("b"), 0o644)
	os.WriteFile(filepath.Join(dir, "alpha.md"), []byte("a"), 0o644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644)
	os.WriteFile(filepath.Join(dir, "_index.md"), []byte("idx"), 0o644)
	os.MkdirAll(filepath.Join(dir, "sub.md"), 0o755)

	entries, err := ListMarkdown(dir, IndexFile)
	if err != nil {
		t.Fatalf("ListMarkdown error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	// os.ReadDir yields names in sorted order, so listings are stable.
	if entries[0].Filename != "alpha.md" || entries[1].Filename != "beta.md" {
		t.Errorf("unexpected order: %q, %q", entries[0].Filename, entries[1].Filename)
	}
	if entries[0].Label != "alpha" {
		t.Errorf("label = %q, want %q", entries[0].Label, "alpha")
	}
	if entries[0].Modified <= 0 {
		t.Errorf("modified = %v, want > 0", entries[0].Modified)
	}
}

func TestListMarkdownMissingDir(t *testing.T) {
	entries, err := ListMarkdown(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("missing dir should not error, got: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestHasIndex(t *testing.T) {
	dir := t.TempDir()
	if HasIndex(dir) {
		t.Error("HasIndex = true for empty dir")
	}
	os.WriteFile(filepath.Join(dir, IndexFile), []byte("idx"), 0o644)
	if !HasIndex(dir) {
		t.Error("HasIndex = false after writing index")
	}
}
