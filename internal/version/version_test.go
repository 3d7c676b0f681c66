package version

import (
	"os"
	"path/filepath"
	"testing"
)

// Test binaries are not VCS-stamped, so Resolve falls through the
// revision branch here and the remaining chain is deterministic.

func TestResolveOverrideWins(t *testing.T) {
	if got := Resolve("9.9.9", t.TempDir()); got != "9.9.9" {
		t.Errorf("Resolve = %q, want override", got)
	}
}

func TestResolveBuildStamp(t *testing.T) {
	old := Version
	Version = "1.2.3"
	defer func() { Version = old }()

	if got := Resolve("", t.TempDir()); got != "1.2.3" {
		t.Errorf("Resolve = %q, want build stamp", got)
	}
}

func TestResolveMarkerFile(t *testing.T) {
	root := t.TempDir()
	os.WriteFile(filepath.Join(root, "VERSION"), []byte("2.1.0\n"), 0o644)

	if got := Resolve("", root); got != "2.1.0" {
		t.Errorf("Resolve = %q, want marker file contents", got)
	}
}

func TestResolveFallback(t *testing.T) {
	if got := Resolve("", t.TempDir()); got != Fallback {
		t.Errorf("Resolve = %q, want %q", got, Fallback)
	}
}
