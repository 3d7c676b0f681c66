// Package bank reads markdown documents from the memory-bank directories.
// All access goes through path canonicalization so a request can never
// escape its configured root.
package bank

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrForbidden marks a request that resolves outside its root.
	ErrForbidden = errors.New("path outside memory bank root")
	// ErrNotFound marks a request for a file that does not exist.
	ErrNotFound = errors.New("file not found")
)

// Document is the full content of one markdown file plus its stat data.
type Document struct {
	Filename string
	Content  string
	Modified float64
}

// Read resolves name against root and returns the file's content and
// modification time. Symlinks are resolved before the containment check,
// so a link pointing outside the root is rejected the same as a ../
// traversal. The check runs before existence is consulted: a traversal
// attempt is ErrForbidden even when the target does not exist.
func Read(root, name string) (*Document, error) {
	rootReal, err := canonicalRoot(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}

	// filepath.Join would splice an absolute name under the root;
	// keep it as-is so the containment check sees the real target.
	target := filepath.Clean(name)
	if !filepath.IsAbs(target) {
		target = filepath.Join(rootReal, name)
	}
	target = canonicalize(target)
	if !withinRoot(rootReal, target) {
		return nil, ErrForbidden
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read %s: not valid UTF-8", name)
	}

	return &Document{
		Filename: name,
		Content:  string(data),
		Modified: unixSeconds(info),
	}, nil
}

// StatModified returns the modification time of the named file under dir
// and whether it exists as a regular file.
func StatModified(dir, name string) (float64, bool) {
	info, err := os.Stat(filepath.Join(dir, name))
	if err != nil || !info.Mode().IsRegular() {
		return 0, false
	}
	return unixSeconds(info), true
}

func canonicalRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	return canonicalize(abs), nil
}

// canonicalize resolves symlinks in path. When the path (or part of it)
// does not exist yet, the deepest existing ancestor is resolved and the
// remainder re-joined, so containment checks still see the real location.
func canonicalize(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	dir := filepath.Dir(path)
	if dir == path {
		return path
	}
	return filepath.Join(canonicalize(dir), filepath.Base(path))
}

func withinRoot(root, target string) bool {
	if target == root {
		return true
	}
	return strings.HasPrefix(target, root+string(filepath.Separator))
}

// unixSeconds converts a file's mtime to Unix seconds with sub-second
// precision, the shape the wire format uses for every timestamp.
func unixSeconds(info os.FileInfo) float64 {
	return float64(info.ModTime().UnixNano()) / 1e9
}
