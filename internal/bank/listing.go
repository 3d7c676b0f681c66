package bank

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry describes one markdown file in a collection listing.
type Entry struct {
	Filename string
	Label    string
	Modified float64
}

// ListMarkdown enumerates the .md files directly inside dir, sorted by
// filename. Subdirectories and non-markdown files are skipped, as is any
// name in exclude. A missing directory is an empty collection, not an
// error.
func ListMarkdown(dir string, exclude ...string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var entries []Entry
	for _, d := range dirents {
		name := d.Name()
		if d.IsDir() || !strings.HasSuffix(name, ".md") || excluded(name, exclude) {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Filename: name,
			Label:    strings.TrimSuffix(name, ".md"),
			Modified: unixSeconds(info),
		})
	}
	return entries, nil
}

// HasIndex reports whether dir carries an index document.
func HasIndex(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, IndexFile))
	return err == nil && info.Mode().IsRegular()
}

func excluded(name string, exclude []string) bool {
	for _, e := range exclude {
		if name == e {
			return true
		}
	}
	return false
}
