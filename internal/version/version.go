// Package version resolves the dashboard's version string.
package version

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// Version can be stamped at build time:
//
//	go build -ldflags "-X .../internal/version.Version=1.4.0"
var Version = ""

// Fallback is reported when nothing else resolves.
const Fallback = "unknown"

// Resolve returns the effective version: the explicit override if set,
// else the VCS revision baked into the binary, else the build-time
// Version stamp, else the VERSION marker file under root, else Fallback.
func Resolve(override, root string) string {
	if override != "" {
		return override
	}
	if rev := vcsRevision(); rev != "" {
		return rev
	}
	if Version != "" {
		return Version
	}
	if v := markerFile(root); v != "" {
		return v
	}
	return Fallback
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}

func markerFile(root string) string {
	data, err := os.ReadFile(filepath.Join(root, "VERSION"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
