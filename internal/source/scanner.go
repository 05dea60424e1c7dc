package source

import (
	"os"
	"path/filepath"
)

// DefaultLogName is the log file looked up in the working directory when
// neither a flag nor the config names one.
const DefaultLogName = "weight.txt"

// ResolvePath picks the weight log to read: the first non-empty candidate,
// with a leading "~/" expanded to the home directory. It falls back to
// DefaultLogName in the working directory.
func ResolvePath(candidates ...string) string {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		return expandHome(c)
	}
	return DefaultLogName
}

// Exists reports whether path names a readable regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
