package utils

import (
	"os"
	"path/filepath"
)

// rootMarkers identify a Python project root
var rootMarkers = []string{"pyproject.toml", "setup.py", "setup.cfg", ".git"}

// FindProjectRoot walks up from a file looking for a project marker and
// returns the containing directory. When no marker is found the file's own
// directory is used, so sibling modules still resolve as local.
func FindProjectRoot(filePath string) string {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return filepath.Dir(filePath)
	}

	dir := filepath.Dir(abs)
	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return filepath.Dir(abs)
		}
		dir = parent
	}
}
