package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/siyuan-infoblox/py-imports-check/pkg/errors"
)

// skipDirs are directory names never descended into when walking
var skipDirs = map[string]bool{
	"__pycache__":  true,
	"venv":         true,
	".venv":        true,
	"node_modules": true,
}

// IsPythonFile checks if a file is a Python source file
func IsPythonFile(filename string) bool {
	return strings.HasSuffix(filename, ".py")
}

// CompileExcludes parses exclude glob patterns
func CompileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", errors.ErrMsgInvalidExclude, pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// FindPythonFiles recursively finds all Python source files in a directory,
// skipping hidden and tooling directories and any path matching an exclude
// pattern
func FindPythonFiles(root string, excludes []glob.Glob) ([]string, error) {
	var pyFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if skipDirs[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsPythonFile(filepath.Base(path)) {
			return nil
		}
		for _, g := range excludes {
			if g.Match(path) {
				return nil
			}
		}

		pyFiles = append(pyFiles, path)
		return nil
	})

	return pyFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
