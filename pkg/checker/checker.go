package checker

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gobwas/glob"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/siyuan-infoblox/py-imports-check/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-check/pkg/utils"
)

// CheckerConfig controls a check run.
type CheckerConfig struct {
	Overrides   Overrides   // caller-supplied classification overrides
	ProjectRoot string      // optional; discovered per file when empty
	Excludes    []glob.Glob // paths skipped while walking directories
	Out         io.Writer   // diff output, defaults to os.Stdout
}

// checker runs the extract, group, order, diff pipeline
type checker struct {
	config CheckerConfig
}

// New creates a new checker with the given configuration
func New(config CheckerConfig) *checker {
	if config.Out == nil {
		config.Out = os.Stdout
	}
	return &checker{config: config}
}

// CheckPaths processes each argument (file or directory) and returns the
// number of files that need reordering or could not be checked. Errors in
// one path never halt the remaining ones.
func (c *checker) CheckPaths(paths []string) int {
	failures := 0

	for _, path := range paths {
		isDir, err := utils.IsDirectory(path)
		if err != nil {
			slog.Error(errors.ErrMsgPathNotFound, "path", path, "error", err)
			failures++
			continue
		}

		if !isDir {
			failures += c.checkOne(path)
			continue
		}

		files, err := utils.FindPythonFiles(path, c.config.Excludes)
		if err != nil {
			slog.Error(errors.ErrMsgFailedToFindPyFiles, "path", path, "error", err)
			failures++
			continue
		}
		if len(files) == 0 {
			slog.Debug(errors.InfoMsgNoPyFiles, "path", path)
		}
		for _, file := range files {
			failures += c.checkOne(file)
		}
	}

	return failures
}

// checkOne maps a single file check onto the failure count. A file that
// cannot be processed is skipped with a diagnostic and still counts.
func (c *checker) checkOne(path string) int {
	changed, err := c.CheckFile(path)
	if err != nil {
		slog.Error(errors.InfoMsgSkippingFile, "file", path, "error", err)
		return 1
	}
	if changed {
		return 1
	}
	return 0
}

// CheckFile runs the pipeline on a single file and reports whether its
// import block deviates from the canonical order, writing a unified diff
// when it does. A file with no imports is trivially ordered.
func (c *checker) CheckFile(path string) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	raw, statements := ExtractImports(string(src))
	if len(statements) == 0 {
		return false, nil
	}

	root := c.config.ProjectRoot
	if root == "" {
		root = utils.FindProjectRoot(path)
	}
	classifier := &Classifier{Overrides: c.config.Overrides, ProjectRoot: root}

	grouped, err := GroupImports(statements, classifier)
	if err != nil {
		return false, err
	}

	return reportDiff(c.config.Out, raw, OrderImports(grouped), path)
}

// reportDiff writes a unified diff between the actual and canonical import
// blocks, labeling the sides with the file name and "expected". Identical
// texts produce no output.
func reportDiff(w io.Writer, actual, expected, label string) (bool, error) {
	if actual == expected {
		return false, nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(actual),
		B:        difflib.SplitLines(expected),
		FromFile: label,
		ToFile:   "expected",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errors.ErrMsgFailedToDiff, err)
	}

	fmt.Fprint(w, text)
	return true, nil
}
