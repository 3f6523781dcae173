package checker

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/siyuan-infoblox/py-imports-check/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-check/pkg/std"
)

// Classifier decides which category a module name belongs to without
// importing or executing anything: override lists first, then the bundled
// standard-library table, then a filesystem probe under the project root.
type Classifier struct {
	Overrides   Overrides
	ProjectRoot string // root for local-module resolution, may be empty
}

// Classify returns the category for a dotted module name.
func (c *Classifier) Classify(module string) Category {
	switch {
	case slices.Contains(c.Overrides.Standard, module):
		return Standard
	case slices.Contains(c.Overrides.ThirdParty, module):
		return ThirdParty
	case slices.Contains(c.Overrides.Local, module):
		return Local
	}

	// Relative imports ("from . import x", "from .sub import y") never name
	// an absolute module.
	if strings.HasPrefix(module, ".") {
		return Local
	}

	if std.IsStandardModule(module) {
		return Standard
	}

	if c.resolvesLocally(module) {
		return Local
	}

	return ThirdParty
}

// resolvesLocally checks whether the module exists as a source file or a
// package directory under the project root. Stat errors count as not found.
func (c *Classifier) resolvesLocally(module string) bool {
	if c.ProjectRoot == "" {
		return false
	}

	rel := filepath.Join(strings.Split(module, ".")...)
	candidates := []string{
		rel + ".py",
		filepath.Join(rel, "__init__.py"),
	}

	for _, candidate := range candidates {
		info, err := os.Stat(filepath.Join(c.ProjectRoot, candidate))
		if err == nil && info.Mode().IsRegular() {
			slog.Debug(errors.InfoMsgLocalResolved, "module", module, "path", candidate)
			return true
		}
	}
	return false
}
