package checker

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/siyuan-infoblox/py-imports-check/pkg/errors"
)

// importLineRe captures the module name of "import X" and "from X import Y"
// statements. A relative import with no named module yields ".".
var importLineRe = regexp.MustCompile(`^(?:from|import)\s+([A-Za-z_0-9.]+)`)

// ModuleName extracts the module name referenced by an import statement.
func ModuleName(statement string) (string, error) {
	m := importLineRe.FindStringSubmatch(statement)
	if m == nil {
		return "", fmt.Errorf("%s: %q", errors.ErrMsgUnparseableImport, statement)
	}
	return m[1], nil
}

// GroupImports buckets import statements by category using the classifier.
// A statement that does not match the import-line grammar fails the whole
// file.
func GroupImports(statements []string, c *Classifier) (map[Category][]ImportStatement, error) {
	grouped := make(map[Category][]ImportStatement)
	for _, statement := range statements {
		module, err := ModuleName(statement)
		if err != nil {
			return nil, err
		}
		category := c.Classify(module)
		grouped[category] = append(grouped[category], ImportStatement{
			Text:   statement,
			Module: module,
		})
	}
	return grouped, nil
}

// OrderImports renders the canonical import block: categories in fixed order
// (standard, third_party, local), a stable case-insensitive sort by module
// name within each, and exactly one blank line between non-empty groups.
func OrderImports(grouped map[Category][]ImportStatement) string {
	var blocks []string
	for _, category := range categories {
		imports := grouped[category]
		if len(imports) == 0 {
			continue
		}

		sort.SliceStable(imports, func(i, j int) bool {
			return strings.ToLower(imports[i].Module) < strings.ToLower(imports[j].Module)
		})

		lines := make([]string, len(imports))
		for i, imp := range imports {
			lines[i] = imp.Text
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
