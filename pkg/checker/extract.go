package checker

import "strings"

// ExtractImports scans file contents for top-level import statements and
// returns the reconstructed import block plus the statement lines.
//
// The block keeps the blank separators that appeared between imports in the
// original file, so it can be diffed verbatim against the canonical order.
// Blank lines are buffered and only emitted when another import follows;
// blanks before the first import or after the last one are dropped. Indented
// imports and "from __future__" statements are ignored, as is everything
// that is not an import. A file with no imports yields ("", nil).
func ExtractImports(src string) (string, []string) {
	var block []string
	var pendingBlanks []string

	for _, line := range strings.Split(src, "\n") {
		switch {
		case isImportLine(line):
			block = append(block, pendingBlanks...)
			pendingBlanks = nil
			block = append(block, strings.TrimSpace(line))
		case line == "" && len(block) > 0:
			pendingBlanks = append(pendingBlanks, "")
		}
	}

	if len(block) == 0 {
		return "", nil
	}

	statements := make([]string, 0, len(block))
	for _, l := range block {
		if l != "" {
			statements = append(statements, l)
		}
	}
	return strings.Join(block, "\n"), statements
}

// isImportLine matches unindented import-introducing lines, excluding the
// __future__ compatibility pseudo-module.
func isImportLine(line string) bool {
	if strings.HasPrefix(line, "import") {
		return true
	}
	return strings.HasPrefix(line, "from") && !strings.HasPrefix(line, "from __future__")
}
