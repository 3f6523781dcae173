package std

import (
	_ "embed"
	"strings"
)

//go:embed modules.txt
var modulesData string

// StandardModules maps the top-level module names of the Python standard
// library, loaded from the embedded list.
var StandardModules = map[string]bool{}

func init() {
	for _, line := range strings.Split(modulesData, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		StandardModules[line] = true
	}
}

// IsStandardModule checks if a dotted module path belongs to the Python
// standard library. Only the top-level segment decides: os.path is standard
// because os is.
func IsStandardModule(module string) bool {
	if module == "" {
		return false
	}
	top, _, _ := strings.Cut(module, ".")
	return StandardModules[top]
}
