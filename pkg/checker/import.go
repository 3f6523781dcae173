package checker

// ImportStatement represents a single top-level import line
type ImportStatement struct {
	Text   string // trimmed statement text
	Module string // module name referenced by the statement
}

// Category represents the group an import statement belongs to
type Category int

const (
	Standard Category = iota
	ThirdParty
	Local
)

// categories is the fixed output order of the groups
var categories = []Category{Standard, ThirdParty, Local}

func (c Category) String() string {
	switch c {
	case Standard:
		return "standard"
	case ThirdParty:
		return "third_party"
	case Local:
		return "local"
	}
	return "unknown"
}

// Overrides holds caller-supplied module lists that short-circuit
// classification. Membership in more than one list is caller error; the
// first match in standard, third_party, local order wins.
type Overrides struct {
	Standard   []string
	ThirdParty []string
	Local      []string
}
