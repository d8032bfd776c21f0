package rename

import "github.com/zskulcsar/code-duplication-scanner/internal/symbol"

// RenameMap is the immutable global mapping produced by Build. A single
// name maps to the same token everywhere it occurs in the project; the map
// is never scoped per-file or per-class.
type RenameMap struct {
	Mapping    map[string]string
	Provenance map[string]symbol.Provenance
}

// Token returns the obfuscated token for name and whether name is mapped.
func (m *RenameMap) Token(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	tok, ok := m.Mapping[name]
	return tok, ok
}

// Len reports how many names are mapped.
func (m *RenameMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Mapping)
}
