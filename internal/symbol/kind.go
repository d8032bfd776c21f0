// Package symbol defines the value types shared by every stage of the
// obfuscation pipeline: symbol kinds, ownership verdicts, and provenance
// confidence tags. None of these types carry behavior beyond classification;
// they exist so the indexer, mapper, resolver, and rewriter can agree on a
// single vocabulary without importing each other.
package symbol

// Kind enumerates the declaration kinds the indexer records.
type Kind int

const (
	KindUnknown Kind = iota
	KindModule
	KindClass
	KindFunction
	KindMethod
	KindParameter
	KindLocal
	KindClassAttribute
	KindImportAlias
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	case KindParameter:
		return "parameter"
	case KindLocal:
		return "local"
	case KindClassAttribute:
		return "class_attribute"
	case KindImportAlias:
		return "import_alias"
	default:
		return "unknown"
	}
}

// IsDunder reports whether name starts and ends with a double underscore,
// e.g. "__init__". Dunder names are never eligible for renaming.
func IsDunder(name string) bool {
	if len(name) < 4 {
		return false
	}
	return name[0] == '_' && name[1] == '_' && name[len(name)-1] == '_' && name[len(name)-2] == '_'
}
