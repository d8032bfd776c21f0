package index

import (
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

// DeclKey identifies one declaration record: the file it was declared in,
// the dotted path of the scope it was declared in ("" for module scope,
// "Widget" for a method of class Widget, "Widget.draw" for a parameter or
// local of that method; a class attribute uses the class's simple name),
// and its name.
type DeclKey struct {
	File  string
	Scope string
	Name  string
}

// Declaration is one recorded declaration site.
type Declaration struct {
	File string
	Scope string
	Name string
	Kind symbol.Kind
	Span pyparse.Span
	// Attributes holds, for Kind == KindClass only, the set of attribute
	// names assigned or typed-declared directly in the class body or via
	// self.<name> assignment in one of its methods.
	Attributes map[string]struct{}
}

// Import is one local binding introduced by an import statement.
type Import struct {
	LocalName       string
	SourceModule    string
	Member          string // "*module*" for a whole-module import
	IsProjectModule bool
	Span            pyparse.Span
}

// DynamicSite is one call to getattr/setattr/hasattr.
type DynamicSite struct {
	File            string
	Span            pyparse.Span
	Kind            symbol.DynamicSiteKind
	ReceiverExpr    string
	NameLiteral     *string
	NameLiteralSpan pyparse.Span
}

// ProjectIndex is the immutable cross-file aggregate produced by Indexer.Index.
type ProjectIndex struct {
	Declarations map[DeclKey]Declaration

	// Imports is keyed by file, then by the local bind name.
	Imports map[string]map[string]Import

	// AttributeOwners maps an attribute name to the set of class names
	// (unqualified) that declare it anywhere in the project.
	AttributeOwners map[string]map[string]struct{}

	DynamicSites []DynamicSite

	// TypeHints maps file -> the set of annotation expression texts seen,
	// for ownership inference only; it is not renamed as its own category.
	TypeHints map[string]map[string]struct{}

	RenameCandidates map[string]struct{}
	ExternalNames    map[string]struct{}
}

func newProjectIndex() *ProjectIndex {
	return &ProjectIndex{
		Declarations:     make(map[DeclKey]Declaration),
		Imports:          make(map[string]map[string]Import),
		AttributeOwners:  make(map[string]map[string]struct{}),
		DynamicSites:     nil,
		TypeHints:        make(map[string]map[string]struct{}),
		RenameCandidates: make(map[string]struct{}),
		ExternalNames:    make(map[string]struct{}),
	}
}

func (p *ProjectIndex) addAttributeOwner(attr, class string) {
	set, ok := p.AttributeOwners[attr]
	if !ok {
		set = make(map[string]struct{})
		p.AttributeOwners[attr] = set
	}
	set[class] = struct{}{}
}

func (p *ProjectIndex) addTypeHint(file, text string) {
	set, ok := p.TypeHints[file]
	if !ok {
		set = make(map[string]struct{})
		p.TypeHints[file] = set
	}
	set[text] = struct{}{}
}
