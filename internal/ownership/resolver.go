package ownership

import (
	"strings"

	"github.com/zskulcsar/code-duplication-scanner/internal/index"
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

// builtinCallees are Python builtins the resolver always treats as
// external, even when a keyword argument name collides with a project
// parameter name.
var builtinCallees = map[string]struct{}{
	"len": {}, "min": {}, "max": {}, "str": {}, "int": {}, "float": {},
	"bool": {}, "range": {}, "print": {}, "isinstance": {}, "super": {},
	"repr": {}, "open": {}, "zip": {}, "map": {}, "id": {}, "type": {},
	"vars": {}, "dir": {}, "hash": {}, "input": {}, "format": {},
}

// elementPreservingCallees are builtins whose result's element ownership
// equals the element ownership of the argument S they draw elements from:
// sorted(S, ...), list(S), reversed(S), set(S), tuple(S), filter(pred, S).
// enumerate(S) (second component) is handled by iterableElementVerdict.
var elementPreservingCallees = map[string]struct{}{
	"sorted": {}, "list": {}, "reversed": {}, "filter": {}, "set": {}, "tuple": {},
}

// Resolver answers ownership verdicts for usage sites across the project.
// It is built once from a ProjectIndex plus every file's parsed tree and is
// immutable after Prepare returns.
type Resolver struct {
	idx *index.ProjectIndex

	// classNames is every project class's simple (unqualified) name.
	classNames map[string]struct{}

	// methodReturnsProject is every function/method simple name known, by
	// one-hop static evidence, to return a project-owned value: either its
	// return annotation names a project class, or it is itself a project
	// function/method with no contrary annotation.
	methodReturnsProject map[string]struct{}

	// containerElementClasses is every subscripted annotation text (as
	// recorded in ProjectIndex.TypeHints), e.g. "list[Record]" or
	// "dict[str, Record]", that names a project class among its type
	// arguments. A variable carrying one of these annotations is itself an
	// ordinary container, but its elements are project-owned.
	containerElementClasses map[string]struct{}
}

// NewResolver constructs a Resolver over idx. Call Prepare before resolving
// any file.
func NewResolver(idx *index.ProjectIndex) *Resolver {
	return &Resolver{
		idx:                     idx,
		classNames:              make(map[string]struct{}),
		methodReturnsProject:    make(map[string]struct{}),
		containerElementClasses: make(map[string]struct{}),
	}
}

// Prepare scans every declaration and function/method signature across
// trees to learn project class names and the one-hop method-return table.
// It must be called once, after every file has been indexed, before
// BuildScopes is used on any file.
func (r *Resolver) Prepare(trees map[string]*pyparse.Tree) {
	for key, decl := range r.idx.Declarations {
		if decl.Kind == symbol.KindClass {
			r.classNames[key.Name] = struct{}{}
		}
	}

	for _, tree := range trees {
		tree.Root.Walk(func(n *pyparse.Node) bool {
			if n.Kind() != "function_definition" {
				return true
			}
			nameNode := n.ChildByField("name")
			if nameNode == nil {
				return true
			}
			name := nameNode.Text()

			if rt := n.ChildByField("return_type"); rt != nil {
				if _, ok := r.classNames[stripQuotes(rt.Text())]; ok {
					r.methodReturnsProject[name] = struct{}{}
					return true
				}
				// An explicit external return annotation overrides the
				// "is a project function" fallback below.
				return true
			}

			// No annotation: a project-declared function/method is
			// conservatively assumed to return project-owned values,
			// per the "or by being in the project" clause.
			if _, isCandidate := r.idx.RenameCandidates[name]; isCandidate {
				r.methodReturnsProject[name] = struct{}{}
			}
			return true
		})
	}

	for _, hints := range r.idx.TypeHints {
		for text := range hints {
			for _, arg := range subscriptTypeArgs(text) {
				if _, ok := r.classNames[arg]; ok {
					r.containerElementClasses[text] = struct{}{}
					break
				}
			}
		}
	}
}

// subscriptTypeArgs splits the bracketed portion of a subscripted type
// annotation such as "list[Record]" or "dict[str, Record]" into its
// individual type-argument texts, trimmed and stripped of forward-reference
// quoting. It returns nil for a bare (non-subscripted) annotation.
func subscriptTypeArgs(annotation string) []string {
	open := strings.IndexByte(annotation, '[')
	shut := strings.LastIndexByte(annotation, ']')
	if open < 0 || shut < 0 || shut < open {
		return nil
	}
	parts := strings.Split(annotation[open+1:shut], ",")
	args := make([]string, 0, len(parts))
	for _, p := range parts {
		args = append(args, stripQuotes(strings.TrimSpace(p)))
	}
	return args
}

func stripQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// IsProjectClass reports whether name is a project-declared class.
func (r *Resolver) IsProjectClass(name string) bool {
	_, ok := r.classNames[name]
	return ok
}

// ReturnsProjectValue reports whether calling the function/method named
// name is known, by one-hop evidence, to produce a project-owned value.
func (r *Resolver) ReturnsProjectValue(name string) bool {
	_, ok := r.methodReturnsProject[name]
	return ok
}

// ContainerElementIsProjectLocal reports whether annotation is a
// subscripted container type (list[Record], dict[str, Record], ...) naming
// a project class among its type arguments.
func (r *Resolver) ContainerElementIsProjectLocal(annotation string) bool {
	_, ok := r.containerElementClasses[annotation]
	return ok
}
