package ownership

import "github.com/zskulcsar/code-duplication-scanner/internal/symbol"

// Scope holds the ownership verdict the resolver has inferred for every
// local name bound in one executable scope (module, function, or method),
// plus a fallback to the owning FileScopes for names it does not bind
// itself (project classes, imports, bare references to other project
// declarations).
type Scope struct {
	owner    *FileScopes
	bindings map[string]symbol.Verdict

	// elements holds, for a name bound to an annotated container (e.g.
	// rows: list[Record]), the ownership verdict of the container's
	// elements, independent of the container's own verdict in bindings.
	elements map[string]symbol.Verdict
}

func newScope(owner *FileScopes) *Scope {
	return &Scope{
		owner:    owner,
		bindings: make(map[string]symbol.Verdict),
		elements: make(map[string]symbol.Verdict),
	}
}

// Bind records the final ownership verdict for name in this scope,
// overwriting any earlier verdict (flow-insensitive: last write wins).
func (s *Scope) Bind(name string, v symbol.Verdict) {
	if name == "" {
		return
	}
	s.bindings[name] = v
}

// BindElement records the ownership verdict of name's elements when name is
// bound to a project-typed container, overwriting any earlier verdict.
func (s *Scope) BindElement(name string, v symbol.Verdict) {
	if name == "" {
		return
	}
	s.elements[name] = v
}

// LookupElement returns the element ownership verdict recorded for name by
// BindElement, or VerdictUnresolved if name was never bound as a container.
func (s *Scope) LookupElement(name string) symbol.Verdict {
	return s.elements[name]
}

// Lookup returns the ownership verdict for a bare name: the scope's own
// binding if any, else the file-wide fallback (project class, import,
// project declaration, or unresolved).
func (s *Scope) Lookup(name string) symbol.Verdict {
	if v, ok := s.bindings[name]; ok {
		return v
	}
	return s.owner.globalVerdict(name)
}

// FileScopes is the set of per-scope bindings built for one file, plus the
// file-wide fallback lookups (project classes, this file's imports, other
// project declarations) shared by every scope in the file.
type FileScopes struct {
	r      *Resolver
	file   string
	scopes map[string]*Scope
}

// globalVerdict resolves a bare name with no scope-local binding: a
// project class referenced by name, an import alias, or a bare reference
// to a project function/method known by one-hop evidence to itself be
// project-owned. Anything else—crucially, an unannotated parameter or
// local that merely shares spelling with some unrelated declaration
// elsewhere in the project—is left unresolved rather than guessed at.
func (fs *FileScopes) globalVerdict(name string) symbol.Verdict {
	if fs.r.IsProjectClass(name) {
		return symbol.VerdictProjectLocal
	}
	if imp, ok := fs.r.idx.Imports[fs.file][name]; ok {
		if imp.IsProjectModule {
			return symbol.VerdictProjectLocal
		}
		return symbol.VerdictExternal
	}
	if _, ok := fs.r.idx.ExternalNames[name]; ok {
		return symbol.VerdictExternal
	}
	if fs.r.ReturnsProjectValue(name) {
		return symbol.VerdictProjectLocal
	}
	return symbol.VerdictUnresolved
}

// Scope returns the Scope for scopePath (module scope is ""), creating it
// empty if it has not been built yet.
func (fs *FileScopes) Scope(scopePath string) *Scope {
	sc, ok := fs.scopes[scopePath]
	if !ok {
		sc = newScope(fs)
		fs.scopes[scopePath] = sc
	}
	return sc
}
