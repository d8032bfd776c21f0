package index

import (
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

type scopeKindTag int

const (
	scopeModule scopeKindTag = iota
	scopeClass
	scopeFunction
)

// scopeCtx tracks where a statement sits: its fully-qualified dotted scope
// path (used as the Declaration.Scope key), the scope's own kind, and the
// nearest enclosing class name (used to resolve "self.attr = ..." targets).
type scopeCtx struct {
	kind      scopeKindTag
	scopePath string
	className string
}

func joinScope(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

// builder walks one file's parsed tree, recording declarations, attribute
// ownership, and import bindings into the shared ProjectIndex. candidateNames
// and externalSeen are shared across all files of one Indexer.Index call so
// the caller can compute the final RenameCandidates/ExternalNames sets once
// every file has been walked.
type builder struct {
	file           string
	idx            *ProjectIndex
	candidateNames map[string]struct{}
	externalSeen   map[string]struct{}
	projectFiles   map[string]bool
}

func (b *builder) declare(scopePath, name string, kind symbol.Kind, span pyparse.Span) {
	key := DeclKey{File: b.file, Scope: scopePath, Name: name}
	if _, exists := b.idx.Declarations[key]; !exists {
		b.idx.Declarations[key] = Declaration{File: b.file, Scope: scopePath, Name: name, Kind: kind, Span: span}
	}
	if !symbol.IsDunder(name) {
		b.candidateNames[name] = struct{}{}
	}
}

func (b *builder) declareClassAttribute(className, name string, span pyparse.Span) {
	key := DeclKey{File: b.file, Scope: className, Name: name}
	if _, exists := b.idx.Declarations[key]; !exists {
		b.idx.Declarations[key] = Declaration{File: b.file, Scope: className, Name: name, Kind: symbol.KindClassAttribute, Span: span}
	}
	if !symbol.IsDunder(name) {
		b.candidateNames[name] = struct{}{}
	}
	b.idx.addAttributeOwner(name, className)
}

func (b *builder) walkBlock(stmts []*pyparse.Node, ctx scopeCtx) {
	for _, stmt := range stmts {
		b.walkStatement(stmt, ctx)
	}
}

func (b *builder) walkStatement(n *pyparse.Node, ctx scopeCtx) {
	switch n.Kind() {
	case "function_definition":
		b.declareFunction(n, ctx)
	case "class_definition":
		b.declareClass(n, ctx)
	case "assignment":
		b.handleAssignment(n, ctx)
	case "for_statement":
		b.handleFor(n, ctx)
		if body := n.ChildByField("body"); body != nil {
			b.walkBlock(body.Children(), ctx)
		}
		if alt := n.ChildByField("alternative"); alt != nil {
			b.walkBlock(alt.Children(), ctx)
		}
	case "while_statement", "if_statement", "try_statement":
		b.walkCompound(n, ctx)
	case "with_statement":
		b.handleWithClause(n, ctx)
		b.walkCompound(n, ctx)
	case "import_statement", "import_from_statement":
		b.handleImport(n, ctx)
	case "expression_statement":
		// An assignment statement is an assignment node wrapped in an
		// expression_statement.
		for _, c := range n.Children() {
			if c.Kind() == "assignment" {
				b.handleAssignment(c, ctx)
			}
		}
	default:
		// pass/return/raise/break/continue: nothing to declare here;
		// dynamic sites are collected in a separate whole-tree pass.
	}
}

// walkCompound descends into the nested blocks of if/while/try/with
// statements without introducing a new Python scope.
func (b *builder) walkCompound(n *pyparse.Node, ctx scopeCtx) {
	for _, child := range n.Children() {
		switch child.Kind() {
		case "block":
			b.walkBlock(child.Children(), ctx)
		case "elif_clause", "else_clause", "except_clause", "except_group_clause", "finally_clause":
			b.walkCompound(child, ctx)
		}
	}
}
