package index

import (
	"path/filepath"
	"strings"

	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

// resolveModule decides whether a dotted import path (possibly prefixed
// with relative-import dots) resolves to a file inside the project set,
// considering both a flat layout and a src/-style layout.
func resolveModule(projectFiles map[string]bool, currentFile, moduleText string) bool {
	level := 0
	i := 0
	for i < len(moduleText) && moduleText[i] == '.' {
		level++
		i++
	}
	rest := moduleText[i:]

	if level > 0 {
		// Relative imports are project-local by construction: they can
		// only resolve within the project tree.
		return true
	}

	relPath := filepath.ToSlash(strings.ReplaceAll(rest, ".", "/"))
	candidates := []string{
		relPath + ".py",
		relPath + "/__init__.py",
		"src/" + relPath + ".py",
		"src/" + relPath + "/__init__.py",
	}
	for _, c := range candidates {
		if projectFiles[c] {
			return true
		}
	}
	_ = currentFile
	return false
}

func (b *builder) handleImport(n *pyparse.Node, ctx scopeCtx) {
	switch n.Kind() {
	case "import_statement":
		for _, child := range n.Children() {
			b.handleImportItem(child, ctx)
		}
	case "import_from_statement":
		moduleNode := n.ChildByField("module_name")
		var moduleText string
		if moduleNode != nil {
			moduleText = moduleNode.Text()
		}
		for _, child := range n.Children() {
			if moduleNode != nil && child.Span() == moduleNode.Span() {
				continue
			}
			b.handleImportFromItem(child, moduleText, ctx)
		}
	}
}

func (b *builder) handleImportItem(n *pyparse.Node, ctx scopeCtx) {
	switch n.Kind() {
	case "dotted_name":
		dotted := n.Text()
		local := strings.SplitN(dotted, ".", 2)[0]
		isProject := resolveModule(b.projectFiles, b.file, dotted)
		b.recordImportBinding(ctx.scopePath, local, dotted, "*module*", isProject, n.Span())
	case "aliased_import":
		nameNode := n.ChildByField("name")
		aliasNode := n.ChildByField("alias")
		if nameNode == nil || aliasNode == nil {
			return
		}
		dotted := nameNode.Text()
		isProject := resolveModule(b.projectFiles, b.file, dotted)
		b.recordImportBinding(ctx.scopePath, aliasNode.Text(), dotted, "*module*", isProject, aliasNode.Span())
	}
}

func (b *builder) handleImportFromItem(n *pyparse.Node, moduleText string, ctx scopeCtx) {
	isProject := resolveModule(b.projectFiles, b.file, moduleText)
	switch n.Kind() {
	case "dotted_name", "identifier":
		member := n.Text()
		b.recordImportBinding(ctx.scopePath, member, moduleText, member, isProject, n.Span())
	case "aliased_import":
		nameNode := n.ChildByField("name")
		aliasNode := n.ChildByField("alias")
		if nameNode == nil || aliasNode == nil {
			return
		}
		b.recordImportBinding(ctx.scopePath, aliasNode.Text(), moduleText, nameNode.Text(), isProject, aliasNode.Span())
	case "wildcard_import":
		// "from m import *": no specific local name is bound.
	}
}

func (b *builder) recordImportBinding(scopePath, local, module, member string, isProject bool, span pyparse.Span) {
	if b.idx.Imports[b.file] == nil {
		b.idx.Imports[b.file] = make(map[string]Import)
	}
	b.idx.Imports[b.file][local] = Import{
		LocalName:       local,
		SourceModule:    module,
		Member:          member,
		IsProjectModule: isProject,
		Span:            span,
	}

	key := DeclKey{File: b.file, Scope: scopePath, Name: local}
	if _, exists := b.idx.Declarations[key]; !exists {
		b.idx.Declarations[key] = Declaration{File: b.file, Scope: scopePath, Name: local, Kind: symbol.KindImportAlias, Span: span}
	}

	if symbol.IsDunder(local) {
		return
	}
	if isProject {
		b.candidateNames[local] = struct{}{}
	} else {
		b.externalSeen[local] = struct{}{}
	}
}
