package rewrite

import (
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

// visitImport handles an import statement. Unaliased forms ("import x",
// "from m import y") must keep their original module/member text
// byte-identical for the import to still resolve, so renaming them is a
// zero-width "as <token>" insertion rather than an in-place edit; a form
// that already carries an explicit alias renames just the alias span.
func (fr *fileRewriter) visitImport(n *pyparse.Node, _ scopeCtx) {
	switch n.Kind() {
	case "import_statement":
		for _, item := range n.Children() {
			fr.visitImportItem(item)
		}
	case "import_from_statement":
		children := n.Children()
		if len(children) == 0 {
			return
		}
		// children[0] is the module_name; the rest are the imported items.
		for _, item := range children[1:] {
			fr.visitFromImportItem(item)
		}
	}
}

func (fr *fileRewriter) visitImportItem(n *pyparse.Node) {
	switch n.Kind() {
	case "dotted_name":
		fr.insertImportAlias(n, firstDottedComponent(n.Text()))
	case "aliased_import":
		fr.renameDeclOrRef(n.ChildByField("alias"))
	}
}

func (fr *fileRewriter) visitFromImportItem(n *pyparse.Node) {
	switch n.Kind() {
	case "dotted_name", "identifier":
		fr.insertImportAlias(n, n.Text())
	case "aliased_import":
		fr.renameDeclOrRef(n.ChildByField("alias"))
	case "wildcard_import":
		// "from m import *" binds no specific local name.
	}
}

// insertImportAlias appends a zero-width " as <token>" edit right after n
// when local is mapped in the RenameMap, leaving n's own text untouched.
func (fr *fileRewriter) insertImportAlias(n *pyparse.Node, local string) {
	if symbol.IsDunder(local) {
		return
	}
	tok, ok := fr.rw.rm.Token(local)
	if !ok {
		return
	}
	end := n.Span().EndByte
	fr.addEdit(pyparse.Span{StartByte: end, EndByte: end}, " as "+tok)
	fr.stats.SymbolsRenamed++
}

func firstDottedComponent(dotted string) string {
	for i := 0; i < len(dotted); i++ {
		if dotted[i] == '.' {
			return dotted[:i]
		}
	}
	return dotted
}
