package rewrite

import (
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

// visitExpr recurses through an expression, issuing renames for the parts
// whose ownership it can evaluate (bare identifiers, attribute accesses,
// call sites, dynamic-name string arguments) and otherwise descending
// generically into every named child. A plain string literal's named
// children (string_start, string_content, string_end) contain no
// identifiers, so it is left untouched without any special case; an
// f-string's embedded expressions are ordinary named children and are
// visited like any other subexpression.
func (fr *fileRewriter) visitExpr(n *pyparse.Node, ctx scopeCtx) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case "identifier":
		fr.renameDeclOrRef(n)
	case "attribute":
		fr.visitAttribute(n, ctx)
	case "call":
		fr.visitCall(n, ctx)
	case "lambda":
		fr.visitLambda(n, ctx)
	case "list_comprehension", "set_comprehension", "generator_expression", "dictionary_comprehension":
		fr.visitComprehension(n, ctx)
	case "named_expression":
		// walrus target ":=" is a fresh binding in the enclosing scope.
		if target := n.ChildByField("name"); target != nil {
			fr.renameDeclOrRef(target)
		}
		if value := n.ChildByField("value"); value != nil {
			fr.visitExpr(value, ctx)
		}
	case "keyword_argument":
		// Reached only outside a call's own argument list (a bug in the
		// grammar's usage would be the only way); visit its value and
		// leave its name alone since there is no callee context here.
		if v := n.ChildByField("value"); v != nil {
			fr.visitExpr(v, ctx)
		}
	default:
		for _, c := range n.Children() {
			fr.visitExpr(c, ctx)
		}
	}
}

// visitAttribute renames an attribute access (a.b) under the ownership
// policy: b renames when a's expression is project_local (or, with a
// warning, when a is unresolved but b's provenance is likely_local).
func (fr *fileRewriter) visitAttribute(n *pyparse.Node, ctx scopeCtx) {
	obj := n.ChildByField("object")
	attr := n.ChildByField("attribute")
	fr.visitExpr(obj, ctx)
	if attr == nil || symbol.IsDunder(attr.Text()) {
		return
	}

	receiverVerdict := fr.verdictOf(ctx, obj)
	tok, rename, likelyLocal := fr.ownershipGatedRename(receiverVerdict, attr.Text())
	if !rename {
		return
	}
	fr.addEdit(attr.Span(), tok)
	fr.stats.SymbolsRenamed++
	if likelyLocal {
		fr.stats.SymbolsRenamedLikelyLocal++
		fr.warn(attr.Span(), attr.Text(), "attribute owner unresolved; renamed under likely-local fallback")
	}
}

func (fr *fileRewriter) visitLambda(n *pyparse.Node, ctx scopeCtx) {
	if params := n.ChildByField("parameters"); params != nil {
		fr.visitParameters(params, ctx)
	}
	if body := n.ChildByField("body"); body != nil {
		fr.visitExpr(body, ctx)
	}
}

func (fr *fileRewriter) visitComprehension(n *pyparse.Node, ctx scopeCtx) {
	for _, c := range n.Children() {
		switch c.Kind() {
		case "for_in_clause":
			if right := c.ChildByField("right"); right != nil {
				fr.visitExpr(right, ctx)
			}
			fr.visitAssignTarget(c.ChildByField("left"), ctx)
		case "if_clause":
			for _, cc := range c.Children() {
				fr.visitExpr(cc, ctx)
			}
		default:
			fr.visitExpr(c, ctx)
		}
	}
}
