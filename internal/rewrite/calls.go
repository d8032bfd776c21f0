package rewrite

import (
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

// visitCall handles a call expression: getattr/setattr/hasattr are dynamic
// name sites with their own policy (dynamic.go); everything else visits its
// callee and argument list, additionally renaming keyword-argument names
// when the callee is itself a project-declared function or method.
func (fr *fileRewriter) visitCall(n *pyparse.Node, ctx scopeCtx) {
	fn := n.ChildByField("function")
	if fn != nil && fn.Kind() == "identifier" {
		switch fn.Text() {
		case "getattr", "setattr", "hasattr":
			fr.visitDynamicCall(fn.Text(), n, ctx)
			return
		}
	}

	if fn != nil {
		fr.visitExpr(fn, ctx)
	}
	args := n.ChildByField("arguments")
	if args == nil {
		return
	}

	projectCallee := fr.calleeIsProjectCallable(ctx, fn)
	for _, a := range args.Children() {
		if a.Kind() == "keyword_argument" {
			fr.visitKeywordArgument(a, ctx, projectCallee)
			continue
		}
		fr.visitExpr(a, ctx)
	}
}

func (fr *fileRewriter) visitKeywordArgument(n *pyparse.Node, ctx scopeCtx, projectCallee bool) {
	if v := n.ChildByField("value"); v != nil {
		fr.visitExpr(v, ctx)
	}
	if !projectCallee {
		return
	}
	nameNode := n.ChildByField("name")
	fr.renameDeclOrRef(nameNode)
}

// calleeIsProjectCallable reports whether fn names a function or method
// actually declared in the project, as opposed to merely evaluating to a
// project_local value (sorted(proj_list, key=...) is project_local by
// element-preserving propagation, but sorted itself is a builtin, so its
// key= argument must never be treated as a renameable parameter name).
func (fr *fileRewriter) calleeIsProjectCallable(ctx scopeCtx, fn *pyparse.Node) bool {
	if fn == nil {
		return false
	}
	switch fn.Kind() {
	case "identifier":
		_, ok := fr.rw.callables[fn.Text()]
		return ok
	case "attribute":
		attr := fn.ChildByField("attribute")
		obj := fn.ChildByField("object")
		if attr == nil {
			return false
		}
		if fr.verdictOf(ctx, obj) != symbol.VerdictProjectLocal {
			return false
		}
		_, ok := fr.rw.callables[attr.Text()]
		return ok
	}
	return false
}
