package ownership

import (
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

// ExprVerdict evaluates the ownership verdict of an arbitrary expression
// node within scope. It is the single entry point both ScopeBuilder (while
// replaying assignments) and the Rewriter (while resolving a receiver
// expression at a usage site) use to answer "is this project-owned".
func (fs *FileScopes) ExprVerdict(scope *Scope, n *pyparse.Node) symbol.Verdict {
	if n == nil {
		return symbol.VerdictUnresolved
	}
	switch n.Kind() {
	case "identifier":
		return scope.Lookup(n.Text())
	case "parenthesized_expression":
		if c := firstChild(n); c != nil {
			return fs.ExprVerdict(scope, c)
		}
	case "attribute":
		obj := n.ChildByField("object")
		return fs.ExprVerdict(scope, obj)
	case "subscript":
		return fs.ExprVerdict(scope, n.ChildByField("value"))
	case "call":
		return fs.callVerdict(scope, n)
	case "list_comprehension", "set_comprehension", "generator_expression", "dictionary_comprehension":
		return fs.comprehensionElementVerdict(scope, n)
	}
	return symbol.VerdictUnresolved
}

func firstChild(n *pyparse.Node) *pyparse.Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// callVerdict evaluates `fn(...)`. A call to a project class constructor
// is project_local; a call to an element-preserving builtin propagates the
// ownership of the argument firstArg picks; a call naming a project
// function/method known (one-hop) to return a project-owned value is
// project_local; a method call through a project-owned receiver
// (obj.method(...), obj project_local) is project_local when the method
// name is a declared project attribute name or is known one-hop to return
// a project-owned value, and unresolved otherwise; any other call takes the
// verdict of its callee name or receiver.
func (fs *FileScopes) callVerdict(scope *Scope, call *pyparse.Node) symbol.Verdict {
	fn := call.ChildByField("function")
	if fn == nil {
		return symbol.VerdictUnresolved
	}

	switch fn.Kind() {
	case "identifier":
		name := fn.Text()
		if fs.r.IsProjectClass(name) {
			return symbol.VerdictProjectLocal
		}
		if _, preserving := elementPreservingCallees[name]; preserving {
			if first := firstArg(call); first != nil {
				return fs.ExprVerdict(scope, first)
			}
			return symbol.VerdictUnresolved
		}
		if _, builtin := builtinCallees[name]; builtin {
			return symbol.VerdictExternal
		}
		if fs.r.ReturnsProjectValue(name) {
			return symbol.VerdictProjectLocal
		}
		return scope.Lookup(name)
	case "attribute":
		obj := fn.ChildByField("object")
		attr := fn.ChildByField("attribute")
		receiverVerdict := fs.ExprVerdict(scope, obj)
		if receiverVerdict == symbol.VerdictProjectLocal && attr != nil {
			if _, declared := fs.r.idx.AttributeOwners[attr.Text()]; declared || fs.r.ReturnsProjectValue(attr.Text()) {
				return symbol.VerdictProjectLocal
			}
			return symbol.VerdictUnresolved
		}
		return receiverVerdict
	}
	return symbol.VerdictUnresolved
}

// firstArg returns the positional argument an element-preserving call draws
// its elements from: the first one, except for filter(pred, S), where it is S.
func firstArg(call *pyparse.Node) *pyparse.Node {
	args := call.ChildByField("arguments")
	if args == nil {
		return nil
	}
	skip := 0
	if fn := call.ChildByField("function"); fn != nil && fn.Kind() == "identifier" && fn.Text() == "filter" {
		skip = 1
	}
	for _, a := range args.Children() {
		if a.Kind() == "keyword_argument" {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		return a
	}
	return nil
}

// keywordArg returns the value expression bound to the given keyword
// argument name at a call site, or nil.
func keywordArg(call *pyparse.Node, name string) *pyparse.Node {
	args := call.ChildByField("arguments")
	if args == nil {
		return nil
	}
	for _, a := range args.Children() {
		if a.Kind() != "keyword_argument" {
			continue
		}
		if kn := a.ChildByField("name"); kn != nil && kn.Text() == name {
			return a.ChildByField("value")
		}
	}
	return nil
}

// comprehensionElementVerdict evaluates a comprehension/generator's element
// ownership as the ownership of its innermost for-clause's iterable.
func (fs *FileScopes) comprehensionElementVerdict(scope *Scope, n *pyparse.Node) symbol.Verdict {
	var iterable *pyparse.Node
	for _, c := range n.Children() {
		if c.Kind() == "for_in_clause" {
			iterable = c.ChildByField("right")
		}
	}
	return fs.iterableElementVerdict(scope, iterable)
}

// iterableElementVerdict evaluates the per-element ownership of an
// iterable expression E appearing in `for t in E` or a comprehension's
// clause: sorted(S, ...)/E[a:b]/enumerate(S) propagate from S; a bare name
// annotated as a project-typed container yields project_local elements.
func (fs *FileScopes) iterableElementVerdict(scope *Scope, n *pyparse.Node) symbol.Verdict {
	if n == nil {
		return symbol.VerdictUnresolved
	}
	if n.Kind() == "call" {
		fn := n.ChildByField("function")
		if fn != nil && fn.Kind() == "identifier" && fn.Text() == "enumerate" {
			if first := firstArg(n); first != nil {
				return fs.iterableElementVerdict(scope, first)
			}
			return symbol.VerdictUnresolved
		}
		if fn != nil && fn.Kind() == "identifier" {
			if _, preserving := elementPreservingCallees[fn.Text()]; preserving {
				if first := firstArg(n); first != nil {
					return fs.iterableElementVerdict(scope, first)
				}
			}
		}
	}
	if n.Kind() == "subscript" {
		return fs.iterableElementVerdict(scope, n.ChildByField("value"))
	}
	if n.Kind() == "identifier" {
		if v := scope.LookupElement(n.Text()); v != symbol.VerdictUnresolved {
			return v
		}
	}
	return fs.ExprVerdict(scope, n)
}
