package rewrite

import (
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

func (fr *fileRewriter) visitBlock(stmts []*pyparse.Node, ctx scopeCtx) {
	for _, stmt := range stmts {
		fr.visitStatement(stmt, ctx)
	}
}

func (fr *fileRewriter) visitStatement(n *pyparse.Node, ctx scopeCtx) {
	switch n.Kind() {
	case "function_definition":
		fr.visitFunction(n, ctx)
	case "class_definition":
		fr.visitClass(n, ctx)
	case "decorated_definition":
		fr.visitDecorated(n, ctx)
	case "assignment":
		fr.visitAssignment(n, ctx)
	case "augmented_assignment":
		fr.visitAugmentedAssignment(n, ctx)
	case "for_statement":
		fr.visitFor(n, ctx)
	case "with_statement":
		fr.visitWith(n, ctx)
	case "import_statement", "import_from_statement":
		fr.visitImport(n, ctx)
	case "if_statement", "while_statement", "try_statement":
		fr.descendCompound(n, ctx)
	case "expression_statement", "return_statement", "delete_statement", "assert_statement", "raise_statement":
		for _, c := range n.Children() {
			fr.visitExpr(c, ctx)
		}
	default:
		// pass/break/continue/global/nonlocal/import aliases for a package
		// scope not covered above: nothing identifier-bearing to rewrite.
	}
}

func (fr *fileRewriter) descendCompound(n *pyparse.Node, ctx scopeCtx) {
	for _, child := range n.Children() {
		switch child.Kind() {
		case "block":
			fr.visitBlock(child.Children(), ctx)
		case "elif_clause", "else_clause", "except_clause", "except_group_clause", "finally_clause":
			fr.visitCompoundCondition(child, ctx)
			fr.descendCompound(child, ctx)
		default:
			// condition expression of if/while/elif, or the exception
			// type of an except clause.
			fr.visitExpr(child, ctx)
		}
	}
}

// visitCompoundCondition rewrites the condition/exception-type expression
// directly attached to an elif/except clause (its own non-block children).
func (fr *fileRewriter) visitCompoundCondition(n *pyparse.Node, ctx scopeCtx) {
	for _, c := range n.Children() {
		if c.Kind() != "block" {
			fr.visitExpr(c, ctx)
		}
	}
}

func (fr *fileRewriter) visitDecorated(n *pyparse.Node, ctx scopeCtx) {
	for _, c := range n.Children() {
		switch c.Kind() {
		case "decorator":
			for _, d := range c.Children() {
				fr.visitExpr(d, ctx)
			}
		default:
			fr.visitStatement(c, ctx)
		}
	}
}

func (fr *fileRewriter) visitFunction(n *pyparse.Node, ctx scopeCtx) {
	nameNode := n.ChildByField("name")
	if nameNode == nil {
		return
	}
	fr.renameDeclOrRef(nameNode)

	childCtx := scopeCtx{scopePath: joinScope(ctx.scopePath, nameNode.Text()), className: ctx.className}

	if params := n.ChildByField("parameters"); params != nil {
		fr.visitParameters(params, childCtx)
	}
	if rt := n.ChildByField("return_type"); rt != nil {
		fr.visitExpr(rt, childCtx)
	}
	if body := n.ChildByField("body"); body != nil {
		fr.visitBlock(body.Children(), childCtx)
	}
}

func (fr *fileRewriter) visitParameters(params *pyparse.Node, ctx scopeCtx) {
	for _, p := range params.Children() {
		switch p.Kind() {
		case "identifier":
			fr.renameDeclOrRef(p)
		case "typed_parameter":
			if id := firstIdentifier(p); id != nil {
				fr.renameDeclOrRef(id)
			}
			if t := p.ChildByField("type"); t != nil {
				fr.visitExpr(t, ctx)
			}
		case "default_parameter", "typed_default_parameter":
			if nameNode := p.ChildByField("name"); nameNode != nil {
				fr.renameDeclOrRef(nameNode)
			}
			if t := p.ChildByField("type"); t != nil {
				fr.visitExpr(t, ctx)
			}
			if v := p.ChildByField("value"); v != nil {
				fr.visitExpr(v, ctx)
			}
		case "list_splat_pattern", "dictionary_splat_pattern":
			if id := firstIdentifier(p); id != nil {
				fr.renameDeclOrRef(id)
			}
		}
	}
}

func firstIdentifier(n *pyparse.Node) *pyparse.Node {
	for _, c := range n.Children() {
		if c.Kind() == "identifier" {
			return c
		}
	}
	return nil
}

func (fr *fileRewriter) visitClass(n *pyparse.Node, ctx scopeCtx) {
	nameNode := n.ChildByField("name")
	if nameNode == nil {
		return
	}
	fr.renameDeclOrRef(nameNode)

	if bases := n.ChildByField("superclasses"); bases != nil {
		fr.visitExpr(bases, ctx)
	}

	className := nameNode.Text()
	childCtx := scopeCtx{scopePath: joinScope(ctx.scopePath, className), className: className}
	body := n.ChildByField("body")
	if body == nil {
		return
	}
	for _, stmt := range body.Children() {
		switch stmt.Kind() {
		case "function_definition":
			fr.visitFunction(stmt, childCtx)
		case "class_definition":
			fr.visitClass(stmt, childCtx)
		case "decorated_definition":
			fr.visitDecorated(stmt, childCtx)
		case "assignment":
			fr.visitClassBodyAssignment(stmt, childCtx)
		case "expression_statement":
			for _, c := range stmt.Children() {
				if c.Kind() == "assignment" {
					fr.visitClassBodyAssignment(c, childCtx)
				}
			}
		case "if_statement", "try_statement", "with_statement":
			fr.descendCompound(stmt, childCtx)
		default:
			// docstrings, pass: nothing to rewrite
		}
	}
}

// visitClassBodyAssignment handles a class-level attribute assignment,
// e.g. "name: str" or "count = 0", renaming the attribute name itself
// (it is always project_local: it is declared by the enclosing class).
func (fr *fileRewriter) visitClassBodyAssignment(n *pyparse.Node, ctx scopeCtx) {
	left := n.ChildByField("left")
	if left != nil && left.Kind() == "identifier" {
		fr.renameDeclOrRef(left)
	}
	if t := n.ChildByField("type"); t != nil {
		fr.visitExpr(t, ctx)
	}
	if right := n.ChildByField("right"); right != nil {
		fr.visitExpr(right, ctx)
	}
}

func (fr *fileRewriter) visitAssignment(n *pyparse.Node, ctx scopeCtx) {
	left := n.ChildByField("left")
	right := n.ChildByField("right")

	if t := n.ChildByField("type"); t != nil {
		fr.visitExpr(t, ctx)
	}
	if right != nil {
		fr.visitExpr(right, ctx)
	}
	fr.visitAssignTarget(left, ctx)
}

func (fr *fileRewriter) visitAugmentedAssignment(n *pyparse.Node, ctx scopeCtx) {
	left := n.ChildByField("left")
	right := n.ChildByField("right")
	if right != nil {
		fr.visitExpr(right, ctx)
	}
	// An augmented target ("x += 1") is a read-and-write of an existing
	// binding: treat it as a reference/attribute expression, not a fresh
	// declaration target.
	fr.visitExpr(left, ctx)
}

// visitAssignTarget renames the declaration targets of an assignment's
// left-hand side: bare names and tuple/list patterns rename directly,
// "self.attr"/"cls.attr" targets rename as an attribute access (always
// project_local since the class itself declares the attribute), anything
// else (e.g. subscript assignment "d[k] = v") is visited as a read.
func (fr *fileRewriter) visitAssignTarget(n *pyparse.Node, ctx scopeCtx) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case "identifier":
		fr.renameDeclOrRef(n)
	case "attribute":
		fr.visitAttribute(n, ctx)
	case "tuple_pattern", "list_pattern", "pattern_list":
		for _, c := range n.Children() {
			fr.visitAssignTarget(c, ctx)
		}
	case "list_splat_pattern", "dictionary_splat_pattern":
		if children := n.Children(); len(children) > 0 {
			fr.visitAssignTarget(children[0], ctx)
		}
	default:
		fr.visitExpr(n, ctx)
	}
}

func (fr *fileRewriter) visitFor(n *pyparse.Node, ctx scopeCtx) {
	if right := n.ChildByField("right"); right != nil {
		fr.visitExpr(right, ctx)
	}
	fr.visitAssignTarget(n.ChildByField("left"), ctx)
	if body := n.ChildByField("body"); body != nil {
		fr.visitBlock(body.Children(), ctx)
	}
	if alt := n.ChildByField("alternative"); alt != nil {
		fr.visitBlock(alt.Children(), ctx)
	}
}

func (fr *fileRewriter) visitWith(n *pyparse.Node, ctx scopeCtx) {
	for _, child := range n.Children() {
		if child.Kind() != "with_clause" {
			continue
		}
		for _, item := range child.Children() {
			if item.Kind() != "as_pattern" {
				// A bare context-manager expression with no "as" clause.
				fr.visitExpr(item, ctx)
				continue
			}
			children := item.Children()
			if len(children) > 0 {
				fr.visitExpr(children[0], ctx)
			}
			if len(children) > 1 {
				fr.visitAssignTarget(children[len(children)-1], ctx)
			}
		}
	}
	if body := n.ChildByField("body"); body != nil {
		fr.visitBlock(body.Children(), ctx)
	}
}

func (fr *fileRewriter) verdictOf(ctx scopeCtx, n *pyparse.Node) symbol.Verdict {
	scope := fr.fs.Scope(ctx.scopePath)
	return fr.fs.ExprVerdict(scope, n)
}
