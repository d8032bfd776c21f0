package index

import (
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

type targetInfo struct {
	Name      string
	IsSelfAttr bool
	Span      pyparse.Span
}

// extractTargets flattens an assignment/for-loop left-hand side into the
// individual names it binds, marking attribute targets of the form
// "self.name" / "cls.name" so callers can route them to class_attribute
// declarations instead of locals.
func extractTargets(n *pyparse.Node) []targetInfo {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "identifier":
		return []targetInfo{{Name: n.Text(), Span: n.Span()}}
	case "attribute":
		obj := n.ChildByField("object")
		attr := n.ChildByField("attribute")
		if obj != nil && attr != nil && obj.Kind() == "identifier" && (obj.Text() == "self" || obj.Text() == "cls") {
			return []targetInfo{{Name: attr.Text(), IsSelfAttr: true, Span: attr.Span()}}
		}
		return nil
	case "tuple_pattern", "list_pattern", "pattern_list":
		var out []targetInfo
		for _, c := range n.Children() {
			out = append(out, extractTargets(c)...)
		}
		return out
	case "list_splat_pattern", "dictionary_splat_pattern":
		if children := n.Children(); len(children) > 0 {
			return extractTargets(children[0])
		}
		return nil
	default:
		return nil
	}
}

func firstIdentifierChild(n *pyparse.Node) *pyparse.Node {
	for _, c := range n.Children() {
		if c.Kind() == "identifier" {
			return c
		}
	}
	return nil
}

func (b *builder) declareFunction(n *pyparse.Node, ctx scopeCtx) {
	nameNode := n.ChildByField("name")
	if nameNode == nil {
		return
	}
	name := nameNode.Text()
	kind := symbol.KindFunction
	if ctx.kind == scopeClass {
		kind = symbol.KindMethod
	}
	b.declare(ctx.scopePath, name, kind, nameNode.Span())

	childCtx := scopeCtx{kind: scopeFunction, scopePath: joinScope(ctx.scopePath, name), className: ctx.className}

	if params := n.ChildByField("parameters"); params != nil {
		b.declareParameters(params, childCtx)
	}
	if rt := n.ChildByField("return_type"); rt != nil {
		b.idx.addTypeHint(b.file, rt.Text())
	}
	if body := n.ChildByField("body"); body != nil {
		b.walkBlock(body.Children(), childCtx)
	}
}

func (b *builder) declareParameters(params *pyparse.Node, ctx scopeCtx) {
	for _, p := range params.Children() {
		switch p.Kind() {
		case "identifier":
			b.declare(ctx.scopePath, p.Text(), symbol.KindParameter, p.Span())
		case "typed_parameter":
			if id := firstIdentifierChild(p); id != nil {
				b.declare(ctx.scopePath, id.Text(), symbol.KindParameter, id.Span())
			}
			if t := p.ChildByField("type"); t != nil {
				b.idx.addTypeHint(b.file, t.Text())
			}
		case "default_parameter", "typed_default_parameter":
			if nameNode := p.ChildByField("name"); nameNode != nil {
				b.declare(ctx.scopePath, nameNode.Text(), symbol.KindParameter, nameNode.Span())
			}
			if t := p.ChildByField("type"); t != nil {
				b.idx.addTypeHint(b.file, t.Text())
			}
		case "list_splat_pattern", "dictionary_splat_pattern":
			if id := firstIdentifierChild(p); id != nil {
				b.declare(ctx.scopePath, id.Text(), symbol.KindParameter, id.Span())
			}
		}
	}
}

func (b *builder) declareClass(n *pyparse.Node, ctx scopeCtx) {
	nameNode := n.ChildByField("name")
	if nameNode == nil {
		return
	}
	name := nameNode.Text()
	b.declare(ctx.scopePath, name, symbol.KindClass, nameNode.Span())

	childCtx := scopeCtx{kind: scopeClass, scopePath: joinScope(ctx.scopePath, name), className: name}
	body := n.ChildByField("body")
	if body == nil {
		return
	}
	for _, stmt := range body.Children() {
		switch stmt.Kind() {
		case "function_definition":
			b.declareFunction(stmt, childCtx)
		case "class_definition":
			b.declareClass(stmt, childCtx)
		default:
			b.walkClassBodyStatement(stmt, childCtx)
		}
	}

	attrs := make(map[string]struct{})
	for key, decl := range b.idx.Declarations {
		if key.File == b.file && key.Scope == name && decl.Kind == symbol.KindClassAttribute {
			attrs[key.Name] = struct{}{}
		}
	}
	classKey := DeclKey{File: b.file, Scope: ctx.scopePath, Name: name}
	if decl, ok := b.idx.Declarations[classKey]; ok && decl.Kind == symbol.KindClass {
		decl.Attributes = attrs
		b.idx.Declarations[classKey] = decl
	}
}

func (b *builder) walkClassBodyStatement(n *pyparse.Node, ctx scopeCtx) {
	switch n.Kind() {
	case "assignment":
		b.handleClassAssignment(n, ctx)
	case "expression_statement":
		for _, c := range n.Children() {
			if c.Kind() == "assignment" {
				b.handleClassAssignment(c, ctx)
			}
		}
	case "if_statement", "try_statement", "with_statement":
		b.walkCompoundClassBody(n, ctx)
	default:
		// docstrings, pass, etc: nothing to declare
	}
}

func (b *builder) walkCompoundClassBody(n *pyparse.Node, ctx scopeCtx) {
	for _, child := range n.Children() {
		switch child.Kind() {
		case "block":
			for _, stmt := range child.Children() {
				b.walkClassBodyStatement(stmt, ctx)
			}
		case "elif_clause", "else_clause", "except_clause", "except_group_clause", "finally_clause":
			b.walkCompoundClassBody(child, ctx)
		}
	}
}

func (b *builder) handleClassAssignment(n *pyparse.Node, ctx scopeCtx) {
	if t := n.ChildByField("type"); t != nil {
		b.idx.addTypeHint(b.file, t.Text())
	}
	for _, target := range extractTargets(n.ChildByField("left")) {
		b.declareClassAttribute(ctx.className, target.Name, target.Span)
	}
}

func (b *builder) handleAssignment(n *pyparse.Node, ctx scopeCtx) {
	left := n.ChildByField("left")
	right := n.ChildByField("right")
	if t := n.ChildByField("type"); t != nil {
		b.idx.addTypeHint(b.file, t.Text())
	}
	for _, target := range extractTargets(left) {
		if target.IsSelfAttr {
			if ctx.className != "" {
				b.declareClassAttribute(ctx.className, target.Name, target.Span)
			}
			continue
		}
		b.declare(ctx.scopePath, target.Name, symbol.KindLocal, target.Span)
	}
	// Chained assignment ("a = b = 1") nests further assignments in the
	// right-hand side; walk them so every target is recorded.
	if right != nil && right.Kind() == "assignment" {
		b.handleAssignment(right, ctx)
	}
}

func (b *builder) handleFor(n *pyparse.Node, ctx scopeCtx) {
	for _, target := range extractTargets(n.ChildByField("left")) {
		if target.IsSelfAttr {
			if ctx.className != "" {
				b.declareClassAttribute(ctx.className, target.Name, target.Span)
			}
			continue
		}
		b.declare(ctx.scopePath, target.Name, symbol.KindLocal, target.Span)
	}
}

func (b *builder) handleWithClause(n *pyparse.Node, ctx scopeCtx) {
	for _, child := range n.Children() {
		if child.Kind() != "with_clause" {
			continue
		}
		child.Walk(func(node *pyparse.Node) bool {
			if node.Kind() != "as_pattern" {
				return true
			}
			children := node.Children()
			if len(children) > 0 {
				last := children[len(children)-1]
				for _, target := range extractTargets(last) {
					b.declare(ctx.scopePath, target.Name, symbol.KindLocal, target.Span)
				}
			}
			return false
		})
	}
}
