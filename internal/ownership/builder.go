package ownership

import (
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

// BuildScopes replays root's statements in source order, building one
// Scope per executable scope (module scope is "", methods are
// "Class.method") for file. Call this once per file before rewriting it;
// the result is read-only for the remainder of that file's rewrite.
func (r *Resolver) BuildScopes(file string, root *pyparse.Node) *FileScopes {
	fs := &FileScopes{r: r, file: file, scopes: make(map[string]*Scope)}
	bd := &scopeBuilder{fs: fs}
	bd.walkBlock(root.Children(), scopeCtx{scopePath: ""})
	return fs
}

type scopeCtx struct {
	scopePath string
	className string
}

func joinScope(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

type scopeBuilder struct {
	fs *FileScopes
}

func (b *scopeBuilder) walkBlock(stmts []*pyparse.Node, ctx scopeCtx) {
	for _, stmt := range stmts {
		b.walkStatement(stmt, ctx)
	}
}

func (b *scopeBuilder) walkStatement(n *pyparse.Node, ctx scopeCtx) {
	switch n.Kind() {
	case "function_definition":
		b.buildFunction(n, ctx)
	case "class_definition":
		b.buildClass(n, ctx)
	case "assignment":
		b.handleAssignment(n, ctx)
	case "expression_statement":
		// An assignment statement is an assignment node wrapped in an
		// expression_statement.
		for _, c := range n.Children() {
			if c.Kind() == "assignment" {
				b.handleAssignment(c, ctx)
			}
		}
	case "for_statement":
		b.handleFor(n, ctx)
	case "with_statement":
		b.handleWith(n, ctx)
		b.descend(n, ctx)
	case "if_statement", "while_statement", "try_statement":
		b.descend(n, ctx)
	}
}

// descend walks the nested blocks of a compound statement without
// introducing a new scope: Python's if/while/try blocks share their
// enclosing function's (or module's) scope.
func (b *scopeBuilder) descend(n *pyparse.Node, ctx scopeCtx) {
	for _, child := range n.Children() {
		switch child.Kind() {
		case "block":
			b.walkBlock(child.Children(), ctx)
		case "elif_clause", "else_clause", "except_clause", "except_group_clause", "finally_clause", "with_clause":
			b.descend(child, ctx)
		}
	}
}

func (b *scopeBuilder) buildFunction(n *pyparse.Node, ctx scopeCtx) {
	nameNode := n.ChildByField("name")
	if nameNode == nil {
		return
	}
	childCtx := scopeCtx{scopePath: joinScope(ctx.scopePath, nameNode.Text()), className: ctx.className}
	scope := b.fs.Scope(childCtx.scopePath)

	if params := n.ChildByField("parameters"); params != nil {
		b.bindParameters(params, scope)
		// Inside a method, self/cls refer to the enclosing project class
		// or one of its instances.
		if ctx.className != "" {
			for _, p := range params.Children() {
				if p.Kind() == "identifier" && (p.Text() == "self" || p.Text() == "cls") {
					scope.Bind(p.Text(), symbol.VerdictProjectLocal)
				}
			}
		}
	}

	if body := n.ChildByField("body"); body != nil {
		b.walkBlock(body.Children(), childCtx)
	}
}

func (b *scopeBuilder) bindParameters(params *pyparse.Node, scope *Scope) {
	for _, p := range params.Children() {
		var nameNode, typeNode *pyparse.Node
		switch p.Kind() {
		case "typed_parameter", "typed_default_parameter":
			typeNode = p.ChildByField("type")
			nameNode = firstIdentifier(p)
		case "default_parameter":
			nameNode = p.ChildByField("name")
		case "identifier":
			nameNode = p
		default:
			continue
		}
		if nameNode == nil {
			continue
		}
		if typeNode != nil {
			annotated := stripQuotes(typeNode.Text())
			switch {
			case b.fs.r.IsProjectClass(annotated):
				scope.Bind(nameNode.Text(), symbol.VerdictProjectLocal)
			case b.fs.r.ContainerElementIsProjectLocal(annotated):
				scope.Bind(nameNode.Text(), symbol.VerdictExternal)
				scope.BindElement(nameNode.Text(), symbol.VerdictProjectLocal)
			default:
				scope.Bind(nameNode.Text(), symbol.VerdictExternal)
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

func (b *scopeBuilder) buildClass(n *pyparse.Node, ctx scopeCtx) {
	nameNode := n.ChildByField("name")
	if nameNode == nil {
		return
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
			b.buildFunction(stmt, childCtx)
		case "class_definition":
			b.buildClass(stmt, childCtx)
		}
	}
}

func (b *scopeBuilder) handleAssignment(n *pyparse.Node, ctx scopeCtx) {
	left := n.ChildByField("left")
	right := n.ChildByField("right")
	scope := b.fs.Scope(ctx.scopePath)

	var verdict, elementVerdict symbol.Verdict
	hasElement := false
	switch {
	case n.ChildByField("type") != nil:
		annotated := stripQuotes(n.ChildByField("type").Text())
		switch {
		case b.fs.r.IsProjectClass(annotated):
			verdict = symbol.VerdictProjectLocal
		case b.fs.r.ContainerElementIsProjectLocal(annotated):
			verdict = symbol.VerdictExternal
			elementVerdict = symbol.VerdictProjectLocal
			hasElement = true
		default:
			verdict = symbol.VerdictExternal
		}
	case right != nil:
		verdict = b.fs.ExprVerdict(scope, right)
	default:
		verdict = symbol.VerdictUnresolved
	}

	for _, target := range assignmentTargets(left) {
		if target.isSelfAttr {
			continue
		}
		scope.Bind(target.name, verdict)
		if hasElement {
			scope.BindElement(target.name, elementVerdict)
		}
	}

	if right != nil && right.Kind() == "assignment" {
		b.handleAssignment(right, ctx)
	}
}

func (b *scopeBuilder) handleFor(n *pyparse.Node, ctx scopeCtx) {
	scope := b.fs.Scope(ctx.scopePath)
	elementVerdict := b.fs.iterableElementVerdict(scope, n.ChildByField("right"))
	for _, target := range assignmentTargets(n.ChildByField("left")) {
		if target.isSelfAttr {
			continue
		}
		scope.Bind(target.name, elementVerdict)
	}
	if body := n.ChildByField("body"); body != nil {
		b.walkBlock(body.Children(), ctx)
	}
	if alt := n.ChildByField("alternative"); alt != nil {
		b.walkBlock(alt.Children(), ctx)
	}
}

func (b *scopeBuilder) handleWith(n *pyparse.Node, ctx scopeCtx) {
	scope := b.fs.Scope(ctx.scopePath)
	n.Walk(func(node *pyparse.Node) bool {
		if node.Kind() != "as_pattern" {
			return true
		}
		children := node.Children()
		if len(children) < 2 {
			return false
		}
		verdict := b.fs.ExprVerdict(scope, children[0])
		for _, target := range assignmentTargets(children[len(children)-1]) {
			scope.Bind(target.name, verdict)
		}
		return false
	})
}

type assignTarget struct {
	name       string
	isSelfAttr bool
}

// assignmentTargets flattens an assignment/for-loop left-hand side into the
// names it binds, mirroring internal/index's extractTargets.
func assignmentTargets(n *pyparse.Node) []assignTarget {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "identifier":
		return []assignTarget{{name: n.Text()}}
	case "attribute":
		obj := n.ChildByField("object")
		if obj != nil && obj.Kind() == "identifier" && (obj.Text() == "self" || obj.Text() == "cls") {
			return []assignTarget{{isSelfAttr: true}}
		}
		return nil
	case "tuple_pattern", "list_pattern", "pattern_list":
		var out []assignTarget
		for _, c := range n.Children() {
			out = append(out, assignmentTargets(c)...)
		}
		return out
	case "list_splat_pattern", "dictionary_splat_pattern":
		if children := n.Children(); len(children) > 0 {
			return assignmentTargets(children[0])
		}
	}
	return nil
}
