package pyparse

import sitter "github.com/smacker/go-tree-sitter"

// Point is a zero-based line/column position within a source file.
type Point struct {
	Row    int
	Column int
}

// Span is a half-open byte range plus its corresponding line/column
// endpoints, used both for AST-accurate edits and for warning diagnostics.
type Span struct {
	StartByte uint32
	EndByte   uint32
	Start     Point
	End       Point
}

func spanOf(n *sitter.Node) Span {
	return Span{
		StartByte: n.StartByte(),
		EndByte:   n.EndByte(),
		Start:     Point{Row: int(n.StartPoint().Row), Column: int(n.StartPoint().Column)},
		End:       Point{Row: int(n.EndPoint().Row), Column: int(n.EndPoint().Column)},
	}
}

// Node wraps a tree-sitter node, exposing the kind/span/child vocabulary the
// rest of the pipeline consumes. It never exposes the underlying tree-sitter
// type, matching the wrapping discipline the rest of this codebase uses
// around third-party parsers.
type Node struct {
	raw    *sitter.Node
	source []byte
}

// Kind is the grammar node type, e.g. "function_definition" or "identifier".
func (n *Node) Kind() string {
	if n == nil || n.raw == nil {
		return ""
	}
	return n.raw.Type()
}

// Span returns the node's byte and line/column extent.
func (n *Node) Span() Span {
	if n == nil || n.raw == nil {
		return Span{}
	}
	return spanOf(n.raw)
}

// Text returns the node's source slice.
func (n *Node) Text() string {
	if n == nil || n.raw == nil {
		return ""
	}
	return n.raw.Content(n.source)
}

// IsNamed reports whether this node is a named grammar production rather
// than an anonymous token (punctuation, keywords).
func (n *Node) IsNamed() bool {
	return n != nil && n.raw != nil && n.raw.IsNamed()
}

// IsError reports whether tree-sitter recovered this node via error
// production, meaning the source around it did not match the grammar.
func (n *Node) IsError() bool {
	return n != nil && n.raw != nil && (n.raw.IsError() || n.raw.IsMissing())
}

// ChildCount returns the number of named children.
func (n *Node) ChildCount() int {
	if n == nil || n.raw == nil {
		return 0
	}
	return int(n.raw.NamedChildCount())
}

// Child returns the i-th named child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || n.raw == nil || i < 0 || i >= int(n.raw.NamedChildCount()) {
		return nil
	}
	return &Node{raw: n.raw.NamedChild(i), source: n.source}
}

// Children returns all named children in source order.
func (n *Node) Children() []*Node {
	if n == nil || n.raw == nil {
		return nil
	}
	count := int(n.raw.NamedChildCount())
	out := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, &Node{raw: n.raw.NamedChild(i), source: n.source})
	}
	return out
}

// ChildByField returns the named child bound to the given grammar field
// (e.g. "name", "body", "value"), or nil if the field is absent on this node.
func (n *Node) ChildByField(field string) *Node {
	if n == nil || n.raw == nil {
		return nil
	}
	raw := n.raw.ChildByFieldName(field)
	if raw == nil {
		return nil
	}
	return &Node{raw: raw, source: n.source}
}

// Walk performs a pre-order traversal of the tree rooted at n, invoking
// visit for every named node (see Children) including n itself. Returning
// false from visit skips
// that node's children but continues the walk at its siblings.
func (n *Node) Walk(visit func(*Node) bool) {
	if n == nil || n.raw == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range n.Children() {
		child.Walk(visit)
	}
}

// HasErrors reports whether n or any descendant, named or anonymous, is an
// error/missing node.
func (n *Node) HasErrors() bool {
	return n != nil && n.raw != nil && n.raw.HasError()
}
