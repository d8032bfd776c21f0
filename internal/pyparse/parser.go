package pyparse

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Tree is a parsed file: its root node plus the source it was parsed from,
// kept together so callers can slice text out of spans without threading a
// second argument through every call.
type Tree struct {
	Root   *Node
	Source []byte
	Path   string
}

// Parser produces Trees from Python source. A Parser is reusable across
// files but not safe for concurrent use, matching the orchestrator's
// single-threaded sequencing.
type Parser struct {
	lang *sitter.Language
}

// NewParser constructs a Parser configured for the Python grammar.
func NewParser() *Parser {
	return &Parser{lang: python.GetLanguage()}
}

// Parse parses source bytes from path into a Tree. It returns ErrEmptySource
// for zero-length input and ErrSyntax wrapped with position information when
// tree-sitter's error recovery produced any ERROR/MISSING node.
func (p *Parser) Parse(path string, source []byte) (*Tree, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptySource)
	}

	sp := sitter.NewParser()
	sp.SetLanguage(p.lang)

	raw, err := sp.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("%s: parse: %w", path, err)
	}

	root := &Node{raw: raw.RootNode(), source: source}
	tree := &Tree{Root: root, Source: source, Path: path}

	if root.HasErrors() {
		pos := firstErrorPosition(root)
		return tree, fmt.Errorf("%s:%d:%d: %w", path, pos.Row+1, pos.Column+1, ErrSyntax)
	}

	return tree, nil
}

// Reparse re-parses rewritten output as the post-rewrite validation gate. A
// failure is reported as ErrReparse rather than the underlying parse error
// so callers can distinguish pre-transform from post-transform failures.
func (p *Parser) Reparse(path string, source []byte) (*Tree, error) {
	tree, err := p.Parse(path, source)
	if err != nil {
		return tree, fmt.Errorf("%s: %w: %v", path, ErrReparse, err)
	}
	return tree, nil
}

func firstErrorPosition(root *Node) Point {
	var find func(n *sitter.Node) (Point, bool)
	find = func(n *sitter.Node) (Point, bool) {
		if n.IsError() || n.IsMissing() {
			return spanOf(n).Start, true
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if pos, ok := find(n.Child(i)); ok {
				return pos, true
			}
		}
		return Point{}, false
	}
	pos, _ := find(root.raw)
	return pos
}
