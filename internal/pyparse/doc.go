// Package pyparse is the Parse Facade: it turns Python source bytes into a
// concrete syntax tree whose nodes expose kind, span, and child iteration,
// and it re-parses rewritten output as the post-rewrite validation gate.
//
// # Overview
//
// pyparse wraps github.com/smacker/go-tree-sitter and its Python grammar
// behind a small Node/Span vocabulary so the rest of the obfuscation
// pipeline never imports the tree-sitter API directly. A Parser is reusable
// across files; it is not safe for concurrent use, which matches the single
// -threaded orchestrator that is the only caller.
//
// # Usage
//
//	p := pyparse.NewParser()
//	tree, err := p.Parse(path, source)
//	if err != nil {
//		// parse error with position, fatal for this file
//	}
//	tree.Root.Walk(func(n *pyparse.Node) bool { ... })
//
// # Validation gate
//
// After the Rewriter produces new source bytes, the orchestrator calls
// Parser.Reparse on the result. A failure there is fatal for the whole
// transform per the fail-fast policy; Reparse itself does nothing beyond
// Parse plus a named error so callers can distinguish "failed before
// rewrite" from "failed after rewrite" in logs.
package pyparse
