// Package rewrite implements the Rewriter: it turns one parsed file, the
// project's RenameMap, and the Ownership Resolver into transformed source
// bytes.
//
// # Overview
//
// Rewrite walks a file's syntax tree once, building a sorted list of
// non-overlapping byte-span edits rather than mutating the tree in place —
// go-tree-sitter trees are read-only over their source bytes, so edits are
// spliced into the original byte slice instead of being printed back out
// of a mutated node graph. Declarations, bare references, attribute
// accesses, import bindings, keyword arguments at call sites, and
// getattr/setattr/hasattr string arguments each get their own rewrite rule;
// plain string literals are never edited, and interpolated (f-string)
// literals are handled for free because tree-sitter already parses their
// embedded expressions as ordinary child nodes — only those get edits, the
// static text segments are never touched.
//
// # Validation gate
//
// Rewrite itself only produces bytes; the caller (internal/obfuscate) is
// responsible for feeding the result back through pyparse.Parser.Reparse
// as the fail-fast validation gate.
package rewrite
