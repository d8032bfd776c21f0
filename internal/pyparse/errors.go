package pyparse

import "errors"

var (
	// ErrEmptySource is returned when Parse is given zero-length content.
	ErrEmptySource = errors.New("pyparse: empty source")
	// ErrSyntax is returned when tree-sitter reports structural errors in
	// the parsed tree (an ERROR or MISSING node was produced).
	ErrSyntax = errors.New("pyparse: syntax error")
	// ErrReparse is returned by Parser.Reparse when rewritten output fails
	// the post-rewrite validation gate.
	ErrReparse = errors.New("pyparse: rewritten output does not parse")
)
