package rename

import "errors"

// ErrTokenExhausted is returned by Build when the token generator cannot
// make forward progress — every candidate within a generous iteration
// budget collides with an existing project identifier or a previously
// emitted token. This is a fatal error for the whole transform.
var ErrTokenExhausted = errors.New("rename: token namespace exhausted")
