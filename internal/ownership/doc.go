// Package ownership implements the Ownership Resolver: for every usage
// site in a file, it answers whether the receiver (or bare name) is
// project-owned, external, or unresolved.
//
// # Overview
//
// A Resolver is built once per project (Prepare walks every file to learn
// which names are project classes and which project functions/methods are
// declared or annotated to return a project-owned value, one hop deep).
// BuildScopes then produces, for one file, a Scope per executable scope
// (module, function, method) by replaying that scope's statements in
// source order and propagating ownership through assignments, annotations,
// iteration targets, comprehensions, and one-hop call returns. This
// mirrors internal/index's Builder: the same parent-chained scope-path
// convention, the same single forward walk, adapted from recording
// declarations to recording verdicts.
//
// # Flow (in)sensitivity
//
// Propagation is flow-insensitive: a name gets exactly one verdict per
// scope, the result of replaying every assignment to it in source order
// and keeping the last write, regardless of which branch a later read
// sits in. There is no branch-merge or fixed-point iteration.
package ownership
