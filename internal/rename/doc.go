// Package rename implements the Rename Mapper: it turns a ProjectIndex into
// a single, deterministic, global map from original project-owned names to
// opaque two-letter (extending to three when exhausted) lowercase tokens.
//
// # Determinism
//
// Build sorts its candidate domain lexicographically and allocates tokens
// from a single monotonic generator, so an identical ProjectIndex always
// produces an identical RenameMap — this is a tested property, not an
// incidental one.
package rename
