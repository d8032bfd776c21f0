// Package index implements the Project Indexer: a single pass per file that
// records declarations, import bindings, dynamic-name call sites, and
// attribute ownership across a multi-file project, aggregated into an
// immutable ProjectIndex.
//
// # Overview
//
// Indexer.Index walks every file's parsed tree once. Declarations are
// collected with a parent-chained scope path (module, class, function) so
// the same local name in two different functions never collides; imports
// are resolved against the project's own file set to decide project-local
// vs. external; calls to getattr/setattr/hasattr are recorded wherever they
// occur, independent of scope, since ownership for those sites is resolved
// later during rewrite.
//
// # Cross-file resolution
//
// The indexer never resolves a reference against another file's
// declarations while walking; it only records what each file itself
// declares and imports. Cross-file lookups (e.g. "is this imported name a
// project class") happen once the full ProjectIndex exists, avoiding any
// ordering dependency between files.
package index
