// Package obfuscate implements the Orchestrator: it sequences the Parse
// Facade, Project Indexer, Rename Mapper, Ownership Resolver, and Rewriter
// across a whole project.
//
// # Overview
//
// Transform runs five steps in order and fails fast on the first fatal
// error: parse every file, build the ProjectIndex, build the RenameMap,
// then for each file in lexicographic path order run the Rewriter and
// re-parse its output as the validation gate. Non-fatal events (ambiguous
// ownership renamed under the likely-local policy, uncertain dynamic-name
// resolution) accumulate as warnings on the returned TransformSummary
// instead of aborting the run.
//
// # Determinism
//
// Every step is single-threaded and synchronous; the same project_root
// and file_set always produce the same RenameMap and the same transformed
// bytes for every file.
package obfuscate
