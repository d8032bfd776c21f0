package rewrite

import "github.com/zskulcsar/code-duplication-scanner/internal/pyparse"

// Edit is a half-open byte-range replacement. Start == End is a zero-width
// insertion, used for `import x` -> `import x as <token>` normalization.
type Edit struct {
	Start       uint32
	End         uint32
	Replacement string
}

// Warning is a non-fatal event the Orchestrator attaches to its summary:
// an ambiguous-ownership rename applied under the likely-local policy, or
// an uncertain dynamic-name resolution.
type Warning struct {
	File    string
	Span    pyparse.Span
	Symbol  string
	Message string
}

// Stats counts what one file's rewrite did, aggregated by the Orchestrator
// into the project-wide TransformSummary counters.
type Stats struct {
	SymbolsRenamed            int
	SymbolsSkippedExternal    int
	SymbolsRenamedLikelyLocal int
	DynamicNameRewrites       int
}

// Result is the outcome of rewriting one file.
type Result struct {
	Output   []byte
	Changed  bool
	Stats    Stats
	Warnings []Warning
}
