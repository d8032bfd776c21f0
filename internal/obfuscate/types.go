package obfuscate

import (
	"time"

	"github.com/google/uuid"

	"github.com/zskulcsar/code-duplication-scanner/internal/rewrite"
)

// Warning is one non-fatal event recorded during a run: an ambiguous-
// ownership rename applied under the likely-local policy, or an uncertain
// dynamic-name resolution.
type Warning struct {
	File    string
	Line    int
	Column  int
	Symbol  string
	Message string
}

func warningFromEdit(w rewrite.Warning) Warning {
	return Warning{
		File:    w.File,
		Line:    w.Span.Start.Row + 1,
		Column:  w.Span.Start.Column + 1,
		Symbol:  w.Symbol,
		Message: w.Message,
	}
}

// TransformSummary is the Orchestrator's return value: per-run counters, a
// run id and timing for log correlation, and the accumulated warnings.
type TransformSummary struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time

	PythonFilesDiscovered int
	PythonFilesProcessed  int
	PythonFilesUnchanged  int

	SymbolsDiscovered         int
	SymbolsRenamed            int
	SymbolsSkippedExternal    int
	SymbolsRenamedLikelyLocal int
	DynamicNameRewrites       int

	Warnings []Warning

	// Failed is set when the run aborted with a fatal error; Err holds the
	// error that caused it. Files already written before the failure are
	// not reverted; there is no rollback.
	Failed bool
	Err    error
}

func newSummary() *TransformSummary {
	return &TransformSummary{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}
}

func (s *TransformSummary) fail(err error) *TransformSummary {
	s.Failed = true
	s.Err = err
	s.FinishedAt = time.Now()
	return s
}

func (s *TransformSummary) succeed() *TransformSummary {
	s.FinishedAt = time.Now()
	return s
}
