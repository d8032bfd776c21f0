package obfuscate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/zskulcsar/code-duplication-scanner/internal/index"
	"github.com/zskulcsar/code-duplication-scanner/internal/ownership"
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/rename"
	"github.com/zskulcsar/code-duplication-scanner/internal/rewrite"
)

// Orchestrator drives the five-step pipeline over a project: parse, index,
// map, rewrite-and-validate, per file in lexicographic path order. It
// holds no state between calls to Transform.
type Orchestrator struct {
	parser *pyparse.Parser
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{parser: pyparse.NewParser()}
}

// Options controls CLI/MCP-facing behavior layered on top of the core
// pipeline; the pipeline itself has no other configurable policy.
type Options struct {
	// DryRun computes the full transform, including the re-parse
	// validation gate, but never writes any file to disk.
	DryRun bool
}

// Transform runs the full pipeline against root: files are project-relative
// paths under root (forward-slash separated), already filtered and
// discovered by the caller. Every transformed file is written back to its
// path under root unless it was unchanged.
func (o *Orchestrator) Transform(root string, files []string) *TransformSummary {
	return o.TransformWithOptions(root, files, Options{})
}

// TransformWithOptions is Transform with CLI/MCP-facing options applied.
func (o *Orchestrator) TransformWithOptions(root string, files []string, opts Options) *TransformSummary {
	summary := newSummary()

	sorted := make([]string, len(files))
	copy(sorted, files)
	sort.Strings(sorted)
	summary.PythonFilesDiscovered = len(sorted)

	trees, err := o.parseAll(root, sorted)
	if err != nil {
		return summary.fail(fmt.Errorf("%w: %v", ErrParse, err))
	}

	idx := index.NewIndexer().Index(trees)
	summary.SymbolsDiscovered = len(idx.Declarations)

	rm, err := rename.NewMapper().Build(idx)
	if err != nil {
		return summary.fail(err)
	}

	resolver := ownership.NewResolver(idx)
	resolver.Prepare(trees)
	rewriter := rewrite.NewRewriter(idx, rm, resolver)

	for _, path := range sorted {
		tree := trees[path]
		result := rewriter.Rewrite(path, tree)

		if _, err := o.parser.Reparse(path, result.Output); err != nil {
			return summary.fail(fmt.Errorf("%w: %s: %v", ErrValidation, path, err))
		}

		summary.PythonFilesProcessed++
		summary.SymbolsRenamed += result.Stats.SymbolsRenamed
		summary.SymbolsSkippedExternal += result.Stats.SymbolsSkippedExternal
		summary.SymbolsRenamedLikelyLocal += result.Stats.SymbolsRenamedLikelyLocal
		summary.DynamicNameRewrites += result.Stats.DynamicNameRewrites

		for _, w := range result.Warnings {
			summary.Warnings = append(summary.Warnings, warningFromEdit(w))
			slog.Warn("ambiguous ownership", "run_id", summary.RunID, "file", w.File,
				"line", w.Span.Start.Row+1, "column", w.Span.Start.Column+1, "symbol", w.Symbol, "message", w.Message)
		}

		if !result.Changed {
			summary.PythonFilesUnchanged++
			continue
		}

		if opts.DryRun {
			continue
		}

		if err := writeAtomic(filepath.Join(root, path), result.Output); err != nil {
			return summary.fail(fmt.Errorf("%w: %s: %v", ErrIO, path, err))
		}
	}

	return summary.succeed()
}

// parseAll reads and parses every file under root. Any parse error aborts
// the whole run before any file is indexed or rewritten: a parse error is
// fatal for the transform, not just for the one file.
func (o *Orchestrator) parseAll(root string, files []string) (map[string]*pyparse.Tree, error) {
	trees := make(map[string]*pyparse.Tree, len(files))

	for _, path := range files {
		abs := filepath.Join(root, path)
		source, err := os.ReadFile(abs)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
		}

		tree, err := o.parser.Parse(path, source)
		if err != nil {
			return nil, err
		}

		trees[path] = tree
	}

	return trees, nil
}

// writeAtomic writes data to path by first writing a sibling temp file and
// renaming it into place, so a crash mid-write never leaves a truncated
// source file behind. mode is inherited from the original file permissions.
func writeAtomic(path string, data []byte) error {
	info, err := os.Stat(path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode()
	}

	tmp := path + ".pyobf-tmp"
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
