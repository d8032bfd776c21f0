package rewrite

import (
	"github.com/zskulcsar/code-duplication-scanner/internal/index"
	"github.com/zskulcsar/code-duplication-scanner/internal/ownership"
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/rename"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

// Rewriter produces transformed source for one file at a time, consulting
// the project-wide ProjectIndex, RenameMap, and Ownership Resolver. It
// holds no state between calls to Rewrite.
type Rewriter struct {
	idx *index.ProjectIndex
	rm  *rename.RenameMap
	res *ownership.Resolver

	// callables is every name declared anywhere in the project as a
	// function or method, used to decide whether a call's keyword
	// arguments are themselves eligible for renaming: a call's overall
	// ownership verdict (which may propagate through element-preserving
	// builtins like sorted) says nothing about whether the callee is a
	// project-defined signature.
	callables map[string]struct{}
}

// NewRewriter constructs a Rewriter. res must already have had Prepare
// called against every file in the project.
func NewRewriter(idx *index.ProjectIndex, rm *rename.RenameMap, res *ownership.Resolver) *Rewriter {
	callables := make(map[string]struct{})
	for key, decl := range idx.Declarations {
		if decl.Kind == symbol.KindFunction || decl.Kind == symbol.KindMethod {
			callables[key.Name] = struct{}{}
		}
	}
	return &Rewriter{idx: idx, rm: rm, res: res, callables: callables}
}

// Rewrite transforms one file's parsed tree. The caller is responsible for
// re-parsing Result.Output as the post-rewrite validation gate.
func (rw *Rewriter) Rewrite(file string, tree *pyparse.Tree) Result {
	fs := rw.res.BuildScopes(file, tree.Root)
	fr := &fileRewriter{rw: rw, file: file, fs: fs}
	fr.visitBlock(tree.Root.Children(), scopeCtx{})

	output := apply(tree.Source, fr.edits)
	return Result{
		Output:   output,
		Changed:  len(fr.edits) > 0,
		Stats:    fr.stats,
		Warnings: fr.warnings,
	}
}

type scopeCtx struct {
	scopePath string
	className string
}

func joinScope(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

// fileRewriter accumulates edits, counters, and warnings for one file.
type fileRewriter struct {
	rw   *Rewriter
	file string
	fs   *ownership.FileScopes

	edits    []Edit
	stats    Stats
	warnings []Warning
}

func (fr *fileRewriter) addEdit(span pyparse.Span, replacement string) {
	fr.edits = append(fr.edits, Edit{Start: span.StartByte, End: span.EndByte, Replacement: replacement})
}

func (fr *fileRewriter) warn(span pyparse.Span, sym, message string) {
	fr.warnings = append(fr.warnings, Warning{File: fr.file, Span: span, Symbol: sym, Message: message})
}

// renameDeclOrRef renames an identifier-bearing node directly when its text
// is in the RenameMap: declarations, bare references, and loop/comprehension
// targets all follow this one unconditional rule.
func (fr *fileRewriter) renameDeclOrRef(n *pyparse.Node) {
	if n == nil {
		return
	}
	name := n.Text()
	if symbol.IsDunder(name) {
		return
	}
	tok, ok := fr.rw.rm.Token(name)
	if !ok {
		return
	}
	fr.addEdit(n.Span(), tok)
	fr.stats.SymbolsRenamed++
}

// ownershipGatedRename decides whether to rename a name that is only
// reachable conditional on ownership evidence (an attribute name or a
// dynamic-access string literal): rename unconditionally when the receiver
// is project_local, rename-with-warning when the receiver is unresolved
// but the name's provenance is likely_local, otherwise leave it; a mapped
// name left alone because its receiver is external is counted in
// SymbolsSkippedExternal.
func (fr *fileRewriter) ownershipGatedRename(receiverVerdict symbol.Verdict, name string) (token string, rename bool, likelyLocal bool) {
	tok, ok := fr.rw.rm.Token(name)
	if !ok {
		return "", false, false
	}
	switch receiverVerdict {
	case symbol.VerdictProjectLocal:
		return tok, true, false
	case symbol.VerdictUnresolved:
		if fr.rw.rm.Provenance[name] == symbol.ProvenanceLikelyLocal {
			return tok, true, true
		}
		return "", false, false
	default: // external
		fr.stats.SymbolsSkippedExternal++
		return "", false, false
	}
}
