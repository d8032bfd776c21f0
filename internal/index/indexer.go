package index

import (
	"sort"

	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
)

// Indexer builds a ProjectIndex from a set of already-parsed files. It holds
// no state between calls to Index.
type Indexer struct{}

// NewIndexer constructs an Indexer.
func NewIndexer() *Indexer {
	return &Indexer{}
}

// Index walks every tree in trees (keyed by project-relative, forward-slash
// path) and aggregates declarations, imports, dynamic sites, and attribute
// ownership into a ProjectIndex. Files are walked in lexicographic path
// order, so the order of DynamicSites is the same on every run.
func (ix *Indexer) Index(trees map[string]*pyparse.Tree) *ProjectIndex {
	idx := newProjectIndex()

	projectFiles := make(map[string]bool, len(trees))
	for path := range trees {
		projectFiles[path] = true
	}

	paths := make([]string, 0, len(trees))
	for path := range trees {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	candidateNames := make(map[string]struct{})
	externalSeen := make(map[string]struct{})

	for _, path := range paths {
		tree := trees[path]
		b := &builder{
			file:           path,
			idx:            idx,
			candidateNames: candidateNames,
			externalSeen:   externalSeen,
			projectFiles:   projectFiles,
		}
		b.walkBlock(tree.Root.Children(), scopeCtx{kind: scopeModule})
		b.collectDynamicSites(tree.Root)
	}

	for name := range candidateNames {
		idx.RenameCandidates[name] = struct{}{}
	}
	for name := range externalSeen {
		if _, isCandidate := candidateNames[name]; isCandidate {
			continue
		}
		idx.ExternalNames[name] = struct{}{}
	}

	return idx
}
