package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

func parseAll(t *testing.T, files map[string]string) map[string]*pyparse.Tree {
	t.Helper()
	p := pyparse.NewParser()
	trees := make(map[string]*pyparse.Tree, len(files))
	for path, content := range files {
		tree, err := p.Parse(path, []byte(content))
		require.NoError(t, err, path)
		trees[path] = tree
	}
	return trees
}

func TestIndexer_DeclarationsAndAttributes(t *testing.T) {
	files := map[string]string{
		"widget.py": "class Widget:\n" +
			"    def __init__(self):\n" +
			"        self.state = 1\n" +
			"\n" +
			"    def draw(self):\n" +
			"        return self.state\n",
	}
	trees := parseAll(t, files)

	idx := NewIndexer().Index(trees)

	classDecl, ok := idx.Declarations[DeclKey{File: "widget.py", Scope: "", Name: "Widget"}]
	require.True(t, ok)
	assert.Equal(t, symbol.KindClass, classDecl.Kind)

	methodDecl, ok := idx.Declarations[DeclKey{File: "widget.py", Scope: "Widget", Name: "draw"}]
	require.True(t, ok)
	assert.Equal(t, symbol.KindMethod, methodDecl.Kind)

	attrDecl, ok := idx.Declarations[DeclKey{File: "widget.py", Scope: "Widget", Name: "state"}]
	require.True(t, ok)
	assert.Equal(t, symbol.KindClassAttribute, attrDecl.Kind)

	owners, ok := idx.AttributeOwners["state"]
	require.True(t, ok)
	_, owned := owners["Widget"]
	assert.True(t, owned)

	assert.Contains(t, idx.RenameCandidates, "Widget")
	assert.Contains(t, idx.RenameCandidates, "draw")
	assert.Contains(t, idx.RenameCandidates, "state")
}

func TestIndexer_DunderNeverCandidate(t *testing.T) {
	trees := parseAll(t, map[string]string{
		"widget.py": "class Widget:\n    def __init__(self):\n        pass\n",
	})

	idx := NewIndexer().Index(trees)
	assert.NotContains(t, idx.RenameCandidates, "__init__")
}

func TestIndexer_Imports(t *testing.T) {
	files := map[string]string{
		"a.py": "class Widget:\n    pass\n",
		"b.py": "import argparse\nfrom a import Widget\n\nns = argparse.Namespace()\nw = Widget()\n",
	}
	trees := parseAll(t, files)

	idx := NewIndexer().Index(trees)

	bImports := idx.Imports["b.py"]
	require.NotNil(t, bImports)

	argImport, ok := bImports["argparse"]
	require.True(t, ok)
	assert.False(t, argImport.IsProjectModule)

	widgetImport, ok := bImports["Widget"]
	require.True(t, ok)
	assert.True(t, widgetImport.IsProjectModule)
	assert.Equal(t, "a", widgetImport.SourceModule)

	assert.Contains(t, idx.ExternalNames, "argparse")
	assert.Contains(t, idx.RenameCandidates, "Widget")
	assert.NotContains(t, idx.ExternalNames, "Widget")
}

func TestIndexer_DynamicSites(t *testing.T) {
	files := map[string]string{
		"widget.py": "class Widget:\n" +
			"    def __init__(self):\n" +
			"        self.state = 1\n" +
			"\n" +
			"def use(obj_a, obj_b):\n" +
			"    getattr(obj_a, \"state\")\n" +
			"    getattr(obj_b, \"state\")\n",
	}
	trees := parseAll(t, files)

	idx := NewIndexer().Index(trees)
	require.Len(t, idx.DynamicSites, 2)

	for _, site := range idx.DynamicSites {
		assert.Equal(t, symbol.DynamicGet, site.Kind)
		require.NotNil(t, site.NameLiteral)
		assert.Equal(t, "state", *site.NameLiteral)
	}
}

func TestIndexer_LoopAndComprehensionTargets(t *testing.T) {
	trees := parseAll(t, map[string]string{
		"widget.py": "def run(rows):\n    for r in rows:\n        use(r)\n",
	})

	idx := NewIndexer().Index(trees)
	_, ok := idx.Declarations[DeclKey{File: "widget.py", Scope: "run", Name: "r"}]
	assert.True(t, ok)
}
