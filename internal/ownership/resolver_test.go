package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zskulcsar/code-duplication-scanner/internal/index"
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

func TestResolver_ConstructorIsProjectLocal(t *testing.T) {
	trees := parseAll(t, map[string]string{
		"widget.py": "class Widget:\n    def draw(self):\n        return self.state\n\n" +
			"def make():\n    w = Widget()\n    return w.draw()\n",
	})
	idx := index.NewIndexer().Index(trees)
	r := NewResolver(idx)
	r.Prepare(trees)

	fs := r.BuildScopes("widget.py", trees["widget.py"].Root)
	scope := fs.Scope("make")
	assert.Equal(t, symbol.VerdictProjectLocal, scope.Lookup("w"))
}

func TestResolver_ExternalModuleCallIsExternal(t *testing.T) {
	trees := parseAll(t, map[string]string{
		"a.py": "import argparse\n\ndef run():\n    ns = argparse.Namespace()\n    return ns\n",
	})
	idx := index.NewIndexer().Index(trees)
	r := NewResolver(idx)
	r.Prepare(trees)

	fs := r.BuildScopes("a.py", trees["a.py"].Root)
	scope := fs.Scope("run")
	assert.Equal(t, symbol.VerdictExternal, scope.Lookup("ns"))
}

func TestResolver_AnnotatedParameterOwnership(t *testing.T) {
	trees := parseAll(t, map[string]string{
		"a.py": "class Record:\n    pass\n\ndef use(x: Record):\n    return x\n\ndef other(x: SomeExternal):\n    return x\n",
	})
	idx := index.NewIndexer().Index(trees)
	r := NewResolver(idx)
	r.Prepare(trees)

	fs := r.BuildScopes("a.py", trees["a.py"].Root)
	assert.Equal(t, symbol.VerdictProjectLocal, fs.Scope("use").Lookup("x"))
	assert.Equal(t, symbol.VerdictExternal, fs.Scope("other").Lookup("x"))
}

func TestResolver_SortedPropagatesElementOwnership(t *testing.T) {
	trees := parseAll(t, map[string]string{
		"a.py": "class Record:\n    pass\n\n" +
			"def load():\n    pass\n\n" +
			"def run():\n    rows: list[Record] = load()\n" +
			"    for r in sorted(rows, key=lambda x: x.score):\n        use(r.score)\n",
	})
	idx := index.NewIndexer().Index(trees)
	r := NewResolver(idx)
	r.Prepare(trees)

	fs := r.BuildScopes("a.py", trees["a.py"].Root)
	scope := fs.Scope("run")
	// rows is annotated list[Record]: the list itself is an ordinary
	// container (external), but sorted() preserves its elements' ownership,
	// which the annotation's type argument resolves to project_local.
	assert.Equal(t, symbol.VerdictExternal, scope.Lookup("rows"))
	assert.Equal(t, symbol.VerdictProjectLocal, scope.Lookup("r"))
}

func TestResolver_UnannotatedParameterIsUnresolved(t *testing.T) {
	trees := parseAll(t, map[string]string{
		"a.py": "def f(x):\n    return x\n",
	})
	idx := index.NewIndexer().Index(trees)
	r := NewResolver(idx)
	r.Prepare(trees)

	fs := r.BuildScopes("a.py", trees["a.py"].Root)
	assert.Equal(t, symbol.VerdictUnresolved, fs.Scope("f").Lookup("x"))
}
