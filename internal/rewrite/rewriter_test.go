package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zskulcsar/code-duplication-scanner/internal/index"
	"github.com/zskulcsar/code-duplication-scanner/internal/ownership"
	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/rename"
)

// buildRewriter runs the full discovery pipeline (index -> rename map ->
// ownership resolver) over files and returns a Rewriter ready to transform
// any of them, plus the parsed trees for use by the caller.
func buildRewriter(t *testing.T, files map[string]string) (*Rewriter, *rename.RenameMap, map[string]*pyparse.Tree) {
	t.Helper()
	p := pyparse.NewParser()
	trees := make(map[string]*pyparse.Tree, len(files))
	for path, content := range files {
		tree, err := p.Parse(path, []byte(content))
		require.NoError(t, err, path)
		trees[path] = tree
	}

	idx := index.NewIndexer().Index(trees)
	rm, err := rename.NewMapper().Build(idx)
	require.NoError(t, err)

	res := ownership.NewResolver(idx)
	res.Prepare(trees)

	return NewRewriter(idx, rm, res), rm, trees
}

func TestRewriter_DeclarationsAndReferencesRenamed(t *testing.T) {
	source := "class Widget:\n" +
		"    def draw(self):\n" +
		"        return self\n" +
		"\n" +
		"def make():\n" +
		"    w = Widget()\n" +
		"    return w.draw()\n"
	rw, _, trees := buildRewriter(t, map[string]string{"widget.py": source})

	result := rw.Rewrite("widget.py", trees["widget.py"])
	require.True(t, result.Changed)
	out := string(result.Output)

	assert.NotContains(t, out, "class Widget")
	assert.NotContains(t, out, "def draw")
	assert.NotContains(t, out, "def make")
	assert.Contains(t, out, "def ", "function keyword itself is untouched")
	assert.Greater(t, result.Stats.SymbolsRenamed, 0)
}

func TestRewriter_PlainStringLiteralUntouchedInterpolatedRenamed(t *testing.T) {
	source := "class Row:\n" +
		"    def __init__(self):\n" +
		"        self.value = 0\n" +
		"\n" +
		"def describe(row):\n" +
		"    literal = \"row.value stays exactly like this\"\n" +
		"    live = f\"value is {row.value}\"\n" +
		"    return literal, live\n"
	rw, _, trees := buildRewriter(t, map[string]string{"a.py": source})

	result := rw.Rewrite("a.py", trees["a.py"])
	out := string(result.Output)

	assert.Contains(t, out, `"row.value stays exactly like this"`,
		"a plain string literal must never be edited, even when its text looks like an identifier")
	assert.NotContains(t, out, "row.value}", "the interpolated attribute access must be renamed")
}

func TestRewriter_ExternalAttributeNeverRenamed(t *testing.T) {
	source := "import os\n\n" +
		"def run():\n" +
		"    p = os.path.join(\"a\", \"b\")\n" +
		"    return p\n"
	rw, _, trees := buildRewriter(t, map[string]string{"a.py": source})

	result := rw.Rewrite("a.py", trees["a.py"])
	out := string(result.Output)

	assert.Contains(t, out, "os.path.join", "external module attribute chains are immune to renaming")
}

func TestRewriter_DynamicNameFollowsOwnership(t *testing.T) {
	source := "import argparse\n\n" +
		"class Row:\n" +
		"    def __init__(self):\n" +
		"        self.value = 0\n" +
		"\n" +
		"def run():\n" +
		"    row = Row()\n" +
		"    ns = argparse.Namespace()\n" +
		"    a = getattr(row, \"value\")\n" +
		"    b = getattr(ns, \"value\")\n" +
		"    return a, b\n"
	rw, rm, trees := buildRewriter(t, map[string]string{"a.py": source})

	result := rw.Rewrite("a.py", trees["a.py"])
	out := string(result.Output)

	// ns is itself a local of run, so its own name is replaced by its token.
	nsToken, ok := rm.Token("ns")
	require.True(t, ok)

	assert.Equal(t, 1, result.Stats.DynamicNameRewrites)
	assert.NotContains(t, out, `getattr(row, "value")`, "project-owned receiver's name literal is rewritten")
	assert.Contains(t, out, `getattr(`+nsToken+`, "value")`, "external receiver's name literal is left untouched")
}

func TestRewriter_KeywordArgumentRenamedOnlyForProjectCallables(t *testing.T) {
	source := "class Row:\n" +
		"    def __init__(self):\n" +
		"        self.key = 0\n" +
		"\n" +
		"def process(amount):\n" +
		"    return amount\n" +
		"\n" +
		"def run():\n" +
		"    rows = [Row()]\n" +
		"    ordered = sorted(rows, key=lambda r: r.key)\n" +
		"    process(amount=1)\n" +
		"    return ordered\n"
	rw, rm, trees := buildRewriter(t, map[string]string{"a.py": source})

	result := rw.Rewrite("a.py", trees["a.py"])
	out := string(result.Output)

	amountToken, ok := rm.Token("amount")
	require.True(t, ok, "\"amount\" is process's parameter and must be in the rename map")
	processToken, ok := rm.Token("process")
	require.True(t, ok)

	assert.Contains(t, out, "key=lambda",
		"sorted is a builtin: its key= keyword must never be renamed even though the list it sorts is project_local")
	assert.Contains(t, out, processToken+"("+amountToken+"=1)",
		"process is a project-declared function, so its call site's keyword name is renamed to match the renamed parameter")
	_ = strings.TrimSpace
}
