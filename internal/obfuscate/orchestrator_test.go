package obfuscate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestTransform_MultiFileClassConsistency(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, map[string]string{
		"a.py": "class Widget:\n    def draw(self):\n        return self\n",
		"b.py": "from a import Widget\n\ndef run():\n    return Widget().draw()\n",
	})

	summary := NewOrchestrator().Transform(root, []string{"a.py", "b.py"})
	require.False(t, summary.Failed, "%v", summary.Err)

	a, err := os.ReadFile(filepath.Join(root, "a.py"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(root, "b.py"))
	require.NoError(t, err)

	assert.NotContains(t, string(a), "class Widget")
	assert.NotContains(t, string(b), "Widget()")
	assert.Equal(t, summary.PythonFilesDiscovered, 2)
	assert.Equal(t, summary.PythonFilesProcessed, 2)
	assert.Greater(t, summary.SymbolsRenamed, 0)
}

func TestTransform_UnchangedFileIsNotRewritten(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, map[string]string{
		"only_external.py": "import os\n\nprint(os.getcwd())\n",
	})

	before, err := os.Stat(filepath.Join(root, "only_external.py"))
	require.NoError(t, err)

	summary := NewOrchestrator().Transform(root, []string{"only_external.py"})
	require.False(t, summary.Failed, "%v", summary.Err)
	assert.Equal(t, 1, summary.PythonFilesUnchanged)

	after, err := os.Stat(filepath.Join(root, "only_external.py"))
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestTransform_ParseErrorIsFatal(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, map[string]string{
		"broken.py": "def f(:\n    pass\n",
	})

	summary := NewOrchestrator().Transform(root, []string{"broken.py"})
	assert.True(t, summary.Failed)
	assert.ErrorIs(t, summary.Err, ErrParse)
}

func TestTransform_RunIDIsStableShapeAcrossRuns(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, map[string]string{
		"a.py": "def greet():\n    return 'hi'\n",
	})

	first := NewOrchestrator().Transform(root, []string{"a.py"})
	require.False(t, first.Failed)

	root2 := t.TempDir()
	writeProject(t, root2, map[string]string{
		"a.py": "def greet():\n    return 'hi'\n",
	})
	second := NewOrchestrator().Transform(root2, []string{"a.py"})
	require.False(t, second.Failed)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.NotEmpty(t, first.RunID)
}
