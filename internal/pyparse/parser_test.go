package pyparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParser(t *testing.T) {
	p := NewParser()
	assert.NotNil(t, p)
	assert.NotNil(t, p.lang)
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, tree *Tree)
	}{
		{
			name:    "simple function",
			content: "def draw():\n    pass\n",
			check: func(t *testing.T, tree *Tree) {
				assert.Equal(t, "module", tree.Root.Kind())
				assert.False(t, tree.Root.HasErrors())
			},
		},
		{
			name:    "class with method",
			content: "class Widget:\n    def draw(self):\n        return 1\n",
			check: func(t *testing.T, tree *Tree) {
				assert.False(t, tree.Root.HasErrors())
				found := false
				tree.Root.Walk(func(n *Node) bool {
					if n.Kind() == "class_definition" {
						found = true
					}
					return true
				})
				assert.True(t, found)
			},
		},
		{
			name:    "empty source",
			content: "",
			wantErr: true,
		},
		{
			name:    "unterminated string is a syntax error",
			content: "x = \"unterminated\n",
			wantErr: true,
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := p.Parse("widget.py", []byte(tt.content))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tree)
			tt.check(t, tree)
		})
	}
}

func TestParser_Reparse(t *testing.T) {
	p := NewParser()
	_, err := p.Reparse("widget.py", []byte("def draw():\n    pass\n"))
	assert.NoError(t, err)

	_, err = p.Reparse("widget.py", []byte(""))
	assert.ErrorIs(t, err, ErrReparse)
}

func TestNodeWalkAndSpan(t *testing.T) {
	p := NewParser()
	tree, err := p.Parse("widget.py", []byte("def draw():\n    return 1\n"))
	require.NoError(t, err)

	var names []string
	tree.Root.Walk(func(n *Node) bool {
		if n.Kind() == "identifier" {
			names = append(names, n.Text())
		}
		return true
	})
	assert.Contains(t, names, "draw")

	span := tree.Root.Span()
	assert.Equal(t, 0, span.Start.Row)
}
