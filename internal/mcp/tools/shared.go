package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
)

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

func textResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}, nil, nil
}

// parseProject reads and parses every path in files (project-relative,
// forward-slash) rooted at projectRoot, in sorted path order, returning them
// keyed by path.
func parseProject(projectRoot string, files []string) (map[string]*pyparse.Tree, error) {
	sorted := make([]string, len(files))
	copy(sorted, files)
	sort.Strings(sorted)

	p := pyparse.NewParser()
	trees := make(map[string]*pyparse.Tree, len(sorted))
	for _, path := range sorted {
		source, err := os.ReadFile(filepath.Join(projectRoot, path))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		tree, err := p.Parse(path, source)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		trees[path] = tree
	}
	return trees, nil
}
