package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zskulcsar/code-duplication-scanner/internal/index"
)

// IndexInput identifies the project to index: its root directory and the
// project-relative file set the caller has already discovered and
// filtered.
type IndexInput struct {
	ProjectRoot string   `json:"project_root"`
	Files       []string `json:"files"`
}

func registerIndex(s *mcp.Server) {
	tool := &mcp.Tool{
		Name: "pyobf_index",
		Description: "Build the cross-file ProjectIndex for a Python project: " +
			"declarations, import bindings, attribute owners, dynamic getattr/setattr/hasattr " +
			"sites, and the derived rename-candidate/external-name sets.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"project_root": map[string]any{
					"type":        "string",
					"description": "Absolute path to the project root",
				},
				"files": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Project-relative source file paths to index",
				},
			},
			"required": []string{"project_root", "files"},
		},
	}
	mcp.AddTool(s, tool, indexHandler)
}

func indexHandler(ctx context.Context, req *mcp.CallToolRequest, input IndexInput) (*mcp.CallToolResult, any, error) {
	if input.ProjectRoot == "" || len(input.Files) == 0 {
		return errorResult(fmt.Errorf("project_root and files are required")), nil, nil
	}

	trees, err := parseProject(input.ProjectRoot, input.Files)
	if err != nil {
		return errorResult(fmt.Errorf("index: %w", err)), nil, nil
	}

	idx := index.NewIndexer().Index(trees)
	return textResult(formatIndex(idx))
}

func formatIndex(idx *index.ProjectIndex) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "declarations: %d\n", len(idx.Declarations))
	fmt.Fprintf(&sb, "dynamic_sites: %d\n", len(idx.DynamicSites))
	fmt.Fprintf(&sb, "attribute_owners: %d\n", len(idx.AttributeOwners))
	fmt.Fprintf(&sb, "rename_candidates: %d\n", len(idx.RenameCandidates))
	fmt.Fprintf(&sb, "external_names: %d\n", len(idx.ExternalNames))

	candidates := make([]string, 0, len(idx.RenameCandidates))
	for name := range idx.RenameCandidates {
		candidates = append(candidates, name)
	}
	sort.Strings(candidates)
	if len(candidates) > 0 {
		sb.WriteString("candidates: " + strings.Join(candidates, ", ") + "\n")
	}

	return sb.String()
}
