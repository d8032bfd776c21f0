package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zskulcsar/code-duplication-scanner/internal/index"
	"github.com/zskulcsar/code-duplication-scanner/internal/rename"
)

// PlanRenameInput is the same project identification as IndexInput; the
// rename map is built from a fresh index rather than a cached one, since no
// RenameMap is ever serialized between runs.
type PlanRenameInput struct {
	ProjectRoot string   `json:"project_root"`
	Files       []string `json:"files"`
}

func registerPlanRename(s *mcp.Server) {
	tool := &mcp.Tool{
		Name: "pyobf_plan_rename",
		Description: "Compute the deterministic global RenameMap for a project without writing " +
			"any file: original name -> obfuscated token, with provenance (resolved_local or " +
			"likely_local).",
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
					"description": "Project-relative source file paths to plan renames for",
				},
			},
			"required": []string{"project_root", "files"},
		},
	}
	mcp.AddTool(s, tool, planRenameHandler)
}

func planRenameHandler(ctx context.Context, req *mcp.CallToolRequest, input PlanRenameInput) (*mcp.CallToolResult, any, error) {
	if input.ProjectRoot == "" || len(input.Files) == 0 {
		return errorResult(fmt.Errorf("project_root and files are required")), nil, nil
	}

	trees, err := parseProject(input.ProjectRoot, input.Files)
	if err != nil {
		return errorResult(fmt.Errorf("plan_rename: %w", err)), nil, nil
	}

	idx := index.NewIndexer().Index(trees)
	rm, err := rename.NewMapper().Build(idx)
	if err != nil {
		return errorResult(fmt.Errorf("plan_rename: %w", err)), nil, nil
	}

	return textResult(formatRenameMap(rm))
}

func formatRenameMap(rm *rename.RenameMap) string {
	names := make([]string, 0, rm.Len())
	for name := range rm.Mapping {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d symbols mapped\n", len(names))
	for _, name := range names {
		tok, _ := rm.Token(name)
		fmt.Fprintf(&sb, "  %s -> %s (%s)\n", name, tok, rm.Provenance[name])
	}
	return sb.String()
}
