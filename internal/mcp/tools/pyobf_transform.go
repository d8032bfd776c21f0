package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zskulcsar/code-duplication-scanner/internal/obfuscate"
)

// TransformInput drives a full Orchestrator run.
type TransformInput struct {
	ProjectRoot string   `json:"project_root"`
	Files       []string `json:"files"`
	DryRun      bool     `json:"dry_run,omitempty"`
}

func registerTransform(s *mcp.Server) {
	tool := &mcp.Tool{
		Name: "pyobf_transform",
		Description: "Run the full identifier-obfuscation pipeline over a project: index, build " +
			"the rename map, rewrite and re-parse-validate every file, and report the transform " +
			"counters and warnings.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"project_root": map[string]any{
					"type":        "string",
					"description": "Absolute path to the project root; files are rewritten in place",
				},
				"files": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Project-relative source file paths to transform",
				},
				"dry_run": map[string]any{
					"type":        "boolean",
					"description": "Compute and validate the transform without writing any file",
				},
			},
			"required": []string{"project_root", "files"},
		},
	}
	mcp.AddTool(s, tool, transformHandler)
}

func transformHandler(ctx context.Context, req *mcp.CallToolRequest, input TransformInput) (*mcp.CallToolResult, any, error) {
	if input.ProjectRoot == "" || len(input.Files) == 0 {
		return errorResult(fmt.Errorf("project_root and files are required")), nil, nil
	}

	summary := obfuscate.NewOrchestrator().TransformWithOptions(input.ProjectRoot, input.Files, obfuscate.Options{DryRun: input.DryRun})
	if summary.Failed {
		return errorResult(fmt.Errorf("transform: %w", summary.Err)), nil, nil
	}

	return textResult(formatSummary(summary))
}

func formatSummary(s *obfuscate.TransformSummary) string {
	out := fmt.Sprintf(
		"run_id=%s\npython_files_discovered=%d\npython_files_processed=%d\npython_files_unchanged=%d\n"+
			"symbols_discovered=%d\nsymbols_renamed=%d\nsymbols_skipped_external=%d\nsymbols_renamed_likely_local=%d\n"+
			"dynamic_name_rewrites=%d\nwarnings=%d\n",
		s.RunID, s.PythonFilesDiscovered, s.PythonFilesProcessed, s.PythonFilesUnchanged,
		s.SymbolsDiscovered, s.SymbolsRenamed, s.SymbolsSkippedExternal, s.SymbolsRenamedLikelyLocal,
		s.DynamicNameRewrites, len(s.Warnings),
	)
	for _, w := range s.Warnings {
		out += fmt.Sprintf("  warning: %s:%d:%d %s: %s\n", w.File, w.Line, w.Column, w.Symbol, w.Message)
	}
	return out
}
