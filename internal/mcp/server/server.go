package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zskulcsar/code-duplication-scanner/internal/mcp/tools"
	"github.com/zskulcsar/code-duplication-scanner/internal/version"
)

// New constructs the MCP server exposing the obfuscation engine as tools
// (pyobf_index, pyobf_plan_rename, pyobf_transform).
func New() *mcp.Server {
	s := mcp.NewServer(
		&mcp.Implementation{
			Name:    "pyobfuscate",
			Version: version.String(),
		},
		nil,
	)

	tools.Register(s)

	return s
}
