package tools

import "github.com/modelcontextprotocol/go-sdk/mcp"

// Register registers every pyobf_* tool on s.
func Register(s *mcp.Server) {
	registerIndex(s)
	registerPlanRename(s)
	registerTransform(s)
}
