package claudecode

import (
	"errors"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/conneroisu/claudecode/pkg/claudecode/options"
)

// NewSdkMcpServer creates an in-process MCP tool server and wraps it
// for use in Options.McpServers. Register tools on the returned
// config's Instance with mcp-go's AddTool before starting a query.
func NewSdkMcpServer(name, version string, opts ...mcpserver.ServerOption) options.SdkServerConfig {
	return options.SdkServerConfig{
		Name:     name,
		Instance: mcpserver.NewMCPServer(name, version, opts...),
	}
}

// ServeStdio exposes an SDK MCP server on stdin/stdout. A binary whose
// main calls this can be referenced from a StdioServerConfig, which is
// how in-process tool definitions reach the one-shot CLI.
func ServeStdio(cfg options.SdkServerConfig) error {
	if cfg.Instance == nil {
		return errors.New("sdk mcp server has no instance")
	}

	return mcpserver.ServeStdio(cfg.Instance)
}
