package options

import (
	"encoding/json"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// McpServerConfig is the closed interface over MCP server definitions.
// External servers (stdio, SSE, HTTP) are launched or dialed by the CLI;
// SDK servers are mcp-go instances owned by the caller.
type McpServerConfig interface {
	mcpServerConfig()
}

// StdioServerConfig defines an external MCP server the CLI spawns as a
// subprocess speaking stdio.
type StdioServerConfig struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

func (StdioServerConfig) mcpServerConfig() {}

// MarshalJSON tags the definition with its transport type.
func (c StdioServerConfig) MarshalJSON() ([]byte, error) {
	type alias StdioServerConfig

	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "stdio", alias: alias(c)})
}

// SseServerConfig defines an external MCP server reached over
// Server-Sent Events.
type SseServerConfig struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

func (SseServerConfig) mcpServerConfig() {}

// MarshalJSON tags the definition with its transport type.
func (c SseServerConfig) MarshalJSON() ([]byte, error) {
	type alias SseServerConfig

	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "sse", alias: alias(c)})
}

// HttpServerConfig defines an external MCP server reached over
// streamable HTTP.
type HttpServerConfig struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

func (HttpServerConfig) mcpServerConfig() {}

// MarshalJSON tags the definition with its transport type.
func (c HttpServerConfig) MarshalJSON() ([]byte, error) {
	type alias HttpServerConfig

	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "http", alias: alias(c)})
}

// SdkServerConfig holds an in-process mcp-go server instance. The
// one-shot CLI cannot call back into this process, so the instance is
// exposed to the CLI by serving it over stdio in a child process (see
// claudecode.ServeStdio); the config serializes as a name-only
// reference.
type SdkServerConfig struct {
	Name     string
	Instance *mcpserver.MCPServer
}

func (SdkServerConfig) mcpServerConfig() {}

// MarshalJSON emits a name-only reference; the instance itself is not
// serializable.
func (c SdkServerConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{Type: "sdk", Name: c.Name})
}
