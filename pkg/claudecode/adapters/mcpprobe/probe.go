// Package mcpprobe dials configured MCP servers and reports the tools
// they advertise. It is a pre-flight diagnostic: the Claude CLI launches
// external servers itself during a query, so a failing server otherwise
// surfaces only as an opaque mid-conversation tool error.
//
// External servers (stdio, SSE, HTTP) are probed with the official MCP
// Go SDK client. In-process servers are interrogated directly without
// spawning anything.
package mcpprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sort"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/conneroisu/claudecode/pkg/claudecode/options"
)

const (
	clientName    = "claudecode-go-probe"
	clientVersion = "0.1.0"
)

// ToolInfo describes one tool advertised by a server.
type ToolInfo struct {
	Name        string
	Description string
}

// Report is the outcome of probing a single server.
type Report struct {
	// Server is the key the server is registered under.
	Server string
	// Transport names how the server is reached: stdio, sse, http
	// or sdk for in-process instances.
	Transport string
	// Tools lists the advertised tools in the order the server
	// returned them.
	Tools []ToolInfo
}

// Probe connects to one configured server, lists its tools and
// disconnects. The context bounds the whole exchange; pass a deadline
// when probing servers that may hang on startup.
func Probe(ctx context.Context, name string, cfg options.McpServerConfig) (*Report, error) {
	if sdk, ok := cfg.(options.SdkServerConfig); ok {
		return probeSdk(ctx, name, sdk)
	}

	transport, kind, err := buildTransport(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return probeTransport(ctx, name, kind, transport)
}

// ProbeAll probes every server in the map, ordered by name. It fails
// on the first unreachable server; callers that want per-server status
// should loop over Probe themselves.
func ProbeAll(ctx context.Context, configs map[string]options.McpServerConfig) ([]*Report, error) {
	if len(configs) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, name)
	}
	sort.Strings(names)

	reports := make([]*Report, 0, len(names))

	for _, name := range names {
		report, err := Probe(ctx, name, configs[name])
		if err != nil {
			return nil, fmt.Errorf("probing MCP server %q: %w", name, err)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// buildTransport maps an external server config onto an MCP SDK
// transport.
func buildTransport(ctx context.Context, cfg options.McpServerConfig) (mcpsdk.Transport, string, error) {
	switch config := cfg.(type) {
	case options.StdioServerConfig:
		cmd := exec.CommandContext(ctx, config.Command, config.Args...)
		if len(config.Env) > 0 {
			cmd.Env = append(os.Environ(), envSlice(config.Env)...)
		}

		return &mcpsdk.CommandTransport{Command: cmd}, "stdio", nil

	case options.SseServerConfig:
		// The streamable transport also speaks to SSE endpoints.
		return &mcpsdk.StreamableClientTransport{Endpoint: config.URL}, "sse", nil

	case options.HttpServerConfig:
		return &mcpsdk.StreamableClientTransport{Endpoint: config.URL}, "http", nil

	default:
		return nil, "", fmt.Errorf("unsupported MCP server config type %T", cfg)
	}
}

// probeTransport runs the client handshake over an established
// transport and collects the advertised tools.
func probeTransport(ctx context.Context, name, kind string, transport mcpsdk.Transport) (*Report, error) {
	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    clientName,
		Version: clientVersion,
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to MCP server: %w", err)
	}
	defer func() { _ = session.Close() }()

	listed, err := session.ListTools(ctx, &mcpsdk.ListToolsParams{})
	if err != nil {
		return nil, fmt.Errorf("listing MCP tools: %w", err)
	}

	report := &Report{Server: name, Transport: kind}
	for _, tool := range listed.Tools {
		report.Tools = append(report.Tools, ToolInfo{
			Name:        tool.Name,
			Description: tool.Description,
		})
	}

	return report, nil
}

// probeSdk interrogates an in-process server by handing it a raw
// tools/list request, the same way a transport would. No subprocess or
// socket is involved.
func probeSdk(ctx context.Context, name string, cfg options.SdkServerConfig) (*Report, error) {
	if cfg.Instance == nil {
		return nil, fmt.Errorf("sdk MCP server %q has no instance", name)
	}

	request := json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	response := cfg.Instance.HandleMessage(ctx, request)

	// The concrete response type is private to the server library;
	// round-tripping through JSON keeps this decoupled from it.
	raw, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("encoding tools/list response: %w", err)
	}

	var decoded struct {
		Result struct {
			Tools []struct {
				Name        string `json:"name"`
				Description string `json:"description"`
			} `json:"tools"`
		} `json:"result"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decoding tools/list response: %w", err)
	}
	if decoded.Error != nil {
		return nil, fmt.Errorf("sdk MCP server %q rejected tools/list: %s", name, decoded.Error.Message)
	}

	report := &Report{Server: name, Transport: "sdk"}
	for _, tool := range decoded.Result.Tools {
		report.Tools = append(report.Tools, ToolInfo{
			Name:        tool.Name,
			Description: tool.Description,
		})
	}

	return report, nil
}

// envSlice flattens a map into KEY=VALUE pairs for exec.Cmd.
func envSlice(env map[string]string) []string {
	pairs := make([]string, 0, len(env))
	for key, value := range env {
		pairs = append(pairs, key+"="+value)
	}

	return pairs
}
