// Package main demonstrates querying with external MCP servers.
//
// The server definitions are passed to the Claude CLI, which launches
// or dials them itself. Before the query the example pre-flights every
// server to catch unreachable ones early.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/conneroisu/claudecode/pkg/claudecode"
	"github.com/conneroisu/claudecode/pkg/claudecode/adapters/mcpprobe"
	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
	"github.com/conneroisu/claudecode/pkg/claudecode/options"
)

func main() {
	ctx := context.Background()

	opts := options.NewOptions()
	opts.Model = "claude-sonnet-4-5"
	opts.McpServers = map[string]options.McpServerConfig{
		"files": options.StdioServerConfig{
			Command: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-filesystem", "/tmp"},
		},
		"search": options.HttpServerConfig{
			URL: "http://localhost:9200/mcp",
		},
	}
	opts.AllowedTools = []string{"mcp__files", "mcp__search"}

	preflight(ctx, opts.McpServers)

	msgs, err := claudecode.Query(ctx, "List the files under /tmp and summarize them.", opts)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}

	for _, msg := range msgs {
		handleMessage(msg)
	}
}

// preflight dials each configured server and prints its tool list.
// Failures are reported but not fatal; the CLI may still succeed if the
// conversation never touches the broken server.
func preflight(ctx context.Context, servers map[string]options.McpServerConfig) {
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	reports, err := mcpprobe.ProbeAll(probeCtx, servers)
	if err != nil {
		log.Printf("MCP pre-flight failed: %v", err)

		return
	}

	for _, report := range reports {
		fmt.Printf("server %s (%s): %d tools\n",
			report.Server, report.Transport, len(report.Tools))
	}
}

func handleMessage(msg messages.Message) {
	switch m := msg.(type) {
	case *messages.AssistantMessage:
		fmt.Println("\nAssistant:")
		for _, block := range m.Content {
			switch b := block.(type) {
			case messages.TextBlock:
				fmt.Println(b.Text)
			case messages.ToolUseBlock:
				fmt.Printf("[Calling tool: %s with args %v]\n", b.Name, b.Input)
			case messages.ToolResultBlock:
				fmt.Printf("[Tool result: %v]\n", b.Content)
			}
		}

	case *messages.ResultMessage:
		fmt.Printf("\nCompleted in %dms\n", m.DurationMS)
	}
}
