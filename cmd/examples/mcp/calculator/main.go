// Package main demonstrates an SDK-built MCP calculator server.
//
// The same binary plays both roles. Run with "serve" it speaks MCP
// over stdio; run without arguments it asks Claude a math question and
// registers itself as the calculator server, so the CLI spawns a
// second copy in serve mode.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/conneroisu/claudecode/pkg/claudecode"
	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
	"github.com/conneroisu/claudecode/pkg/claudecode/options"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		if err := claudecode.ServeStdio(newCalculator()); err != nil {
			log.Fatalf("Calculator server failed: %v", err)
		}

		return
	}

	runQuery()
}

// newCalculator builds the MCP server with add and divide tools.
func newCalculator() options.SdkServerConfig {
	server := claudecode.NewSdkMcpServer("calculator", "1.0.0")

	server.Instance.AddTool(
		mcp.NewTool("add",
			mcp.WithDescription("Add two numbers"),
			mcp.WithNumber("a", mcp.Required()),
			mcp.WithNumber("b", mcp.Required()),
		),
		addHandler,
	)
	server.Instance.AddTool(
		mcp.NewTool("divide",
			mcp.WithDescription("Divide a by b"),
			mcp.WithNumber("a", mcp.Required()),
			mcp.WithNumber("b", mcp.Required()),
		),
		divideHandler,
	)

	return server
}

func addHandler(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := req.RequireFloat("a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := req.RequireFloat("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%g", a+b)), nil
}

func divideHandler(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := req.RequireFloat("a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := req.RequireFloat("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if b == 0 {
		return mcp.NewToolResultError("division by zero"), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%g", a/b)), nil
}

// runQuery asks a question Claude can only answer with the calculator.
func runQuery() {
	exe, err := os.Executable()
	if err != nil {
		log.Fatalf("Cannot locate own binary: %v", err)
	}

	opts := options.NewOptions()
	opts.MaxTurns = 5
	opts.McpServers = map[string]options.McpServerConfig{
		"calc": options.StdioServerConfig{
			Command: exe,
			Args:    []string{"serve"},
		},
	}
	opts.AllowedTools = []string{"mcp__calc__add", "mcp__calc__divide"}

	msgs, err := claudecode.Query(
		context.Background(),
		"What is 15 + 27? Use the add tool.",
		opts,
	)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}

	for _, msg := range msgs {
		displayMessage(msg)
	}
}

func displayMessage(msg messages.Message) {
	switch m := msg.(type) {
	case *messages.AssistantMessage:
		for _, block := range m.Content {
			printBlock(block)
		}

	case *messages.ResultMessage:
		if m.Result != nil {
			fmt.Printf("\nResult: %s\n", *m.Result)
		}
		fmt.Printf("Cost: $%.6f\n", m.TotalCostUSD)
		fmt.Printf("Turns: %d\n", m.NumTurns)
	}
}

func printBlock(block messages.ContentBlock) {
	switch b := block.(type) {
	case messages.TextBlock:
		fmt.Printf("Claude: %s\n", b.Text)
	case messages.ToolUseBlock:
		fmt.Printf("[%s %v]\n", b.Name, b.Input)
	}
}
