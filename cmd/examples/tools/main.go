// Package main demonstrates tool selection with the Claude Code SDK.
//
// This example shows:
//   - Restricting the agent to an allow-list of tools
//   - Blocking specific tools while permitting the rest
//   - Auto-accepting file edits with a permission mode
//
// Prerequisites: Claude Code must be installed and configured.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/conneroisu/claudecode/pkg/claudecode"
	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
	"github.com/conneroisu/claudecode/pkg/claudecode/options"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Example 1: allow only read-side tools.
	readOnly := options.NewOptions()
	readOnly.AllowedTools = []string{"Read", "Grep", "Glob"}

	fmt.Println("Example 1: restricted to read-only tools")
	runQuery(ctx, "Find all Go files in the project and show me the main function.", readOnly)

	// Example 2: everything except execution and writes.
	noWrites := options.NewOptions()
	noWrites.DisallowedTools = []string{"Bash", "Write", "Edit", "WebFetch", "WebSearch"}

	fmt.Println("\nExample 2: all tools except dangerous ones")
	runQuery(ctx, "Analyze the structure of this project.", noWrites)

	// Example 3: let the agent edit files without prompting.
	editing := options.NewOptions()
	editing.AllowedTools = []string{"Read", "Edit"}
	editing.PermissionMode = options.PermissionModeAcceptEdits

	fmt.Println("\nExample 3: auto-accepted edits")
	runQuery(ctx, "Add a doc comment to the main function.", editing)
}

// runQuery executes a query with the given options and prints the
// conversation.
func runQuery(ctx context.Context, prompt string, opts *options.Options) {
	fmt.Printf("Prompt: %s\n\n", prompt)

	msgs, err := claudecode.Query(ctx, prompt, opts)
	if err != nil {
		log.Printf("Query error: %v", err)

		return
	}

	for _, msg := range msgs {
		switch m := msg.(type) {
		case *messages.AssistantMessage:
			for _, block := range m.Content {
				printBlock(block)
			}
		case *messages.ResultMessage:
			fmt.Printf("Finished: %s after %d turns\n", m.Subtype, m.NumTurns)
		}
	}
}

func printBlock(block messages.ContentBlock) {
	switch b := block.(type) {
	case messages.TextBlock:
		fmt.Println(b.Text)
	case messages.ToolUseBlock:
		fmt.Printf("  [%s] %v\n", b.Name, b.Input)
	case messages.ToolResultBlock:
		fmt.Printf("  [result] %v\n", b.Content)
	}
}
