// Package main demonstrates streaming message handling with the
// Claude Code SDK.
//
// Messages are rendered as the CLI emits them instead of after the
// query completes, so long tool-using conversations show progress
// immediately. The example also taps the subprocess's stderr, which is
// where the CLI writes its own diagnostics.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/conneroisu/claudecode/pkg/claudecode"
	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
	"github.com/conneroisu/claudecode/pkg/claudecode/options"
)

func main() {
	prompt := "Write a haiku about Go channels."
	if len(os.Args) > 1 {
		prompt = strings.Join(os.Args[1:], " ")
	}

	opts := options.NewOptions()
	opts.Model = "claude-sonnet-4-5"
	opts.StderrCallback = func(line string) {
		fmt.Fprintf(os.Stderr, "[cli] %s\n", line)
	}

	msgCh, errCh := claudecode.QueryStream(context.Background(), prompt, opts)

	for msgCh != nil || errCh != nil {
		select {
		case msg, ok := <-msgCh:
			if !ok {
				msgCh = nil

				continue
			}
			handleMessage(msg)

		case err, ok := <-errCh:
			if !ok {
				errCh = nil

				continue
			}
			if err != nil {
				log.Fatalf("Query failed: %v", err)
			}
		}
	}
}

func handleMessage(msg messages.Message) {
	switch m := msg.(type) {
	case *messages.SystemMessage:
		fmt.Printf("[session started: %s]\n", m.Subtype)
	case *messages.AssistantMessage:
		for _, block := range m.Content {
			handleBlock(block)
		}
	case *messages.ResultMessage:
		fmt.Printf("\n[%s: %d turns, %dms, $%.4f]\n",
			m.Subtype, m.NumTurns, m.DurationMS, m.CostUSD)
	}
}

func handleBlock(block messages.ContentBlock) {
	switch b := block.(type) {
	case messages.TextBlock:
		fmt.Println(b.Text)
	case messages.ToolUseBlock:
		fmt.Printf("[tool: %s]\n", b.Name)
	case messages.ToolResultBlock:
		fmt.Printf("[tool result for %s]\n", b.ToolUseID)
	}
}
