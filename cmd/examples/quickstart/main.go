// Package main demonstrates basic usage of the Claude Code SDK.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/conneroisu/claudecode/pkg/claudecode"
	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
	"github.com/conneroisu/claudecode/pkg/claudecode/options"
)

func main() {
	opts := options.NewOptions()
	opts.Model = "claude-sonnet-4-5"
	systemPrompt := "You are a helpful assistant."
	opts.SystemPrompt = &systemPrompt

	msgs, err := claudecode.Query(
		context.Background(),
		"What is the capital of France?",
		opts,
	)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}

	for _, msg := range msgs {
		switch m := msg.(type) {
		case *messages.AssistantMessage:
			printAssistantMessage(m)
		case *messages.ResultMessage:
			printResult(m)
		}
	}
}

func printAssistantMessage(msg *messages.AssistantMessage) {
	fmt.Println("\nAssistant:")
	for _, block := range msg.Content {
		switch b := block.(type) {
		case messages.TextBlock:
			fmt.Println(b.Text)
		case messages.ToolUseBlock:
			fmt.Printf("[Tool Use: %s(%v)]\n", b.Name, b.Input)
		}
	}
}

func printResult(msg *messages.ResultMessage) {
	if msg.IsError {
		fmt.Printf("\n✗ Conversation failed: %s\n", msg.Subtype)

		return
	}

	fmt.Printf("\n✓ Done in %d turns, $%.4f\n", msg.NumTurns, msg.CostUSD)
}
