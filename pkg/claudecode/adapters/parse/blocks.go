package parse

import (
	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
	"github.com/conneroisu/claudecode/pkg/claudecode/options"
)

func (a *Adapter) parseAssistantMessage(data map[string]any) (messages.Message, error) {
	msg, _ := data["message"].(map[string]any)
	contentArray, _ := msg["content"].([]any)

	// Content is never nil for assistant messages, only possibly empty.
	// Emission order is preserved.
	blocks := make([]messages.ContentBlock, 0, len(contentArray))
	for _, item := range contentArray {
		block, ok := item.(map[string]any)
		if !ok {
			a.drift(options.DriftContentBlock, map[string]any{"value": item})

			continue
		}

		parsed, ok := a.parseContentBlock(block)
		if !ok {
			continue
		}
		blocks = append(blocks, parsed)
	}

	return &messages.AssistantMessage{Content: blocks}, nil
}

// parseContentBlock dispatches one block on its type field.
// Unrecognized block types are dropped after the drift callback fires.
func (a *Adapter) parseContentBlock(block map[string]any) (messages.ContentBlock, bool) {
	blockType, _ := block["type"].(string)

	switch blockType {
	case "text":
		return parseTextBlock(block), true
	case "tool_use":
		return parseToolUseBlock(block), true
	case "tool_result":
		return parseToolResultBlock(block), true
	default:
		a.drift(options.DriftContentBlock, block)

		return nil, false
	}
}

func parseTextBlock(block map[string]any) messages.TextBlock {
	text, _ := block["text"].(string)

	return messages.TextBlock{Text: text}
}

func parseToolUseBlock(block map[string]any) messages.ToolUseBlock {
	id, _ := block["id"].(string)
	name, _ := block["name"].(string)
	input, ok := block["input"].(map[string]any)
	if !ok {
		// Input can be missing or null.
		input = make(map[string]any)
	}

	return messages.ToolUseBlock{ID: id, Name: name, Input: input}
}

func parseToolResultBlock(block map[string]any) messages.ToolResultBlock {
	toolUseID, _ := block["tool_use_id"].(string)

	var isError *bool
	if v, ok := block["is_error"].(bool); ok {
		isError = &v
	}

	// Content stays raw: it may be a string, an array of blocks, or
	// absent. No referential check against prior tool_use IDs happens
	// here.
	return messages.ToolResultBlock{
		ToolUseID: toolUseID,
		Content:   block["content"],
		IsError:   isError,
	}
}
