package messages

// AssistantMessage is a response from Claude. Content preserves the
// emission order of the underlying stream and is never nil after
// parsing, though it may be empty.
type AssistantMessage struct {
	Content []ContentBlock `json:"content"`
}

func (*AssistantMessage) message() {}

// ContentBlock is the closed interface over assistant content variants:
// TextBlock, ToolUseBlock, and ToolResultBlock.
type ContentBlock interface {
	contentBlock()
}

// TextBlock is plain assistant text. Text may be empty.
type TextBlock struct {
	Text string `json:"text"`
}

func (TextBlock) contentBlock() {}

// ToolUseBlock is a tool invocation request. ID is unique within its
// message.
type ToolUseBlock struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

func (ToolUseBlock) contentBlock() {}

// ToolResultBlock carries the outcome of an earlier tool invocation.
// ToolUseID references a ToolUseBlock.ID; the reference is not checked
// at parse time. Content is a string, a []any of structured fragments,
// or nil.
type ToolResultBlock struct {
	ToolUseID string `json:"tool_use_id"`
	Content   any    `json:"content,omitempty"`
	IsError   *bool  `json:"is_error,omitempty"`
}

func (ToolResultBlock) contentBlock() {}
