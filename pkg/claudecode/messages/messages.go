// Package messages defines the typed message model decoded from the
// Claude Code CLI's stream-json output. Message and ContentBlock are
// closed variants: new kinds are introduced only by the mapper in
// adapters/parse, and callers dispatch with a type switch.
package messages

// Message is the closed interface over all top-level message variants:
// UserMessage, AssistantMessage, SystemMessage, and ResultMessage.
type Message interface {
	message()
}

// UserMessage is a message authored by the user, flattened to plain text.
type UserMessage struct {
	Content string `json:"content"`
}

func (*UserMessage) message() {}

// SystemMessage is an out-of-band event from the CLI. Data carries the
// entire raw object so subtype-specific fields stay reachable without
// the SDK modeling every subtype.
type SystemMessage struct {
	Subtype string         `json:"subtype"`
	Data    map[string]any `json:"data"`
}

func (*SystemMessage) message() {}
