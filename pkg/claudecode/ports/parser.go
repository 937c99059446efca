package ports

import "github.com/conneroisu/claudecode/pkg/claudecode/messages"

// MessageParser converts raw transport messages to domain types.
// This port defines what the domain needs for message parsing,
// without coupling to specific JSON unmarshaling implementations.
//
// Type Discrimination: the parser must identify message variants and
// return the appropriate concrete type implementing messages.Message.
// Messages of a type the parser does not recognize map to (nil, nil)
// so that newer CLI versions do not break older callers.
type MessageParser interface {
	// ParseMessage converts a raw message map to a typed Message.
	// Returns (nil, nil) for message types it does not recognize, and
	// an error when a recognized message is structurally invalid.
	ParseMessage(raw map[string]any) (messages.Message, error)
}
