// Package parse converts raw stream-json objects into typed messages.
//
// This is an infrastructure adapter implementing the MessageParser port.
// Parsing is tolerant by default: unknown message types and unknown
// content block types are dropped rather than failed, with an optional
// drift callback so callers can observe what newer CLI versions emit.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/conneroisu/claudecode/pkg/ccerrs"
	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
	"github.com/conneroisu/claudecode/pkg/claudecode/options"
	"github.com/conneroisu/claudecode/pkg/claudecode/ports"
)

// Adapter implements ports.MessageParser.
type Adapter struct {
	onDrift func(kind string, raw map[string]any)
}

// Verify interface compliance at compile time.
var _ ports.MessageParser = (*Adapter)(nil)

// NewAdapter creates a parser. onDrift may be nil; when set it is
// invoked for every unrecognized message or content block before the
// element is dropped.
func NewAdapter(onDrift func(kind string, raw map[string]any)) *Adapter {
	return &Adapter{onDrift: onDrift}
}

// ParseMessage implements ports.MessageParser.
// Unknown or missing type fields map to (nil, nil); the orchestrator
// drops them.
func (a *Adapter) ParseMessage(data map[string]any) (messages.Message, error) {
	msgType, ok := data["type"].(string)
	if !ok {
		a.drift(options.DriftMessage, data)

		return nil, nil
	}

	switch msgType {
	case "user":
		return a.parseUserMessage(data)
	case "assistant":
		return a.parseAssistantMessage(data)
	case "system":
		return a.parseSystemMessage(data)
	case "result":
		return a.parseResultMessage(data)
	default:
		a.drift(options.DriftMessage, data)

		return nil, nil
	}
}

func (a *Adapter) drift(kind string, raw map[string]any) {
	if a.onDrift != nil {
		a.onDrift(kind, raw)
	}
}

func (a *Adapter) parseUserMessage(data map[string]any) (messages.Message, error) {
	msg, _ := data["message"].(map[string]any)

	return &messages.UserMessage{Content: flattenUserContent(msg["content"])}, nil
}

// flattenUserContent normalizes user content to a single string.
// Content arrives either as a plain string or as an array of fragments;
// fragment shapes vary across CLI versions, so the array path degrades
// gracefully: the leading fragment's text, then all fragment texts
// joined by a space, then the serialized array itself.
func flattenUserContent(content any) string {
	switch c := content.(type) {
	case string:
		return c
	case []any:
		if len(c) > 0 {
			if first, ok := c[0].(map[string]any); ok {
				if text, ok := first["text"].(string); ok {
					return text
				}
			}
		}

		var parts []string
		for _, item := range c {
			if frag, ok := item.(map[string]any); ok {
				if text, ok := frag["text"].(string); ok {
					parts = append(parts, text)
				}
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}

		if data, err := json.Marshal(c); err == nil {
			return string(data)
		}

		return fmt.Sprintf("%v", c)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", content)
	}
}

func (a *Adapter) parseSystemMessage(data map[string]any) (messages.Message, error) {
	subtype, ok := data["subtype"].(string)
	if !ok {
		return nil, ccerrs.NewParseError(ccerrs.ErrCodeMissingField,
			"system message missing subtype field", "system")
	}

	// The whole object rides along as the open payload; system messages
	// carry arbitrary passthrough fields not modeled explicitly.
	return &messages.SystemMessage{Subtype: subtype, Data: data}, nil
}
