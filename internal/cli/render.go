package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
)

var (
	toolColor = color.New(color.FgYellow)
	metaColor = color.New(color.Faint)
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

const toolInputPreview = 120

// errResultFailed maps a result with is_error onto a non-zero exit.
var errResultFailed = errors.New("query finished with an error result")

// renderAll writes a whole conversation and reports a failed result as
// an error so the process exits non-zero.
func renderAll(w io.Writer, msgs []messages.Message) error {
	failed := false
	for _, msg := range msgs {
		renderMessage(w, msg)
		if result, ok := msg.(*messages.ResultMessage); ok && result.IsError {
			failed = true
		}
	}

	if failed {
		return errResultFailed
	}

	return nil
}

// renderMessage writes one decoded message in human-readable form.
func renderMessage(w io.Writer, msg messages.Message) {
	switch m := msg.(type) {
	case *messages.AssistantMessage:
		renderAssistant(w, m)
	case *messages.UserMessage:
		metaColor.Fprintf(w, "[user] %s\n", m.Content)
	case *messages.SystemMessage:
		metaColor.Fprintf(w, "[system] %s\n", m.Subtype)
	case *messages.ResultMessage:
		renderResult(w, m)
	}
}

func renderAssistant(w io.Writer, m *messages.AssistantMessage) {
	for _, block := range m.Content {
		switch b := block.(type) {
		case messages.TextBlock:
			fmt.Fprintln(w, b.Text)
		case messages.ToolUseBlock:
			toolColor.Fprintf(w, "[tool] %s", b.Name)
			if len(b.Input) > 0 {
				metaColor.Fprintf(w, " %s", compactJSON(b.Input, toolInputPreview))
			}
			fmt.Fprintln(w)
		case messages.ToolResultBlock:
			if b.IsError != nil && *b.IsError {
				failColor.Fprintf(w, "[tool failed] %s\n", b.ToolUseID)
			} else {
				metaColor.Fprintf(w, "[tool done] %s\n", b.ToolUseID)
			}
		}
	}
}

func renderResult(w io.Writer, m *messages.ResultMessage) {
	if m.IsError {
		failColor.Fprintf(w, "✗ %s", m.Subtype)
	} else {
		okColor.Fprintf(w, "✓ %s", m.Subtype)
	}

	duration := time.Duration(m.DurationMS) * time.Millisecond
	metaColor.Fprintf(w, " (%d turns, %s, $%.4f)\n", m.NumTurns, duration, m.CostUSD)

	if m.Usage != nil {
		metaColor.Fprintf(w, "  tokens: %d in, %d out\n",
			m.Usage.InputTokens, m.Usage.OutputTokens)
	}
	metaColor.Fprintf(w, "  session: %s\n", m.SessionID)
}

// compactJSON renders v as a single JSON line truncated to limit bytes.
func compactJSON(v any, limit int) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	if len(raw) > limit {
		return string(raw[:limit]) + "..."
	}

	return string(raw)
}
