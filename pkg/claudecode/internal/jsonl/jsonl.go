// Package jsonl decodes the newline-delimited JSON stream emitted by
// the Claude Code CLI.
package jsonl

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/conneroisu/claudecode/pkg/ccerrs"
)

var errNotObject = errors.New("line is not a JSON object")

// Decode parses one physical line of the stream. Whitespace-only lines
// decode to (nil, nil); callers skip them. Anything else must be a
// complete JSON object on its own line: values are never accumulated
// across line boundaries, matching the CLI's stream-json contract.
func Decode(line string) (map[string]any, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(line), &obj); err != nil {
		return nil, ccerrs.NewDecodeError(line, err)
	}
	if obj == nil {
		// "null" unmarshals into a nil map without error.
		return nil, ccerrs.NewDecodeError(line, errNotObject)
	}

	return obj, nil
}
