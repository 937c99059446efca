package jsonl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/claudecode/pkg/ccerrs"
	"github.com/conneroisu/claudecode/pkg/claudecode/internal/jsonl"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantNil bool
		wantErr bool
	}{
		{name: "empty line", line: "", wantNil: true},
		{name: "whitespace line", line: "   \t", wantNil: true},
		{name: "object", line: `{"type":"system","subtype":"init"}`},
		{name: "object with nesting", line: `{"type":"assistant","message":{"content":[]}}`},
		{name: "truncated object", line: `{"bad":`, wantErr: true},
		{name: "bare scalar", line: `42`, wantErr: true},
		{name: "array", line: `[{"type":"user"}]`, wantErr: true},
		{name: "null", line: `null`, wantErr: true},
		{name: "trailing garbage", line: `{"a":1} {"b":2}`, wantErr: true},
		{name: "unterminated string", line: `{"text":"hi`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := jsonl.Decode(tt.line)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ccerrs.IsDecodeError(err))
				assert.Nil(t, obj)

				return
			}

			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, obj)
			} else {
				assert.NotNil(t, obj)
			}
		})
	}
}

func TestDecodePreservesFields(t *testing.T) {
	obj, err := jsonl.Decode(`{"type":"user","message":{"content":"hi"}}`)
	require.NoError(t, err)

	assert.Equal(t, "user", obj["type"])
	inner, ok := obj["message"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hi", inner["content"])
}

func TestBlankLinesAroundObjects(t *testing.T) {
	lines := []string{"", `{"type":"user","message":{"content":"hi"}}`, ""}

	var objs []map[string]any
	for _, line := range lines {
		obj, err := jsonl.Decode(line)
		require.NoError(t, err)
		if obj != nil {
			objs = append(objs, obj)
		}
	}

	require.Len(t, objs, 1)
	assert.Equal(t, "user", objs[0]["type"])
}

func TestDecodeFailureCarriesPreview(t *testing.T) {
	t.Run("short line kept whole", func(t *testing.T) {
		_, err := jsonl.Decode(`{"bad":`)
		require.Error(t, err)

		var decodeErr *ccerrs.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Contains(t, decodeErr.Preview(), `{"bad":`)
		assert.Contains(t, err.Error(), `{"bad":`)
	})

	t.Run("long line truncated", func(t *testing.T) {
		line := `{"text":"` + strings.Repeat("a", 4096)
		_, err := jsonl.Decode(line)
		require.Error(t, err)

		assert.Less(t, len(err.Error()), len(line))
		assert.Contains(t, err.Error(), "...")
	})
}
