package ccerrs_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/claudecode/pkg/ccerrs"
)

func TestCategoryRouting(t *testing.T) {
	tests := map[string]struct {
		err          error
		wantCategory ccerrs.ErrorCategory
		wantMatch    func(error) bool
	}{
		"cli not found": {
			err:          ccerrs.NewCLINotFoundError(ccerrs.ErrCodeCLINotFound, "not installed", "/usr/local/bin/claude"),
			wantCategory: ccerrs.CategoryCLI,
			wantMatch:    ccerrs.IsCLINotFound,
		},
		"node not found": {
			err:          ccerrs.NewCLINotFoundError(ccerrs.ErrCodeNodeNotFound, "node missing", ""),
			wantCategory: ccerrs.CategoryCLI,
			wantMatch:    ccerrs.IsCLINotFound,
		},
		"spawn failed": {
			err:          ccerrs.NewConnectionError(ccerrs.ErrCodeSpawnFailed, "fork failed", errors.New("EAGAIN")),
			wantCategory: ccerrs.CategoryConnection,
			wantMatch:    ccerrs.IsConnectionError,
		},
		"process exited": {
			err:          ccerrs.NewProcessError(1, "boom"),
			wantCategory: ccerrs.CategoryProcess,
			wantMatch:    ccerrs.IsProcessError,
		},
		"decode failed": {
			err:          ccerrs.NewDecodeError("{not json", errors.New("invalid character")),
			wantCategory: ccerrs.CategoryDecode,
			wantMatch:    ccerrs.IsDecodeError,
		},
		"missing field": {
			err:          ccerrs.NewParseError(ccerrs.ErrCodeMissingField, "result message missing session_id", "result"),
			wantCategory: ccerrs.CategoryParse,
			wantMatch:    ccerrs.IsParseError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sdkErr, ok := ccerrs.AsSDKError(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCategory, sdkErr.Category())
			assert.True(t, tt.wantMatch(tt.err))

			// Matching must survive fmt.Errorf wrapping.
			wrapped := fmt.Errorf("query failed: %w", tt.err)
			assert.True(t, tt.wantMatch(wrapped))
			_, ok = ccerrs.AsSDKError(wrapped)
			assert.True(t, ok)
		})
	}
}

func TestIsHelpersRejectForeignErrors(t *testing.T) {
	plain := errors.New("not ours")

	assert.False(t, ccerrs.IsCLINotFound(plain))
	assert.False(t, ccerrs.IsConnectionError(plain))
	assert.False(t, ccerrs.IsProcessError(plain))
	assert.False(t, ccerrs.IsDecodeError(plain))
	assert.False(t, ccerrs.IsParseError(plain))

	_, ok := ccerrs.AsSDKError(plain)
	assert.False(t, ok)
}

func TestProcessErrorPayload(t *testing.T) {
	err := ccerrs.NewProcessError(42, "fatal: bad flag")

	assert.Equal(t, 42, err.ExitCode())
	assert.Equal(t, "fatal: bad flag", err.Stderr())
	assert.Contains(t, err.Error(), "42")
	assert.Contains(t, err.Error(), "fatal: bad flag")
	assert.Equal(t, 42, err.Metadata()["exit_code"])
}

func TestDecodeErrorPreview(t *testing.T) {
	t.Run("short line carried verbatim", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := ccerrs.NewDecodeError(`{"bad":`, cause)

		assert.Equal(t, `{"bad":`, err.Preview())
		assert.Contains(t, err.Error(), `{"bad":`)
		assert.NotContains(t, err.Error(), "...")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("long line truncated with marker", func(t *testing.T) {
		line := `{"text":"` + strings.Repeat("x", 500)
		err := ccerrs.NewDecodeError(line, errors.New("unexpected end of JSON input"))

		assert.Contains(t, err.Error(), "...")
		assert.Less(t, len(err.Error()), len(line))
		assert.Less(t, len(err.Preview()), len(line))
		assert.True(t, strings.HasPrefix(line, strings.TrimSuffix(err.Preview(), "...")))
	})
}

func TestCLINotFoundPath(t *testing.T) {
	err := ccerrs.NewCLINotFoundError(ccerrs.ErrCodeCLINotFound, "not installed", "/opt/claude")

	assert.Equal(t, "/opt/claude", err.Path())
	assert.Equal(t, ccerrs.ErrCodeCLINotFound, err.Code())
}

func TestParseErrorMessageType(t *testing.T) {
	err := ccerrs.NewParseError(ccerrs.ErrCodeMissingField, "missing subtype", "system")

	assert.Equal(t, "system", err.MessageType())
	assert.Equal(t, "system", err.Metadata()["message_type"])
}

func TestBaseErrorMetadataMerge(t *testing.T) {
	base := ccerrs.NewBaseError(ccerrs.CategoryDecode, ccerrs.ErrCodeJSONDecode, "decode", nil)
	base.WithMetadataMap(map[string]any{"a": 1, "b": "two"})
	base.WithMetadata("c", true)

	assert.Equal(t, 1, base.Metadata()["a"])
	assert.Equal(t, "two", base.Metadata()["b"])
	assert.Equal(t, true, base.Metadata()["c"])
}
