package options_test

import (
	"encoding/json"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/claudecode/pkg/claudecode/options"
)

func TestNewOptionsDefaults(t *testing.T) {
	opts := options.NewOptions()

	assert.Equal(t, options.DefaultMaxThinkingTokens, opts.MaxThinkingTokens)
	assert.Equal(t, options.DefaultMaxBufferSize, opts.MaxBufferSize)
	assert.Empty(t, opts.AllowedTools)
	assert.Empty(t, opts.Model)
	assert.Zero(t, opts.MaxTurns)
	assert.Equal(t, options.PermissionMode(""), opts.PermissionMode)
}

func TestPermissionModeValues(t *testing.T) {
	assert.Equal(t, "default", string(options.PermissionModeDefault))
	assert.Equal(t, "acceptEdits", string(options.PermissionModeAcceptEdits))
	assert.Equal(t, "bypassPermissions", string(options.PermissionModeBypassPermissions))
}

func TestMcpServerConfigMarshal(t *testing.T) {
	tests := map[string]struct {
		config options.McpServerConfig
		want   string
	}{
		"stdio": {
			config: options.StdioServerConfig{
				Command: "weather-server",
				Args:    []string{"--port", "0"},
				Env:     map[string]string{"API_KEY": "k"},
			},
			want: `{"type":"stdio","command":"weather-server","args":["--port","0"],"env":{"API_KEY":"k"}}`,
		},
		"stdio minimal": {
			config: options.StdioServerConfig{Command: "srv"},
			want:   `{"type":"stdio","command":"srv"}`,
		},
		"sse": {
			config: options.SseServerConfig{URL: "https://mcp.example.com/sse"},
			want:   `{"type":"sse","url":"https://mcp.example.com/sse"}`,
		},
		"http with headers": {
			config: options.HttpServerConfig{
				URL:     "https://mcp.example.com",
				Headers: map[string]string{"Authorization": "Bearer t"},
			},
			want: `{"type":"http","url":"https://mcp.example.com","headers":{"Authorization":"Bearer t"}}`,
		},
		"sdk reference": {
			config: options.SdkServerConfig{
				Name:     "calc",
				Instance: mcpserver.NewMCPServer("calc", "1.0.0"),
			},
			want: `{"type":"sdk","name":"calc"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := json.Marshal(tt.config)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestMcpServerMapMarshalIsDeterministic(t *testing.T) {
	servers := map[string]options.McpServerConfig{
		"zeta":  options.StdioServerConfig{Command: "z"},
		"alpha": options.SseServerConfig{URL: "https://a.example.com"},
	}

	first, err := json.Marshal(servers)
	require.NoError(t, err)

	for range 10 {
		next, err := json.Marshal(servers)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(next))
	}
}
