// Package cliconfig loads the layered configuration for the ccq binary.
// Priority: environment variables > local config file > global config
// file > built-in defaults.
package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/conneroisu/claudecode/pkg/claudecode/options"
)

const (
	// envPrefix namespaces environment overrides, e.g. CCQ_MODEL or
	// CCQ_MAX_TURNS.
	envPrefix = "CCQ_"

	// globalConfigDir under the user's home holds the global config.
	globalConfigDir = ".ccq"
)

// McpServerEntry is the file representation of one external MCP server.
// SDK-managed servers hold a live instance and cannot be expressed in
// configuration.
type McpServerEntry struct {
	Type    string            `koanf:"type" validate:"required,oneof=stdio sse http"`
	Command string            `koanf:"command"`
	Args    []string          `koanf:"args"`
	Env     map[string]string `koanf:"env"`
	URL     string            `koanf:"url"`
	Headers map[string]string `koanf:"headers"`
}

// Config is the ccq tool configuration after all layers are merged.
type Config struct {
	Model                string                    `koanf:"model"`
	SystemPrompt         string                    `koanf:"system_prompt"`
	AppendSystemPrompt   string                    `koanf:"append_system_prompt"`
	AllowedTools         []string                  `koanf:"allowed_tools"`
	DisallowedTools      []string                  `koanf:"disallowed_tools"`
	MaxTurns             int                       `koanf:"max_turns" validate:"min=0,max=1000"`
	PermissionMode       string                    `koanf:"permission_mode" validate:"omitempty,oneof=default acceptEdits bypassPermissions"`
	PermissionPromptTool string                    `koanf:"permission_prompt_tool"`
	CLIPath              string                    `koanf:"cli_path"`
	Cwd                  string                    `koanf:"cwd"`
	MaxBufferSize        int                       `koanf:"max_buffer_size" validate:"min=0"`
	Stream               bool                      `koanf:"stream"`
	TimeoutSeconds       int                       `koanf:"timeout" validate:"omitempty,min=1,max=86400"`
	McpServers           map[string]McpServerEntry `koanf:"mcp_servers" validate:"dive"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"model":           "",
		"max_turns":       0,
		"max_buffer_size": 0,
		"stream":          false,
		"timeout":         300,
	}
}

// Load merges defaults, the global config file (~/.ccq/config.json), the
// local config file and CCQ_-prefixed environment variables, in that
// order. Missing config files are skipped; malformed or invalid
// configuration is an error.
func Load(localPath string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		_ = k.Set(key, value)
	}

	if home, err := os.UserHomeDir(); err == nil {
		globalPath := filepath.Join(home, globalConfigDir, "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("loading global config: %w", err)
			}
		}
	}

	if localPath != "" {
		if _, err := os.Stat(localPath); err == nil {
			if err := k.Load(file.Provider(localPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("loading config %s: %w", localPath, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.Cwd = expandHomePath(cfg.Cwd)
	cfg.CLIPath = expandHomePath(cfg.CLIPath)

	return &cfg, nil
}

// QueryOptions converts the merged configuration into query options.
func (c *Config) QueryOptions() (*options.Options, error) {
	opts := options.NewOptions()
	opts.Model = c.Model
	opts.AllowedTools = c.AllowedTools
	opts.DisallowedTools = c.DisallowedTools
	opts.MaxTurns = c.MaxTurns
	opts.PermissionMode = options.PermissionMode(c.PermissionMode)
	opts.PermissionPromptToolName = c.PermissionPromptTool
	opts.CLIPath = c.CLIPath
	opts.Cwd = c.Cwd
	if c.MaxBufferSize > 0 {
		opts.MaxBufferSize = c.MaxBufferSize
	}
	if c.SystemPrompt != "" {
		prompt := c.SystemPrompt
		opts.SystemPrompt = &prompt
	}
	if c.AppendSystemPrompt != "" {
		prompt := c.AppendSystemPrompt
		opts.AppendSystemPrompt = &prompt
	}

	if len(c.McpServers) > 0 {
		opts.McpServers = make(map[string]options.McpServerConfig, len(c.McpServers))
		for name, entry := range c.McpServers {
			server, err := entry.serverConfig()
			if err != nil {
				return nil, fmt.Errorf("mcp server %q: %w", name, err)
			}
			opts.McpServers[name] = server
		}
	}

	return opts, nil
}

// serverConfig maps a file entry onto the matching server config
// variant. The per-type required fields are checked here rather than
// with struct tags so the error names the offending server.
func (e McpServerEntry) serverConfig() (options.McpServerConfig, error) {
	switch e.Type {
	case "stdio":
		if e.Command == "" {
			return nil, errors.New("stdio server requires a command")
		}

		return options.StdioServerConfig{Command: e.Command, Args: e.Args, Env: e.Env}, nil

	case "sse":
		if e.URL == "" {
			return nil, errors.New("sse server requires a url")
		}

		return options.SseServerConfig{URL: e.URL, Headers: e.Headers}, nil

	case "http":
		if e.URL == "" {
			return nil, errors.New("http server requires a url")
		}

		return options.HttpServerConfig{URL: e.URL, Headers: e.Headers}, nil

	default:
		return nil, fmt.Errorf("unknown server type %q", e.Type)
	}
}

// envTransform converts environment variable names to config keys.
// Example: CCQ_MAX_TURNS -> max_turns.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// expandHomePath expands a leading ~/ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}

	return path
}
