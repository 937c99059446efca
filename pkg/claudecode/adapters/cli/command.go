package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/conneroisu/claudecode/pkg/claudecode/options"
)

// entrypointEnv identifies this SDK to the CLI.
const entrypointEnv = "CLAUDE_CODE_ENTRYPOINT=sdk-go"

// BuildArgs constructs the CLI argument vector for a one-shot query.
// Exported for testing purposes.
//
// The result is deterministic: flags appear in a stable order, one flag
// per non-default option, with the prompt as the final positional
// argument after --print. Arguments are passed as discrete array
// elements, never through a shell.
func BuildArgs(prompt string, opts *options.Options) ([]string, error) {
	args := []string{"--output-format", "stream-json", "--verbose"}

	args = addSystemPrompt(args, opts)
	args = addTools(args, opts)
	args = addModelAndTurns(args, opts)
	args = addPermissions(args, opts)
	args = addSession(args, opts)

	args, err := addMCPServers(args, opts)
	if err != nil {
		return nil, err
	}

	return append(args, "--print", prompt), nil
}

func addSystemPrompt(args []string, opts *options.Options) []string {
	if opts.SystemPrompt != nil {
		args = append(args, "--system-prompt", *opts.SystemPrompt)
	}

	if opts.AppendSystemPrompt != nil {
		args = append(args, "--append-system-prompt", *opts.AppendSystemPrompt)
	}

	return args
}

func addTools(args []string, opts *options.Options) []string {
	if len(opts.AllowedTools) > 0 {
		args = append(args, "--allowedTools", strings.Join(opts.AllowedTools, ","))
	}

	if len(opts.DisallowedTools) > 0 {
		args = append(args, "--disallowedTools", strings.Join(opts.DisallowedTools, ","))
	}

	return args
}

func addModelAndTurns(args []string, opts *options.Options) []string {
	if opts.MaxTurns > 0 {
		args = append(args, "--max-turns", strconv.Itoa(opts.MaxTurns))
	}

	if opts.Model != "" {
		args = append(args, "--model", opts.Model)
	}

	return args
}

func addPermissions(args []string, opts *options.Options) []string {
	if opts.PermissionPromptToolName != "" {
		args = append(args, "--permission-prompt-tool", opts.PermissionPromptToolName)
	}

	if opts.PermissionMode != "" {
		args = append(args, "--permission-mode", string(opts.PermissionMode))
	}

	return args
}

func addSession(args []string, opts *options.Options) []string {
	if opts.ContinueConversation {
		args = append(args, "--continue")
	}

	if opts.Resume != "" {
		args = append(args, "--resume", opts.Resume)
	}

	return args
}

// addMCPServers serializes the MCP server map to a single JSON argument.
// json.Marshal sorts map keys, so the output is stable across runs.
func addMCPServers(args []string, opts *options.Options) ([]string, error) {
	if len(opts.McpServers) == 0 {
		return args, nil
	}

	config := map[string]any{"mcpServers": opts.McpServers}

	data, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal MCP config: %w", err)
	}

	return append(args, "--mcp-config", string(data)), nil
}

// buildEnv merges the inherited environment with the SDK entrypoint
// marker and any user-supplied variables.
func buildEnv(extra map[string]string) []string {
	env := os.Environ()
	env = append(env, entrypointEnv)
	for k, v := range extra {
		env = append(env, k+"="+v)
	}

	return env
}
