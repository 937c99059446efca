// Package options defines the per-query configuration record for the
// Claude Code CLI. An Options value is assembled by the caller, read by
// the command builder and transport, and never mutated once a query
// starts.
package options

// PermissionMode selects how the CLI handles tool permission prompts.
type PermissionMode string

const (
	// PermissionModeDefault uses the CLI's default permission behavior.
	PermissionModeDefault PermissionMode = "default"
	// PermissionModeAcceptEdits automatically accepts file edits.
	PermissionModeAcceptEdits PermissionMode = "acceptEdits"
	// PermissionModeBypassPermissions bypasses all permission checks.
	PermissionModeBypassPermissions PermissionMode = "bypassPermissions"
)

const (
	// DefaultMaxThinkingTokens is the thinking-token budget applied by
	// NewOptions.
	DefaultMaxThinkingTokens = 8000

	// DefaultMaxBufferSize caps a single stdout line from the CLI.
	DefaultMaxBufferSize = 1024 * 1024
)

// Drift kinds passed to Options.OnDrift.
const (
	// DriftMessage reports an unrecognized top-level message type.
	DriftMessage = "message"
	// DriftContentBlock reports an unrecognized assistant content block
	// type.
	DriftContentBlock = "content_block"
)

// Options configures a single query. The zero value is usable; NewOptions
// additionally applies the documented defaults. No field is validated at
// construction time: out-of-range values (a negative MaxTurns, an unknown
// permission mode) pass through to the CLI and fail there.
type Options struct {
	// AllowedTools lists tools the agent may use. Order is preserved;
	// duplicates are passed through.
	AllowedTools []string

	// DisallowedTools lists tools the agent may not use.
	DisallowedTools []string

	// MaxThinkingTokens is the thinking-token budget carried on the
	// record. The CLI invocation defines no flag for it, so it is never
	// emitted; it exists for callers that account for it out of band.
	MaxThinkingTokens int

	// SystemPrompt replaces the CLI's system prompt when non-nil.
	SystemPrompt *string

	// AppendSystemPrompt is appended to the system prompt when non-nil.
	AppendSystemPrompt *string

	// McpServers maps server name to its definition, serialized as one
	// JSON argument under the "mcpServers" key.
	McpServers map[string]McpServerConfig

	// PermissionMode sets permission handling. Empty means unset.
	PermissionMode PermissionMode

	// ContinueConversation continues the most recent conversation.
	ContinueConversation bool

	// Resume resumes the session with this identifier. Empty means unset.
	Resume string

	// MaxTurns limits conversation turns. Zero means unset.
	MaxTurns int

	// Model selects the model. Empty means unset.
	Model string

	// PermissionPromptToolName routes permission prompts to an MCP tool.
	// Empty means unset.
	PermissionPromptToolName string

	// Cwd is the subprocess working directory. Empty inherits the
	// caller's.
	Cwd string

	// CLIPath overrides binary discovery with an explicit path.
	CLIPath string

	// Env adds variables to the subprocess environment. The host
	// process environment is never modified.
	Env map[string]string

	// MaxBufferSize caps a single stdout line; longer lines fail the
	// query. Zero means DefaultMaxBufferSize.
	MaxBufferSize int

	// StderrCallback receives each stderr line from the subprocess.
	StderrCallback func(string)

	// OnDrift receives wire content the SDK skipped: unrecognized
	// message or content-block types. The kind is DriftMessage or
	// DriftContentBlock and raw is the offending object. Skipping is
	// silent without it.
	OnDrift func(kind string, raw map[string]any)
}

// NewOptions returns an Options with defaults applied.
func NewOptions() *Options {
	return &Options{
		MaxThinkingTokens: DefaultMaxThinkingTokens,
		MaxBufferSize:     DefaultMaxBufferSize,
	}
}
