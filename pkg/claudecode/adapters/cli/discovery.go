package cli

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/conneroisu/claudecode/pkg/ccerrs"
)

// fallbackPaths lists the install locations checked after a PATH lookup
// fails, in the order the npm and yarn installers use them.
func fallbackPaths(home string) []string {
	return []string{
		filepath.Join(home, ".npm-global", "bin", "claude"),
		"/usr/local/bin/claude",
		filepath.Join(home, ".local", "bin", "claude"),
		filepath.Join(home, "node_modules", ".bin", "claude"),
		filepath.Join(home, ".yarn", "bin", "claude"),
	}
}

// findCLI locates the Claude CLI binary.
// An explicit override is trusted without a filesystem check; a bogus
// override surfaces later as a spawn failure. Otherwise the system PATH
// is searched, then the fixed install locations. When nothing is found
// the error distinguishes a missing Node.js runtime from a missing
// binary, since the two need different remediation.
func findCLI(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if path, err := exec.LookPath("claude"); err == nil {
		return path, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, candidate := range fallbackPaths(home) {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}

	if _, err := exec.LookPath("node"); err != nil {
		return "", ccerrs.NewCLINotFoundError(
			ccerrs.ErrCodeNodeNotFound,
			"Claude Code requires Node.js, which is not installed. "+
				"Install Node.js from https://nodejs.org/, then install Claude Code: "+
				"npm install -g @anthropic-ai/claude-code",
			"",
		)
	}

	return "", ccerrs.NewCLINotFoundError(
		ccerrs.ErrCodeCLINotFound,
		"Claude Code not found. Install with: npm install -g @anthropic-ai/claude-code",
		"",
	)
}
