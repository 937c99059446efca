package cli

import (
	"context"
	"os/exec"

	"github.com/conneroisu/claudecode/pkg/ccerrs"
)

// Connect discovers the CLI binary, builds the argument vector, and
// starts the subprocess. On success the transport is Connected and a
// goroutine begins capturing stderr.
//
// Connect spawns exactly one OS process; calling it on an already
// connected or closed transport is an error.
func (t *Transport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case StateConnected, StateDraining:
		return ccerrs.NewConnectionError(
			ccerrs.ErrCodeAlreadyConnected, "transport already connected", nil)
	case StateClosed:
		return ccerrs.NewConnectionError(
			ccerrs.ErrCodeNotConnected, "transport is closed", nil)
	}

	cliPath, err := findCLI(t.opts.CLIPath)
	if err != nil {
		return err
	}
	t.cliPath = cliPath

	args, err := BuildArgs(t.prompt, t.opts)
	if err != nil {
		return ccerrs.NewConnectionError(
			ccerrs.ErrCodeSpawnFailed, "command construction failed", err)
	}

	cmd := exec.CommandContext(ctx, cliPath, args...)
	cmd.Env = buildEnv(t.opts.Env)
	if t.opts.Cwd != "" {
		cmd.Dir = t.opts.Cwd
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return ccerrs.NewConnectionError(
			ccerrs.ErrCodePipeFailed, "stdout pipe failed", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return ccerrs.NewConnectionError(
			ccerrs.ErrCodePipeFailed, "stderr pipe failed", err)
	}

	if err := cmd.Start(); err != nil {
		return ccerrs.NewConnectionError(
			ccerrs.ErrCodeSpawnFailed, "failed to start Claude CLI", err)
	}

	t.cmd = cmd
	t.stdout = stdout
	t.stderr = stderr
	t.state = StateConnected

	go t.captureStderr()

	return nil
}
