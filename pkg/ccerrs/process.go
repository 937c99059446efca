package ccerrs

import "fmt"

// ProcessError indicates the CLI process exited non-zero.
type ProcessError struct {
	*BaseError
	exitCode int
	stderr   string
}

// NewProcessError creates a new process exit error.
func NewProcessError(exitCode int, stderr string) *ProcessError {
	message := fmt.Sprintf("exited with code %d", exitCode)
	if stderr != "" {
		message = fmt.Sprintf("%s: %s", message, stderr)
	}

	err := &ProcessError{
		BaseError: NewBaseError(CategoryProcess, ErrCodeProcessExited, message, nil),
		exitCode:  exitCode,
		stderr:    stderr,
	}
	err.WithMetadata("exit_code", exitCode)
	err.WithMetadata("stderr", stderr)

	return err
}

// ExitCode returns the process exit code.
func (e *ProcessError) ExitCode() int {
	return e.exitCode
}

// Stderr returns the captured stderr output.
func (e *ProcessError) Stderr() string {
	return e.stderr
}
