package ccerrs

// CLINotFoundError indicates the Claude Code binary could not be located.
// The code distinguishes a missing binary (ErrCodeCLINotFound) from a
// missing Node.js runtime (ErrCodeNodeNotFound) since the two need
// different remediation.
type CLINotFoundError struct {
	*BaseError
	path string
}

// NewCLINotFoundError creates a new CLI discovery error.
func NewCLINotFoundError(code ErrorCode, message, path string) *CLINotFoundError {
	err := &CLINotFoundError{
		BaseError: NewBaseError(CategoryCLI, code, message, nil),
		path:      path,
	}
	err.WithMetadata("path", path)

	return err
}

// Path returns the last path that was searched.
func (e *CLINotFoundError) Path() string {
	return e.path
}

// ConnectionError indicates the subprocess could not be spawned or the
// transport was used in the wrong state.
type ConnectionError struct {
	*BaseError
}

// NewConnectionError creates a new connection error.
func NewConnectionError(code ErrorCode, message string, cause error) *ConnectionError {
	return &ConnectionError{
		BaseError: NewBaseError(CategoryConnection, code, message, cause),
	}
}
