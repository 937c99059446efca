// Package ccerrs provides the error handling framework for the Claude
// Code SDK. Every failure the SDK surfaces is an SDKError carrying a
// category and a code, so callers can branch on "any SDK-originated
// failure" with a single errors.As, or on a specific failure kind with
// the Is helpers.
package ccerrs

import "errors"

// ErrorCategory groups errors by the pipeline stage that produced them.
type ErrorCategory string

const (
	// CategoryCLI covers binary discovery failures.
	CategoryCLI ErrorCategory = "cli"
	// CategoryConnection covers process spawn and transport state failures.
	CategoryConnection ErrorCategory = "connection"
	// CategoryProcess covers non-zero subprocess exits.
	CategoryProcess ErrorCategory = "process"
	// CategoryDecode covers line-level JSON decoding failures.
	CategoryDecode ErrorCategory = "decode"
	// CategoryParse covers message mapping failures.
	CategoryParse ErrorCategory = "parse"
)

// ErrorCode identifies a specific failure within a category.
type ErrorCode string

// CLI error codes.
const (
	ErrCodeCLINotFound  ErrorCode = "cli_not_found"
	ErrCodeNodeNotFound ErrorCode = "node_not_found"
)

// Connection error codes.
const (
	ErrCodeSpawnFailed      ErrorCode = "spawn_failed"
	ErrCodePipeFailed       ErrorCode = "pipe_failed"
	ErrCodeNotConnected     ErrorCode = "not_connected"
	ErrCodeAlreadyConnected ErrorCode = "already_connected"
)

// Process error codes.
const (
	ErrCodeProcessExited ErrorCode = "process_exited"
)

// Decode error codes.
const (
	ErrCodeJSONDecode  ErrorCode = "json_decode"
	ErrCodeLineTooLong ErrorCode = "line_too_long"
)

// Parse error codes.
const (
	ErrCodeMissingField ErrorCode = "missing_field"
	ErrCodeInvalidField ErrorCode = "invalid_field"
)

// SDKError is the common supertype for all errors produced by this SDK.
type SDKError interface {
	error
	// Code returns the error code.
	Code() ErrorCode
	// Category returns the error category.
	Category() ErrorCategory
	// Unwrap returns the underlying error.
	Unwrap() error
	// Metadata returns additional error metadata.
	Metadata() map[string]any
}

// AsSDKError extracts an SDKError from the error chain.
func AsSDKError(err error) (SDKError, bool) {
	var sdkErr SDKError
	if errors.As(err, &sdkErr) {
		return sdkErr, true
	}

	return nil, false
}

// IsCLINotFound checks if the error is a CLI discovery error.
func IsCLINotFound(err error) bool {
	if sdkErr, ok := AsSDKError(err); ok {
		return sdkErr.Category() == CategoryCLI
	}

	return false
}

// IsConnectionError checks if the error is a connection error.
func IsConnectionError(err error) bool {
	if sdkErr, ok := AsSDKError(err); ok {
		return sdkErr.Category() == CategoryConnection
	}

	return false
}

// IsProcessError checks if the error is a process exit error.
func IsProcessError(err error) bool {
	if sdkErr, ok := AsSDKError(err); ok {
		return sdkErr.Category() == CategoryProcess
	}

	return false
}

// IsDecodeError checks if the error is a line decode error.
func IsDecodeError(err error) bool {
	if sdkErr, ok := AsSDKError(err); ok {
		return sdkErr.Category() == CategoryDecode
	}

	return false
}

// IsParseError checks if the error is a message mapping error.
func IsParseError(err error) bool {
	if sdkErr, ok := AsSDKError(err); ok {
		return sdkErr.Category() == CategoryParse
	}

	return false
}
