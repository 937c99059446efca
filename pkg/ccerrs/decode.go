package ccerrs

import "fmt"

// previewLimit bounds how much of a failing line is reproduced in error
// messages, so a multi-hundred-kilobyte line stays printable.
const previewLimit = 100

// previewMarker is appended when a line had to be truncated.
const previewMarker = "..."

// DecodeError indicates a stdout line failed strict JSON decoding.
// It carries a bounded preview of the offending line rather than the
// whole line.
type DecodeError struct {
	*BaseError
	preview string
}

// NewDecodeError creates a new line decode error.
func NewDecodeError(line string, cause error) *DecodeError {
	preview := truncate(line, previewLimit)
	err := &DecodeError{
		BaseError: NewBaseError(
			CategoryDecode,
			ErrCodeJSONDecode,
			fmt.Sprintf("failed to decode line: %s", preview),
			cause,
		),
		preview: preview,
	}
	err.WithMetadata("line_preview", preview)

	return err
}

// NewLineTooLongError reports a stdout line that exceeded the configured
// buffer limit before a newline was seen.
func NewLineTooLongError(limit int, cause error) *DecodeError {
	return &DecodeError{
		BaseError: NewBaseError(
			CategoryDecode,
			ErrCodeLineTooLong,
			fmt.Sprintf("line exceeded %d byte buffer limit", limit),
			cause,
		),
	}
}

// Preview returns the truncated line that failed to decode.
func (e *DecodeError) Preview() string {
	return e.preview
}

// ParseError indicates a decoded JSON object could not be mapped to a
// typed message, usually because a required field is absent.
type ParseError struct {
	*BaseError
	messageType string
}

// NewParseError creates a new message mapping error.
func NewParseError(code ErrorCode, message, messageType string) *ParseError {
	err := &ParseError{
		BaseError:   NewBaseError(CategoryParse, code, message, nil),
		messageType: messageType,
	}
	err.WithMetadata("message_type", messageType)

	return err
}

// MessageType returns the wire type of the message that failed to map.
func (e *ParseError) MessageType() string {
	return e.messageType
}

// truncate bounds s to limit characters, appending a marker when content
// was dropped.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit] + previewMarker
}
