// Package testutil provides test utilities and mocks.
package testutil

import (
	"context"

	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
	"github.com/conneroisu/claudecode/pkg/claudecode/ports"
)

// MockTransport implements ports.Transport for testing.
type MockTransport struct {
	ConnectFunc   func(context.Context) error
	ReadLinesFunc func(context.Context) (<-chan string, <-chan error)
	CloseFunc     func() error
}

// Connect calls the mock function.
func (m *MockTransport) Connect(ctx context.Context) error {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx)
	}

	return nil
}

// ReadLines calls the mock function.
func (m *MockTransport) ReadLines(ctx context.Context) (<-chan string, <-chan error) {
	if m.ReadLinesFunc != nil {
		return m.ReadLinesFunc(ctx)
	}

	return LineStream()
}

// Close calls the mock function.
func (m *MockTransport) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}

	return nil
}

// Verify interface compliance.
var _ ports.Transport = (*MockTransport)(nil)

// MockParser implements ports.MessageParser for testing.
type MockParser struct {
	ParseMessageFunc func(map[string]any) (messages.Message, error)
}

// ParseMessage calls the mock function.
func (m *MockParser) ParseMessage(raw map[string]any) (messages.Message, error) {
	if m.ParseMessageFunc != nil {
		return m.ParseMessageFunc(raw)
	}

	return nil, nil
}

// Verify interface compliance.
var _ ports.MessageParser = (*MockParser)(nil)

// LineStream returns channels pre-loaded with lines and already closed,
// mimicking a transport whose process exited cleanly.
func LineStream(lines ...string) (<-chan string, <-chan error) {
	lineCh := make(chan string, len(lines))
	for _, line := range lines {
		lineCh <- line
	}
	close(lineCh)

	errCh := make(chan error)
	close(errCh)

	return lineCh, errCh
}

// LineStreamWithError is LineStream with a terminal error after the
// lines, mimicking a process that exited non-zero.
func LineStreamWithError(err error, lines ...string) (<-chan string, <-chan error) {
	lineCh := make(chan string, len(lines))
	for _, line := range lines {
		lineCh <- line
	}
	close(lineCh)

	errCh := make(chan error, 1)
	errCh <- err
	close(errCh)

	return lineCh, errCh
}
