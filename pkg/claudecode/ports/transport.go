// Package ports defines interfaces that the domain needs from infrastructure.
// These are "ports" in hexagonal architecture - contracts defined by
// domain needs, not by external systems.
package ports

import "context"

// Transport defines what the domain needs from a transport layer.
// This abstracts subprocess communication with the Claude CLI.
type Transport interface {
	// Connect starts the Claude CLI process.
	Connect(ctx context.Context) error

	// ReadLines returns channels for raw output lines and transport errors.
	// Both channels close once the process has exited and its output is
	// drained. Each line is one element of the CLI's stream-json output.
	ReadLines(ctx context.Context) (<-chan string, <-chan error)

	// Close terminates the process and releases resources.
	// It is safe to call more than once.
	Close() error
}
