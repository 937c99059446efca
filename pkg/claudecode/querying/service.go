// Package querying implements the query orchestrator.
//
// The orchestrator owns the pipeline: raw transport lines are decoded
// from stream-json, mapped to typed messages, and either collected
// (batch) or forwarded as they arrive (streaming). Both paths guarantee
// the transport is closed exactly once, even when decoding fails
// partway through.
package querying

import (
	"context"
	"fmt"

	"github.com/conneroisu/claudecode/pkg/claudecode/internal/jsonl"
	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
	"github.com/conneroisu/claudecode/pkg/claudecode/ports"
)

// Dependencies groups the external dependencies of the service.
type Dependencies struct {
	Transport ports.Transport
	Parser    ports.MessageParser
}

// Service executes queries against one transport instance.
// A service is single-use: each query needs its own transport, so
// concurrent queries never share mutable state.
type Service struct {
	transport ports.Transport
	parser    ports.MessageParser
}

// NewService creates a querying service.
func NewService(deps Dependencies) *Service {
	return &Service{
		transport: deps.Transport,
		parser:    deps.Parser,
	}
}

// Run executes a batch query: it connects, drains the entire stream,
// and returns every mapped message in emission order once the process
// has exited. Any decode, parse, or process failure aborts the batch
// and is returned instead of a partial result.
func (s *Service) Run(ctx context.Context) ([]messages.Message, error) {
	if err := s.transport.Connect(ctx); err != nil {
		return nil, fmt.Errorf("transport connect: %w", err)
	}
	defer func() { _ = s.transport.Close() }()

	lineCh, errCh := s.transport.ReadLines(ctx)

	var msgs []messages.Message
	err := s.pump(ctx, lineCh, errCh, func(msg messages.Message) error {
		msgs = append(msgs, msg)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return msgs, nil
}

// processLine decodes one raw line and maps it to a message.
// Blank lines and unrecognized message types come back as (nil, nil).
func (s *Service) processLine(line string) (messages.Message, error) {
	obj, err := jsonl.Decode(line)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}

	return s.parser.ParseMessage(obj)
}
