package querying

import (
	"context"
	"fmt"

	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
)

// Stream executes a streaming query: messages are delivered on the
// returned channel as their lines are decoded, one pass, forward-only.
// Both channels close when the stream ends; a pipeline failure arrives
// on the error channel and terminates the stream. Restarting means
// issuing a new query.
func (s *Service) Stream(ctx context.Context) (<-chan messages.Message, <-chan error) {
	msgCh := make(chan messages.Message)
	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		defer close(msgCh)

		if err := s.transport.Connect(ctx); err != nil {
			errCh <- fmt.Errorf("transport connect: %w", err)

			return
		}
		defer func() { _ = s.transport.Close() }()

		lineCh, transportErrCh := s.transport.ReadLines(ctx)

		emit := func(msg messages.Message) error {
			select {
			case msgCh <- msg:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := s.pump(ctx, lineCh, transportErrCh, emit); err != nil {
			errCh <- err
		}
	}()

	return msgCh, errCh
}

// pump drives the shared pipeline loop until both transport channels
// close, invoking emit for every mapped message.
func (s *Service) pump(
	ctx context.Context,
	lineCh <-chan string,
	errCh <-chan error,
	emit func(messages.Message) error,
) error {
	for lineCh != nil || errCh != nil {
		// Prefer pending lines so a terminal process failure never
		// outruns output that was already emitted.
		select {
		case line, ok := <-lineCh:
			if !ok {
				lineCh = nil

				continue
			}
			if err := s.handleLine(line, emit); err != nil {
				return err
			}

			continue
		default:
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lineCh:
			if !ok {
				lineCh = nil

				continue
			}
			if err := s.handleLine(line, emit); err != nil {
				return err
			}
		case err, ok := <-errCh:
			if !ok {
				errCh = nil

				continue
			}

			return err
		}
	}

	return nil
}

func (s *Service) handleLine(line string, emit func(messages.Message) error) error {
	msg, err := s.processLine(line)
	if err != nil {
		return err
	}
	if msg == nil {
		return nil
	}

	return emit(msg)
}
