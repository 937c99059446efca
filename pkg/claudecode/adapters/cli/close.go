package cli

// Close terminates the CLI process if still running and releases the
// handle. It is valid from any state and idempotent: closing twice is a
// no-op, never an error.
func (t *Transport) Close() error {
	t.mu.Lock()
	if t.state == StateClosed {
		t.mu.Unlock()

		return nil
	}
	t.state = StateClosed
	cmd := t.cmd
	started := t.readerStarted
	t.mu.Unlock()

	close(t.closing)

	if cmd == nil {
		return nil
	}

	if cmd.Process != nil {
		_ = cmd.Process.Kill()
	}

	// The reader goroutine owns Wait once it has started; otherwise the
	// process is reaped here after stderr capture winds down.
	if started {
		<-t.done
	} else {
		<-t.stderrDone
		_ = cmd.Wait()
	}

	return nil
}
