package cli

import (
	"bufio"
	"context"
	"errors"
	"os/exec"

	"github.com/conneroisu/claudecode/pkg/ccerrs"
)

// ReadLines streams raw stdout lines from the CLI process.
// Both channels close once the process has exited and been reaped; a
// non-zero exit surfaces on the error channel as a ProcessError carrying
// the exit code and captured stderr. ReadLines may be called once per
// transport, and only while Connected.
func (t *Transport) ReadLines(ctx context.Context) (<-chan string, <-chan error) {
	lineCh := make(chan string, lineChannelBuffer)
	errCh := make(chan error, 1)

	t.mu.Lock()
	if t.state != StateConnected {
		err := ccerrs.NewConnectionError(
			ccerrs.ErrCodeNotConnected, "transport is not connected", nil)
		t.mu.Unlock()
		errCh <- err
		close(lineCh)
		close(errCh)

		return lineCh, errCh
	}
	if t.readerStarted {
		t.mu.Unlock()
		errCh <- ccerrs.NewConnectionError(
			ccerrs.ErrCodeAlreadyConnected, "output stream already consumed", nil)
		close(lineCh)
		close(errCh)

		return lineCh, errCh
	}
	t.readerStarted = true
	t.mu.Unlock()

	go t.readLoop(ctx, lineCh, errCh)

	return lineCh, errCh
}

// readLoop owns the stdout scanner and the final cmd.Wait.
// Channel sends race against closing so that Close never deadlocks on a
// reader blocked mid-send.
func (t *Transport) readLoop(ctx context.Context, lineCh chan<- string, errCh chan<- error) {
	defer close(errCh)
	defer close(lineCh)

	scanner := bufio.NewScanner(t.stdout)
	scanner.Buffer(make([]byte, t.scanBufferSize()), t.maxBufferSize)

scan:
	for scanner.Scan() {
		select {
		case lineCh <- scanner.Text():
		case <-ctx.Done():
			t.sendErr(errCh, ctx.Err())

			break scan
		case <-t.closing:
			break scan
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			t.sendErr(errCh, ccerrs.NewLineTooLongError(t.maxBufferSize, err))
		} else {
			t.sendErr(errCh, ccerrs.NewConnectionError(
				ccerrs.ErrCodeProcessExited, "reading process output failed", err))
		}
	}

	t.setDraining()

	// Pipe reads must finish before Wait closes the pipes.
	<-t.stderrDone
	err := t.cmd.Wait()
	close(t.done)

	// A close in flight killed the process on purpose; its exit status
	// is not an error the caller needs.
	if err == nil || t.State() == StateClosed {
		return
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		t.sendErr(errCh, ccerrs.NewProcessError(exitErr.ExitCode(), t.stderrText()))

		return
	}

	t.sendErr(errCh, ccerrs.NewConnectionError(
		ccerrs.ErrCodeProcessExited, "waiting for process failed", err))
}

// scanBufferSize keeps the initial scanner buffer at or below the
// configured cap; bufio takes the larger of the two as the token limit.
func (t *Transport) scanBufferSize() int {
	if t.maxBufferSize < initialScanBuffer {
		return t.maxBufferSize
	}

	return initialScanBuffer
}

func (t *Transport) sendErr(errCh chan<- error, err error) {
	select {
	case errCh <- err:
	case <-t.closing:
	}
}

func (t *Transport) setDraining() {
	t.mu.Lock()
	if t.state == StateConnected {
		t.state = StateDraining
	}
	t.mu.Unlock()
}

// captureStderr retains bounded stderr output for error reporting and
// forwards each line to StderrCallback when one is set. The callback
// must not block; it is invoked from the capture goroutine.
func (t *Transport) captureStderr() {
	defer close(t.stderrDone)

	scanner := bufio.NewScanner(t.stderr)
	scanner.Buffer(make([]byte, t.scanBufferSize()), t.maxBufferSize)

	for scanner.Scan() {
		line := scanner.Text()

		t.stderrMu.Lock()
		if t.stderrBuf.Len() < maxStderrCapture {
			if t.stderrBuf.Len() > 0 {
				t.stderrBuf.WriteByte('\n')
			}
			t.stderrBuf.WriteString(line)
		}
		t.stderrMu.Unlock()

		if t.opts.StderrCallback != nil {
			t.opts.StderrCallback(line)
		}
	}
}

func (t *Transport) stderrText() string {
	t.stderrMu.Lock()
	defer t.stderrMu.Unlock()

	return t.stderrBuf.String()
}
