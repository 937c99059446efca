// Package cli implements the subprocess transport adapter.
//
// This adapter implements the Transport port by spawning the Claude Code
// CLI in --print mode and streaming its stdout back as raw stream-json
// lines. One Transport owns at most one OS process; transports are not
// pooled or reused across queries.
package cli

import (
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/conneroisu/claudecode/pkg/claudecode/options"
	"github.com/conneroisu/claudecode/pkg/claudecode/ports"
)

// State is the lifecycle state of a Transport.
type State int

const (
	// StateUnconnected is the state before Connect.
	StateUnconnected State = iota
	// StateConnected means the CLI process is running.
	StateConnected
	// StateDraining means stdout is exhausted but Close has not run yet.
	StateDraining
	// StateClosed is terminal.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnconnected:
		return "unconnected"
	case StateConnected:
		return "connected"
	case StateDraining:
		return "draining"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

const (
	initialScanBuffer = 64 * 1024
	lineChannelBuffer = 10

	// maxStderrCapture bounds how much stderr is retained for error
	// reporting. Lines beyond the cap still reach StderrCallback.
	maxStderrCapture = 256 * 1024
)

// Transport implements ports.Transport using a CLI subprocess.
// The zero value is not usable; construct with New.
type Transport struct {
	opts    *options.Options
	prompt  string
	cliPath string

	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr io.ReadCloser

	mu            sync.Mutex
	state         State
	readerStarted bool

	// closing is closed when Close begins, unblocking any pending
	// channel sends in the reader goroutine. done is closed once the
	// reader has reaped the process via Wait.
	closing    chan struct{}
	done       chan struct{}
	stderrDone chan struct{}

	stderrMu  sync.Mutex
	stderrBuf strings.Builder

	maxBufferSize int
}

// Verify interface compliance at compile time.
var _ ports.Transport = (*Transport)(nil)

// New creates a transport that will run prompt through the Claude CLI.
// The transport must be connected via Connect before use.
func New(prompt string, opts *options.Options) *Transport {
	if opts == nil {
		opts = options.NewOptions()
	}

	maxBuf := opts.MaxBufferSize
	if maxBuf <= 0 {
		maxBuf = options.DefaultMaxBufferSize
	}

	return &Transport{
		opts:          opts,
		prompt:        prompt,
		state:         StateUnconnected,
		closing:       make(chan struct{}),
		done:          make(chan struct{}),
		stderrDone:    make(chan struct{}),
		maxBufferSize: maxBuf,
	}
}

// State reports the current lifecycle state.
func (t *Transport) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// CLIPath returns the resolved binary path after a successful Connect.
func (t *Transport) CLIPath() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cliPath
}
