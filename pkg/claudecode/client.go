package claudecode

import (
	"context"

	"github.com/conneroisu/claudecode/pkg/claudecode/adapters/cli"
	"github.com/conneroisu/claudecode/pkg/claudecode/adapters/parse"
	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
	"github.com/conneroisu/claudecode/pkg/claudecode/options"
	"github.com/conneroisu/claudecode/pkg/claudecode/querying"
)

// Query performs a one-shot batch query against the Claude Code CLI.
// It blocks until the CLI process exits and returns every message in
// emission order. opts may be nil for defaults.
func Query(
	ctx context.Context,
	prompt string,
	opts *options.Options,
) ([]messages.Message, error) {
	return newService(prompt, opts).Run(ctx)
}

// QueryStream performs a one-shot streaming query against the Claude
// Code CLI. Messages arrive on the first channel as the CLI emits
// them; a pipeline failure arrives on the second and ends the stream.
// Both channels close when the query finishes. opts may be nil.
func QueryStream(
	ctx context.Context,
	prompt string,
	opts *options.Options,
) (<-chan messages.Message, <-chan error) {
	return newService(prompt, opts).Stream(ctx)
}

// newService wires the CLI transport and stream-json parser into a
// querying service. Every call builds an independent pipeline; queries
// never share a transport or any mutable state.
func newService(prompt string, opts *options.Options) *querying.Service {
	// Copy so later caller mutations cannot race the running query.
	localOpts := options.NewOptions()
	if opts != nil {
		optsCopy := *opts
		localOpts = &optsCopy
	}

	return querying.NewService(querying.Dependencies{
		Transport: cli.New(prompt, localOpts),
		Parser:    parse.NewAdapter(localOpts.OnDrift),
	})
}
