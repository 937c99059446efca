package querying_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/claudecode/pkg/ccerrs"
	"github.com/conneroisu/claudecode/pkg/claudecode/adapters/parse"
	"github.com/conneroisu/claudecode/pkg/claudecode/internal/testutil"
	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
	"github.com/conneroisu/claudecode/pkg/claudecode/querying"
)

var scenarioLines = []string{
	`{"type":"system","subtype":"init","session_id":"s1"}`,
	`{"type":"assistant","message":{"content":[{"type":"text","text":"4"}]}}`,
	`{"type":"result","subtype":"success","cost_usd":0.001,"duration_ms":500,"duration_api_ms":400,"is_error":false,"num_turns":1,"session_id":"s1","total_cost_usd":0.001}`,
}

func newService(transport *testutil.MockTransport) *querying.Service {
	return querying.NewService(querying.Dependencies{
		Transport: transport,
		Parser:    parse.NewAdapter(nil),
	})
}

func collect(msgCh <-chan messages.Message, errCh <-chan error) ([]messages.Message, []error) {
	var msgs []messages.Message
	var errs []error
	for msgCh != nil || errCh != nil {
		select {
		case m, ok := <-msgCh:
			if !ok {
				msgCh = nil

				continue
			}
			msgs = append(msgs, m)
		case e, ok := <-errCh:
			if !ok {
				errCh = nil

				continue
			}
			errs = append(errs, e)
		}
	}

	return msgs, errs
}

func TestRunCollectsMessages(t *testing.T) {
	closeCount := 0
	transport := &testutil.MockTransport{
		ReadLinesFunc: func(context.Context) (<-chan string, <-chan error) {
			return testutil.LineStream(scenarioLines...)
		},
		CloseFunc: func() error {
			closeCount++

			return nil
		},
	}

	msgs, err := newService(transport).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, 1, closeCount)

	system, ok := msgs[0].(*messages.SystemMessage)
	require.True(t, ok)
	assert.Equal(t, "init", system.Subtype)
	assert.Equal(t, "s1", system.Data["session_id"])

	assistant, ok := msgs[1].(*messages.AssistantMessage)
	require.True(t, ok)
	require.Len(t, assistant.Content, 1)
	assert.Equal(t, "4", assistant.Content[0].(messages.TextBlock).Text)

	result, ok := msgs[2].(*messages.ResultMessage)
	require.True(t, ok)
	assert.Equal(t, "success", result.Subtype)
	assert.InDelta(t, 0.001, result.CostUSD, 1e-9)
	assert.Equal(t, "s1", result.SessionID)
}

func TestRunSkipsBlankAndUnknownLines(t *testing.T) {
	transport := &testutil.MockTransport{
		ReadLinesFunc: func(context.Context) (<-chan string, <-chan error) {
			return testutil.LineStream(
				"",
				`{"type":"system","subtype":"init","session_id":"s1"}`,
				"   ",
				`{"type":"stream_event","uuid":"u1"}`,
				`{"type":"user","message":{"content":"hi"}}`,
			)
		},
	}

	msgs, err := newService(transport).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.IsType(t, &messages.SystemMessage{}, msgs[0])
	assert.IsType(t, &messages.UserMessage{}, msgs[1])
}

func TestRunAbortsOnDecodeFailure(t *testing.T) {
	closeCount := 0
	transport := &testutil.MockTransport{
		ReadLinesFunc: func(context.Context) (<-chan string, <-chan error) {
			return testutil.LineStream(
				`{"type":"system","subtype":"init"}`,
				`{"bad":`,
				`{"type":"user","message":{"content":"never reached"}}`,
			)
		},
		CloseFunc: func() error {
			closeCount++

			return nil
		},
	}

	msgs, err := newService(transport).Run(context.Background())
	require.Error(t, err)
	assert.True(t, ccerrs.IsDecodeError(err))
	assert.Contains(t, err.Error(), `{"bad":`)
	assert.Nil(t, msgs)
	assert.Equal(t, 1, closeCount)
}

func TestRunSurfacesProcessFailure(t *testing.T) {
	transport := &testutil.MockTransport{
		ReadLinesFunc: func(context.Context) (<-chan string, <-chan error) {
			return testutil.LineStreamWithError(
				ccerrs.NewProcessError(1, "model overloaded"),
				`{"type":"system","subtype":"init"}`,
			)
		},
	}

	msgs, err := newService(transport).Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, msgs)

	var procErr *ccerrs.ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, 1, procErr.ExitCode())
	assert.Equal(t, "model overloaded", procErr.Stderr())
}

func TestRunConnectFailure(t *testing.T) {
	closeCount := 0
	transport := &testutil.MockTransport{
		ConnectFunc: func(context.Context) error {
			return ccerrs.NewConnectionError(ccerrs.ErrCodeSpawnFailed, "spawn failed", errors.New("ENOENT"))
		},
		CloseFunc: func() error {
			closeCount++

			return nil
		},
	}

	msgs, err := newService(transport).Run(context.Background())
	require.Error(t, err)
	assert.True(t, ccerrs.IsConnectionError(err))
	assert.Nil(t, msgs)
	assert.Equal(t, 0, closeCount, "nothing to release when connect never succeeded")
}

func TestStreamMatchesBatch(t *testing.T) {
	makeTransport := func() *testutil.MockTransport {
		return &testutil.MockTransport{
			ReadLinesFunc: func(context.Context) (<-chan string, <-chan error) {
				return testutil.LineStream(scenarioLines...)
			},
		}
	}

	batch, err := newService(makeTransport()).Run(context.Background())
	require.NoError(t, err)

	msgCh, errCh := newService(makeTransport()).Stream(context.Background())
	streamed, errs := collect(msgCh, errCh)
	require.Empty(t, errs)

	require.Len(t, streamed, len(batch))
	for i := range batch {
		assert.Equal(t, batch[i], streamed[i])
	}
}

func TestStreamDeliversIncrementally(t *testing.T) {
	lineCh := make(chan string)
	transportErrCh := make(chan error)
	closeCount := 0
	transport := &testutil.MockTransport{
		ReadLinesFunc: func(context.Context) (<-chan string, <-chan error) {
			return lineCh, transportErrCh
		},
		CloseFunc: func() error {
			closeCount++

			return nil
		},
	}

	msgCh, errCh := newService(transport).Stream(context.Background())

	lineCh <- `{"type":"user","message":{"content":"one"}}`
	first := <-msgCh
	assert.Equal(t, "one", first.(*messages.UserMessage).Content)

	lineCh <- `{"type":"user","message":{"content":"two"}}`
	second := <-msgCh
	assert.Equal(t, "two", second.(*messages.UserMessage).Content)

	close(lineCh)
	close(transportErrCh)

	msgs, errs := collect(msgCh, errCh)
	assert.Empty(t, msgs)
	assert.Empty(t, errs)
	assert.Equal(t, 1, closeCount)
}

func TestStreamAbortsOnDecodeFailure(t *testing.T) {
	closeCount := 0
	transport := &testutil.MockTransport{
		ReadLinesFunc: func(context.Context) (<-chan string, <-chan error) {
			return testutil.LineStream(
				`{"type":"user","message":{"content":"ok"}}`,
				"not json at all",
			)
		},
		CloseFunc: func() error {
			closeCount++

			return nil
		},
	}

	msgCh, errCh := newService(transport).Stream(context.Background())
	msgs, errs := collect(msgCh, errCh)

	require.Len(t, msgs, 1)
	require.Len(t, errs, 1)
	assert.True(t, ccerrs.IsDecodeError(errs[0]))
	assert.Equal(t, 1, closeCount)
}

func TestStreamContextCancel(t *testing.T) {
	lineCh := make(chan string)
	transportErrCh := make(chan error)
	closeCount := 0
	transport := &testutil.MockTransport{
		ReadLinesFunc: func(context.Context) (<-chan string, <-chan error) {
			return lineCh, transportErrCh
		},
		CloseFunc: func() error {
			closeCount++

			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	msgCh, errCh := newService(transport).Stream(ctx)

	cancel()

	msgs, errs := collect(msgCh, errCh)
	assert.Empty(t, msgs)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], context.Canceled)
	assert.Equal(t, 1, closeCount)
}

func TestRunStopsOnParseError(t *testing.T) {
	transport := &testutil.MockTransport{
		ReadLinesFunc: func(context.Context) (<-chan string, <-chan error) {
			return testutil.LineStream(`{"type":"result","subtype":"success"}`)
		},
	}

	msgs, err := newService(transport).Run(context.Background())
	require.Error(t, err)
	assert.True(t, ccerrs.IsParseError(err))
	assert.Nil(t, msgs)
}
