package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/claudecode/internal/cliconfig"
	"github.com/conneroisu/claudecode/pkg/claudecode"
	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
	"github.com/conneroisu/claudecode/pkg/claudecode/options"
)

var runCmd = &cobra.Command{
	Use:   "run [prompt...]",
	Short: "Run a one-shot query",
	Long: `Run sends a prompt to the Claude Code CLI and renders the resulting
conversation. By default all messages are collected before rendering;
--stream renders each message as it arrives.`,
	Example: `  ccq run "what does this error mean: EADDRINUSE"
  ccq run --stream --model claude-sonnet-4-5 "write a haiku about channels"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		noColor, _ := cmd.Flags().GetBool("no-color")
		stream, _ := cmd.Flags().GetBool("stream")
		model, _ := cmd.Flags().GetString("model")
		maxTurns, _ := cmd.Flags().GetInt("max-turns")

		caps := detectCapabilities()
		applyColorMode(caps, noColor)

		cfg, err := cliconfig.Load(configPath)
		if err != nil {
			return err
		}

		opts, err := cfg.QueryOptions()
		if err != nil {
			return err
		}

		// Flags beat every config layer.
		if model != "" {
			opts.Model = model
		}
		if cmd.Flags().Changed("max-turns") {
			opts.MaxTurns = maxTurns
		}
		if cmd.Flags().Changed("stream") {
			cfg.Stream = stream
		}

		ctx := cmd.Context()
		if cfg.TimeoutSeconds > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
			defer cancel()
		}

		prompt := strings.Join(args, " ")
		if cfg.Stream {
			return runStreaming(ctx, caps, prompt, opts)
		}

		return runBatch(ctx, caps, prompt, opts)
	},
}

func init() {
	runCmd.Flags().Bool("stream", false, "Render messages as they arrive")
	runCmd.Flags().String("model", "", "Model override")
	runCmd.Flags().Int("max-turns", 0, "Limit conversation turns")
}

func runBatch(ctx context.Context, caps capabilities, prompt string, opts *options.Options) error {
	stop := startSpinner(caps, "waiting for Claude Code")
	msgs, err := claudecode.Query(ctx, prompt, opts)
	stop()
	if err != nil {
		return err
	}

	return renderAll(os.Stdout, msgs)
}

func runStreaming(ctx context.Context, caps capabilities, prompt string, opts *options.Options) error {
	stop := startSpinner(caps, "starting Claude Code")
	defer stop()

	msgCh, errCh := claudecode.QueryStream(ctx, prompt, opts)

	first := true
	failed := false

	for msgCh != nil || errCh != nil {
		select {
		case msg, ok := <-msgCh:
			if !ok {
				msgCh = nil

				continue
			}
			if first {
				stop()
				first = false
			}
			renderMessage(os.Stdout, msg)
			if result, ok := msg.(*messages.ResultMessage); ok && result.IsError {
				failed = true
			}

		case err, ok := <-errCh:
			if !ok {
				errCh = nil

				continue
			}
			if err != nil {
				stop()

				return err
			}
		}
	}

	if failed {
		return errResultFailed
	}

	return nil
}
