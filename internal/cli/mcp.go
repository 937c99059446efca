package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/claudecode/internal/cliconfig"
	"github.com/conneroisu/claudecode/pkg/claudecode/adapters/mcpprobe"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Inspect configured MCP servers",
}

var mcpCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Connect to each configured MCP server and list its tools",
	Long: `Check dials every MCP server from the configuration, performs the
handshake and lists the advertised tools. A server the CLI could not
start or reach during a query shows up here as a connection failure
instead of a mid-conversation tool error.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		noColor, _ := cmd.Flags().GetBool("no-color")
		timeout, _ := cmd.Flags().GetDuration("timeout")

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

		if len(opts.McpServers) == 0 {
			fmt.Fprintln(os.Stdout, "no MCP servers configured")

			return nil
		}

		names := make([]string, 0, len(opts.McpServers))
		for name := range opts.McpServers {
			names = append(names, name)
		}
		sort.Strings(names)

		failures := 0
		for _, name := range names {
			probeCtx, cancel := context.WithTimeout(cmd.Context(), timeout)
			report, err := mcpprobe.Probe(probeCtx, name, opts.McpServers[name])
			cancel()

			if err != nil {
				failures++
				failColor.Fprintf(os.Stdout, "✗ %s", name)
				fmt.Fprintf(os.Stdout, ": %v\n", err)

				continue
			}

			okColor.Fprintf(os.Stdout, "✓ %s", name)
			fmt.Fprintf(os.Stdout, " (%s, %d tools)\n", report.Transport, len(report.Tools))
			for _, tool := range report.Tools {
				metaColor.Fprintf(os.Stdout, "    %-20s %s\n", tool.Name, tool.Description)
			}
		}

		if failures > 0 {
			return fmt.Errorf("%d of %d MCP servers unreachable", failures, len(names))
		}

		return nil
	},
}

func init() {
	mcpCheckCmd.Flags().Duration("timeout", 10*time.Second, "Per-server connection timeout")
	mcpCmd.AddCommand(mcpCheckCmd)
}
