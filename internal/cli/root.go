// Package cli implements the ccq command tree: run for queries, mcp
// check for server pre-flight, version.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ccq",
	Short: "Query Claude Code from the command line",
	Long: `ccq runs one-shot queries against the Claude Code CLI and renders the
conversation: assistant text, tool activity and the final cost and
duration summary.

Configuration layers, lowest to highest precedence: built-in defaults,
~/.ccq/config.json, a local config file (--config), CCQ_* environment
variables.`,
	Example: `  # Ask a question
  ccq run "explain context.Context in two sentences"

  # Stream messages as they arrive, with a turn limit
  ccq run --stream --max-turns 3 "summarize this repository"

  # Verify configured MCP servers are reachable
  ccq mcp check`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "ccq.json", "Path to local config file")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
