// Command ccq runs one-shot Claude Code queries from the terminal.
package main

import (
	"os"

	"github.com/conneroisu/claudecode/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
