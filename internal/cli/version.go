package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is stamped at release time via -ldflags "-X".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ccq version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ccq %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
	},
}
