package cli

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// capabilities describes what the attached terminal supports.
type capabilities struct {
	IsTTY         bool
	SupportsColor bool
}

// detectCapabilities inspects stdout and the environment. NO_COLOR
// disables color even on a capable terminal.
func detectCapabilities() capabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	noColor := os.Getenv("NO_COLOR") != ""

	return capabilities{
		IsTTY:         isTTY,
		SupportsColor: isTTY && !noColor,
	}
}

// applyColorMode switches colored output off globally when the terminal
// cannot show it or the user asked for plain output.
func applyColorMode(caps capabilities, noColorFlag bool) {
	if noColorFlag || !caps.SupportsColor {
		color.NoColor = true
	}
}

// startSpinner shows a progress spinner on stderr while waiting for the
// CLI. Stderr keeps the animation out of redirected stdout. Outside a
// TTY it is a no-op; the returned stop function is safe to call more
// than once either way.
func startSpinner(caps capabilities, message string) func() {
	if !caps.IsTTY {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " " + message
	s.Start()

	return s.Stop
}
