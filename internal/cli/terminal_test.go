package cli

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// Test processes run with stdout piped, never a terminal.
func TestDetectCapabilitiesOutsideTTY(t *testing.T) {
	caps := detectCapabilities()
	assert.False(t, caps.IsTTY)
	assert.False(t, caps.SupportsColor)
}

func TestApplyColorMode(t *testing.T) {
	old := color.NoColor
	t.Cleanup(func() { color.NoColor = old })

	color.NoColor = false
	applyColorMode(capabilities{IsTTY: true, SupportsColor: true}, false)
	assert.False(t, color.NoColor, "capable terminal keeps color on")

	applyColorMode(capabilities{IsTTY: true, SupportsColor: true}, true)
	assert.True(t, color.NoColor, "--no-color wins over capability")

	color.NoColor = false
	applyColorMode(capabilities{IsTTY: false, SupportsColor: false}, false)
	assert.True(t, color.NoColor, "non-TTY output is plain")
}

func TestStartSpinnerOutsideTTY(t *testing.T) {
	stop := startSpinner(capabilities{IsTTY: false}, "waiting")
	stop()
	stop()
}
