package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// StubCLI writes an executable script standing in for the claude binary
// and returns its path. Callers point Options.CLIPath at it.
func StubCLI(t *testing.T, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("stub CLI scripts require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "claude")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub cli: %v", err)
	}

	return path
}
