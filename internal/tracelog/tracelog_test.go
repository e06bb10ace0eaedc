package tracelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog_WritesAndAppends(t *testing.T) {
	t.Setenv("GESTALTDIFF_LOG_FILE", filepath.Join(t.TempDir(), "gestaltdiff.log"))

	Log("compared %d lines", 40)
	Log("ratio %.3f", 0.75)

	b, err := os.ReadFile(os.Getenv("GESTALTDIFF_LOG_FILE"))
	require.NoError(t, err)
	require.Equal(t, "compared 40 lines\nratio 0.750\n", string(b))
}

func TestLog_NoOpWhenUnset(t *testing.T) {
	t.Setenv("GESTALTDIFF_LOG_FILE", "")
	Log("should not %s", "panic")
}

func TestLog_NoOpWhenPathIsDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GESTALTDIFF_LOG_FILE", dir)

	Log("ignored %d", 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
