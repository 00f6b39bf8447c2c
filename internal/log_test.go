package internal

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStderr redirects os.Stderr for the duration of fn and returns
// everything written to it.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestProgress_WritesToStderr(t *testing.T) {
	out := captureStderr(t, func() {
		Progress("🔎 Loading %s", "export.csv")
	})
	assert.Equal(t, "🔎 Loading export.csv\n", out)
}

func TestWarning_WritesToStderr(t *testing.T) {
	out := captureStderr(t, func() {
		Warning("No event data available in this export.")
	})
	assert.Equal(t, "⚠️  No event data available in this export.\n", out)
}
