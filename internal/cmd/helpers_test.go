package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestCLI returns a CLI wired to a fresh database and captures stdout
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()

	container, err := NewContainer(filepath.Join(t.TempDir(), "breakwise.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	var out bytes.Buffer
	swapStdio(t, strings.NewReader(""), &out)
	return &CLI{Container: container}, &out
}

func swapStdio(t *testing.T, in io.Reader, out io.Writer) {
	t.Helper()
	origIn, origOut := stdin, stdout
	stdin, stdout = in, out
	t.Cleanup(func() { stdin, stdout = origIn, origOut })
}

// unsetEnv removes keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
