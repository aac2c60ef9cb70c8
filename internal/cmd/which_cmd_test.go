package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout swaps os.Stdout for a pipe while fn runs and returns what
// was written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	fn()
	require.NoError(t, w.Close())
	os.Stdout = old
	return <-done
}

func TestExecuteWhich_PrintsResolvedPath(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	tool := filepath.Join(dir, "mytool")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	require.NoError(t, whichCmd.Flags().Set("path", dir))
	defer func() { _ = whichCmd.Flags().Set("path", "") }()

	out := captureStdout(t, func() {
		require.NoError(t, executeWhich(whichCmd, []string{"mytool"}))
	})

	assert.Contains(t, out, tool)
}

func TestExecuteWhich_NotFound(t *testing.T) {
	require.NoError(t, whichCmd.Flags().Set("path", t.TempDir()))
	defer func() { _ = whichCmd.Flags().Set("path", "") }()

	err := executeWhich(whichCmd, []string{"fancyrun-no-such-tool"})
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitFailure, exitErr.Code)
}
