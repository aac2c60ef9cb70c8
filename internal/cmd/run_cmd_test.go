package cmd

import (
	"context"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/fancyrun/run"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test uses Unix shell commands")
	}
}

func commandFlagCmd(t *testing.T, line string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{}
	c.Flags().StringP("command", "c", "", "")
	if line != "" {
		require.NoError(t, c.Flags().Set("command", line))
	}
	return c
}

func TestResolveCommand_PositionalArgs(t *testing.T) {
	cmd, err := resolveCommand(commandFlagCmd(t, ""), []string{"echo", "hello world"})
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "hello world"}, cmd)
}

func TestResolveCommand_CommandString(t *testing.T) {
	cmd, err := resolveCommand(commandFlagCmd(t, `echo "hello world" done`), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "hello world", "done"}, cmd)
}

func TestResolveCommand_BothRejected(t *testing.T) {
	_, err := resolveCommand(commandFlagCmd(t, "echo hi"), []string{"ls"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}

func TestResolveCommand_NeitherRejected(t *testing.T) {
	_, err := resolveCommand(commandFlagCmd(t, ""), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command")
}

func TestResolveCommand_UnbalancedQuote(t *testing.T) {
	_, err := resolveCommand(commandFlagCmd(t, `echo "unterminated`), nil)
	require.Error(t, err)
}

func quietRun(t *testing.T, command []string, opts run.Options) error {
	t.Helper()
	opts.PrintMessage = run.Silence
	opts.PrintOutput = run.Silence
	_, err := run.Run(context.Background(), command, opts)
	require.Error(t, err)
	return err
}

func TestMapRunError_ChildExitCodePassthrough(t *testing.T) {
	skipOnWindows(t)

	err := quietRun(t, []string{"sh", "-c", "exit 3"}, run.Options{})

	var exitErr *ExitError
	require.ErrorAs(t, mapRunError(err), &exitErr)
	assert.Equal(t, 3, exitErr.Code)
}

func TestMapRunError_SignalCodeMapsToFailure(t *testing.T) {
	skipOnWindows(t)

	// A negated signal number is outside 1-255 and maps to the generic
	// failure code.
	err := quietRun(t, []string{"sh", "-c", "kill -9 $$"}, run.Options{})

	var exitErr *ExitError
	require.ErrorAs(t, mapRunError(err), &exitErr)
	assert.Equal(t, ExitFailure, exitErr.Code)
}

func TestMapRunError_LaunchFailure(t *testing.T) {
	err := quietRun(t, []string{"fancyrun-no-such-binary-xyzzy"}, run.Options{})

	var exitErr *ExitError
	require.ErrorAs(t, mapRunError(err), &exitErr)
	assert.Equal(t, ExitLaunchFailed, exitErr.Code)
}

func TestMapRunError_InvalidOptions(t *testing.T) {
	err := quietRun(t, nil, run.Options{})

	var exitErr *ExitError
	require.ErrorAs(t, mapRunError(err), &exitErr)
	assert.Equal(t, ExitUsageError, exitErr.Code)
}

func TestMapRunError_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := run.Run(ctx, []string{"true"}, run.Options{PrintMessage: run.Silence, PrintOutput: run.Silence})
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, mapRunError(err), &exitErr)
	assert.Equal(t, ExitFailure, exitErr.Code)
	assert.Equal(t, "interrupted", exitErr.Message)
}
