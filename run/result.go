package run

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runger/fancyrun/exitstatus"
)

// Result is the outcome of a successfully classified command.
type Result struct {
	// ExitCode is the exit code of the finished process. On POSIX a
	// process ended by a signal reports the negated signal number; on
	// Windows the raw code carries signed 32-bit semantics, so NTSTATUS
	// values come out negative.
	ExitCode int

	// Output is the command's combined stdout and stderr, newline-joined
	// and tail-truncated to the configured cap.
	Output string
}

// State-mismatch sentinels returned by RunError accessors.
var (
	// ErrNotCompleted is returned by ExitCode and Output on a failure
	// whose process never started.
	ErrNotCompleted = errors.New("process was not started: no exit code or output recorded")
	// ErrCompleted is returned by LaunchError on a failure whose process
	// ran to completion.
	ErrCompleted = errors.New("process completed: no launch error recorded")
)

// RunError describes a failed run. It has exactly two kinds: a completed
// process whose exit code was not in the success set, and a process that
// could not be launched at all. Accessors for the wrong kind return the
// state-mismatch sentinels rather than zero values, since a zero exit code
// would read as success.
type RunError struct {
	cmd      []string
	result   *Result // set when the process completed
	cause    error   // set when the launch failed
	platform exitstatus.Platform
}

func newProcessError(cmd []string, res *Result) *RunError {
	return &RunError{cmd: append([]string(nil), cmd...), result: res, platform: exitstatus.Native()}
}

func newLaunchError(cmd []string, cause error) *RunError {
	return &RunError{cmd: append([]string(nil), cmd...), cause: cause, platform: exitstatus.Native()}
}

// Cmd returns a copy of the command that failed.
func (e *RunError) Cmd() []string {
	return append([]string(nil), e.cmd...)
}

// Completed reports whether the process ran to completion. When false, the
// failure came from the launch itself and LaunchError holds the cause.
func (e *RunError) Completed() bool { return e.result != nil }

// ExitCode returns the completed process's exit code, or ErrNotCompleted.
func (e *RunError) ExitCode() (int, error) {
	if e.result == nil {
		return 0, ErrNotCompleted
	}
	return e.result.ExitCode, nil
}

// Output returns the completed process's captured output, or
// ErrNotCompleted.
func (e *RunError) Output() (string, error) {
	if e.result == nil {
		return "", ErrNotCompleted
	}
	return e.result.Output, nil
}

// LaunchError returns the underlying OS error for a failed launch, or
// ErrCompleted when the process actually ran.
func (e *RunError) LaunchError() (error, error) {
	if e.cause == nil {
		return nil, ErrCompleted
	}
	return e.cause, nil
}

// Unwrap exposes the launch cause to errors.Is and errors.As chains; it is
// nil for completed-process failures.
func (e *RunError) Unwrap() error { return e.cause }

// Error renders the one-line diagnostic. It is a pure function of the
// failure's fields and the platform resolved when the failure was built.
func (e *RunError) Error() string {
	if e.result != nil {
		qualifier := ""
		if q := exitstatus.Describe(e.result.ExitCode, e.platform); q != "" {
			qualifier = " (" + q + ")"
		}
		return fmt.Sprintf("Command failed with exit code %d%s: %s",
			e.result.ExitCode, qualifier, JoinCommand(e.cmd))
	}
	return fmt.Sprintf("Exception %s with message \"%s\" was raised while trying to run command: %s",
		errorKind(e.cause), e.cause.Error(), JoinCommand(e.cmd))
}

// errorKind names an error's dynamic type for display, without the
// pointer marker.
func errorKind(err error) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}
