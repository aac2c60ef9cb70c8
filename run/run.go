// Package run executes external commands with streamed, size-capped output
// capture, configurable exit-code classification, and retry with
// exponential backoff.
//
// Run is the core entry point; RunSilenced, RunIndented, and RunPrefixed
// are specializations that control how the command's output is printed.
// Each call runs exactly one logical command, synchronously, and either
// returns a Result or a *RunError describing the final attempt.
package run

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Run executes cmd, streaming its combined stdout and stderr line by line
// through opts.PrintOutput while retaining a tail-truncated copy of the
// whole output.
//
// On success the Result carries the exit code and the captured output.
// Failed attempts — the process exited outside opts.Success, or could not
// be launched — are retried opts.Retries times with exponential backoff;
// the returned error is then the *RunError of the final attempt. Invalid
// options are reported (wrapping ErrInvalidOptions) before anything is
// spawned, and an error from a caller-supplied Printer aborts the call
// immediately, pending retries included, and is returned as-is.
//
// ctx is checked at attempt boundaries and interrupts inter-retry sleeps;
// a cancellation observed mid-attempt kills the process.
func Run(ctx context.Context, cmd []string, opts Options) (*Result, error) {
	p, err := opts.normalize(cmd, "Running command: ", DefaultMaxOutputSize)
	if err != nil {
		return nil, err
	}
	return retryLoop(ctx, p)
}

// RunSilenced behaves like Run with output printing forced off, for
// commands whose output is only inspected afterwards. Supplying
// opts.PrintOutput is rejected. The default retained-output cap is much
// larger than Run's, and the default description notes the silencing.
func RunSilenced(ctx context.Context, cmd []string, opts Options) (*Result, error) {
	if opts.PrintOutput != nil {
		return nil, fmt.Errorf("%w: PrintOutput may not be set with RunSilenced", ErrInvalidOptions)
	}
	opts.PrintOutput = Silence
	p, err := opts.normalize(cmd, "Running command (output silenced): ", DefaultMaxOutputSizeSilenced)
	if err != nil {
		return nil, err
	}
	return retryLoop(ctx, p)
}

// RunIndented behaves like Run but prints each output line indented by the
// given number of spaces. Supplying opts.PrintOutput is rejected.
func RunIndented(ctx context.Context, cmd []string, indent int, opts Options) (*Result, error) {
	return RunPrefixed(ctx, cmd, strings.Repeat(" ", indent), opts)
}

// RunPrefixed behaves like Run but prints each output line with a literal
// prefix. Supplying opts.PrintOutput is rejected.
func RunPrefixed(ctx context.Context, cmd []string, prefix string, opts Options) (*Result, error) {
	if opts.PrintOutput != nil {
		return nil, fmt.Errorf("%w: PrintOutput may not be set with RunIndented or RunPrefixed", ErrInvalidOptions)
	}
	opts.PrintOutput = Prefixed(Stdout(), prefix)
	p, err := opts.normalize(cmd, "Running command: ", DefaultMaxOutputSizeSilenced)
	if err != nil {
		return nil, err
	}
	return retryLoop(ctx, p)
}

// retryLoop drives attempts until one succeeds or the budget is spent.
// Only *RunError failures consume attempts; anything else (printer errors,
// decode errors, cancellation) propagates at once. The failure surfaced to
// the caller is always the final attempt's — earlier evidence is dropped.
func retryLoop(ctx context.Context, p *runParams) (*Result, error) {
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := runAttempt(ctx, p)
		if err == nil {
			return res, nil
		}
		var runErr *RunError
		if !errors.As(err, &runErr) || attempt == p.retries {
			return nil, err
		}
		if ctx.Err() != nil {
			// Cancelled during the attempt: surface its real failure
			// rather than starting a countdown nobody will wait for.
			return nil, err
		}

		if perr := p.printMessage(runErr.Error()); perr != nil {
			return nil, perr
		}
		delay := retryDelay(p.initialSleep, p.backoff, attempt)
		left := p.retries - attempt
		plural := "s"
		if left == 1 {
			plural = ""
		}
		msg := fmt.Sprintf("Retrying in %s (%d attempt%s left)...", delay, left, plural)
		if perr := p.printMessage(msg); perr != nil {
			return nil, perr
		}
		if serr := sleep(ctx, delay); serr != nil {
			return nil, serr
		}
	}
}

// retryDelay computes the delay before the (attempt+1)-th retry directly
// from the attempt index, so repeated multiplication cannot drift.
func retryDelay(initial time.Duration, backoff float64, attempt int) time.Duration {
	if initial <= 0 {
		return 0
	}
	return time.Duration(float64(initial) * math.Pow(backoff, float64(attempt)))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runAttempt performs one spawn-stream-classify cycle. It is retry-agnostic
// and stateless across calls; the retry policy lives entirely in retryLoop.
func runAttempt(ctx context.Context, p *runParams) (*Result, error) {
	// The description goes out before the flush so interleaved external
	// logs keep their ordering relative to it.
	if err := p.printMessage(p.description); err != nil {
		return nil, err
	}
	if p.flush {
		// Best-effort ordering aid, not a correctness requirement.
		_ = os.Stdout.Sync()
		_ = os.Stderr.Sync()
	}

	cmd := exec.CommandContext(ctx, p.cmd[0], p.cmd[1:]...)
	cmd.Dir = p.dir
	cmd.Env = p.env // nil inherits the environment

	// One pipe shared by stdout and stderr merges the two streams in
	// arrival order. Stdin stays at the null device.
	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, newLaunchError(p.cmd, err)
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		return nil, newLaunchError(p.cmd, err)
	}
	// The child holds its own descriptors for the write end; closing ours
	// lets the read side see EOF when the child exits.
	pw.Close()

	sink := newLineSink(p.printOutput, p.maxOutput, p.decodePolicy)
	consumeErr := sink.consume(decodeStream(pr, p.encoding))
	pr.Close()

	if consumeErr != nil {
		// A printer or decode failure is a caller-side fault, not a
		// command failure. Reap the child so it does not outlive the
		// aborted call, then propagate unmodified.
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return nil, consumeErr
	}

	// Output was fully drained above, so waiting cannot deadlock on a
	// full pipe.
	if waitErr := cmd.Wait(); waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			// No trustworthy exit code to classify.
			return nil, newLaunchError(p.cmd, waitErr)
		}
	}

	res := &Result{
		ExitCode: exitCodeFromState(cmd.ProcessState),
		Output:   sink.Output(),
	}
	if p.success.Contains(res.ExitCode) {
		return res, nil
	}
	return nil, newProcessError(p.cmd, res)
}
