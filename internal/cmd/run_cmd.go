package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/runger/fancyrun/internal/config"
	"github.com/runger/fancyrun/run"
)

// CLI exit codes. A failed child's own exit code is passed through when it
// fits the conventional 1-255 range; everything else maps here.
const (
	ExitFailure      = 1   // generic failure, or a child code outside 1-255
	ExitUsageError   = 2   // bad flags, bad config, bad options
	ExitLaunchFailed = 127 // the command could not be started
)

// ExitError is an error that carries a specific exit code.
// cobra.RunE returns this so the caller can set the process exit code.
type ExitError struct {
	Message string
	Code    int
}

func (e *ExitError) Error() string {
	return e.Message
}

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <command> [args...]",
	Short: "Execute a command with output capture and retry",
	Long: `Execute a command, streaming its combined stdout and stderr line by
line while keeping a size-capped copy. A failure is retried with
exponential backoff; the final attempt's failure decides the exit code.

The command is given after --, or as a single shell-style string via
--command.`,
	RunE:         executeRun,
	SilenceUsage: true,
}

func init() {
	runCmd.Flags().StringP("command", "c", "", "Command as a single shell-style string (alternative to positional args)")
	runCmd.Flags().Int("retries", 0, "Times to re-run the command after a failure")
	runCmd.Flags().Duration("retry-sleep", 0, "Delay before the first retry (default 10s)")
	runCmd.Flags().Float64("retry-backoff", 0, "Delay multiplier between retries (default 2)")
	runCmd.Flags().Int("max-output", 0, "Retained output cap in characters (default per mode)")
	runCmd.Flags().IntSlice("success", nil, "Exit codes treated as success (default 0)")
	runCmd.Flags().Bool("any-exit-code", false, "Treat every exit code as success")
	runCmd.Flags().Bool("silent", false, "Suppress the command's output (still captured)")
	runCmd.Flags().Bool("quiet", false, "Suppress fancyrun's own messages")
	runCmd.Flags().Int("indent", 0, "Indent each output line by this many spaces")
	runCmd.Flags().String("prefix", "", "Prefix each output line with this string")
	runCmd.Flags().String("dir", "", "Working directory for the command")
	runCmd.Flags().StringSlice("env", nil, "Environment override (key=value), repeatable")
	runCmd.Flags().String("description", "", "Message printed before each attempt")
	runCmd.Flags().String("encoding", "", "Text encoding of the command's output (default UTF-8)")
	runCmd.Flags().String("encoding-errors", "", "Undecodable output handling: replace, ignore, strict")
}

func executeRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return &ExitError{Code: ExitUsageError, Message: err.Error()}
	}

	command, err := resolveCommand(cmd, args)
	if err != nil {
		return &ExitError{Code: ExitUsageError, Message: err.Error()}
	}

	opts, err := buildOptions(cmd, cfg)
	if err != nil {
		return &ExitError{Code: ExitUsageError, Message: err.Error()}
	}

	runID := uuid.NewString()[:8]
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	slog.Debug("starting run", "run_id", runID, "command", command, "retries", opts.Retries)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	res, err := dispatchRun(ctx, cmd, command, opts)
	if err != nil {
		return mapRunError(err)
	}

	slog.Debug("run finished", "run_id", runID, "exit_code", res.ExitCode)
	return nil
}

// resolveCommand picks between positional args and the --command string.
func resolveCommand(cmd *cobra.Command, args []string) ([]string, error) {
	line, _ := cmd.Flags().GetString("command")
	if line != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("use either --command or positional arguments, not both")
		}
		parts, err := shlex.Split(line)
		if err != nil {
			return nil, fmt.Errorf("parsing --command: %w", err)
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("--command is empty")
		}
		return parts, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no command given (pass it after -- or via --command)")
	}
	return args, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	return config.LoadFromFile(path)
}

// buildOptions layers flags over the config file defaults. A flag only
// overrides the config when it was explicitly set.
func buildOptions(cmd *cobra.Command, cfg *config.Config) (run.Options, error) {
	opts := run.Options{
		Retries:           cfg.Run.Retries,
		RetryInitialSleep: time.Duration(cfg.Run.RetryInitialSleepMs) * time.Millisecond,
		RetryBackoff:      cfg.Run.RetryBackoff,
		MaxOutputSize:     cfg.Run.MaxOutputSize,
		Encoding:          cfg.Run.Encoding,
		EncodingErrors:    cfg.Run.EncodingErrors,
	}

	flags := cmd.Flags()
	if flags.Changed("retries") {
		opts.Retries, _ = flags.GetInt("retries")
	}
	if flags.Changed("retry-sleep") {
		opts.RetryInitialSleep, _ = flags.GetDuration("retry-sleep")
		if opts.RetryInitialSleep == 0 {
			opts.RetryInitialSleep = -1 // explicit zero means no delay
		}
	}
	if flags.Changed("retry-backoff") {
		opts.RetryBackoff, _ = flags.GetFloat64("retry-backoff")
	}
	if flags.Changed("max-output") {
		opts.MaxOutputSize, _ = flags.GetInt("max-output")
	}
	if flags.Changed("encoding") {
		opts.Encoding, _ = flags.GetString("encoding")
	}
	if flags.Changed("encoding-errors") {
		opts.EncodingErrors, _ = flags.GetString("encoding-errors")
	}

	if any, _ := flags.GetBool("any-exit-code"); any {
		opts.Success = run.AnyExitCode()
	} else if flags.Changed("success") {
		codes, _ := flags.GetIntSlice("success")
		opts.Success = run.ExitCodes(codes...)
	}

	opts.Description, _ = flags.GetString("description")
	opts.Dir, _ = flags.GetString("dir")

	envFlags, _ := flags.GetStringSlice("env")
	if len(envFlags) > 0 {
		overrides := make(map[string]string, len(envFlags))
		for _, kv := range envFlags {
			idx := strings.IndexByte(kv, '=')
			if idx <= 0 {
				return run.Options{}, fmt.Errorf("invalid --env %q (want key=value)", kv)
			}
			overrides[kv[:idx]] = kv[idx+1:]
		}
		opts.EnvOverrides = overrides
	}

	if quiet, _ := flags.GetBool("quiet"); quiet {
		opts.PrintMessage = run.Silence
	} else {
		opts.PrintMessage = messagePrinter()
	}

	if err := opts.Validate(); err != nil {
		return run.Options{}, err
	}
	return opts, nil
}

// messagePrinter dims fancyrun's own messages so they read apart from the
// command's output.
func messagePrinter() run.Printer {
	return func(line string) error {
		_, err := fmt.Fprintln(os.Stdout, styleDim.Render(line))
		return err
	}
}

// dispatchRun picks the entry point matching the output-shaping flags.
func dispatchRun(ctx context.Context, cmd *cobra.Command, command []string, opts run.Options) (*run.Result, error) {
	flags := cmd.Flags()
	silent, _ := flags.GetBool("silent")
	prefix, _ := flags.GetString("prefix")
	indent, _ := flags.GetInt("indent")

	switch {
	case silent:
		return run.RunSilenced(ctx, command, opts)
	case prefix != "":
		return run.RunPrefixed(ctx, command, prefix, opts)
	case indent > 0:
		return run.RunIndented(ctx, command, indent, opts)
	default:
		return run.Run(ctx, command, opts)
	}
}

// mapRunError turns a run failure into the CLI's exit code.
func mapRunError(err error) error {
	var runErr *run.RunError
	if errors.As(err, &runErr) {
		fmt.Fprintln(os.Stderr, styleError.Render(runErr.Error()))
		if !runErr.Completed() {
			return &ExitError{Code: ExitLaunchFailed, Message: runErr.Error()}
		}
		code, _ := runErr.ExitCode()
		if code < 1 || code > 255 {
			code = ExitFailure
		}
		return &ExitError{Code: code, Message: runErr.Error()}
	}
	if errors.Is(err, run.ErrInvalidOptions) {
		return &ExitError{Code: ExitUsageError, Message: err.Error()}
	}
	if errors.Is(err, context.Canceled) {
		return &ExitError{Code: ExitFailure, Message: "interrupted"}
	}
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}
