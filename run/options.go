package run

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/encoding"
)

// Defaults applied when the corresponding Options field is left zero.
const (
	// DefaultMaxOutputSize is Run's retained-output cap in characters.
	DefaultMaxOutputSize = 10_000_000
	// DefaultMaxOutputSizeSilenced is the cap used by RunSilenced,
	// RunIndented, and RunPrefixed, whose captured output is usually the
	// whole point of the call.
	DefaultMaxOutputSizeSilenced = 10_000_000_000
	// DefaultRetryInitialSleep is the delay before the first retry.
	DefaultRetryInitialSleep = 10 * time.Second
	// DefaultRetryBackoff is the factor applied to the delay before each
	// subsequent retry.
	DefaultRetryBackoff = 2.0
)

// ErrInvalidOptions reports a rejected configuration. It is returned,
// wrapped with detail, before any process is spawned and is never retried.
var ErrInvalidOptions = errors.New("invalid run options")

// SuccessSet designates which exit codes count as success. The zero value
// accepts exit code 0 only. Note that 0 is not implicitly included: a set
// built from ExitCodes(3) treats 0 as a failure.
type SuccessSet struct {
	codes []int
	any   bool
	set   bool
}

// ExitCodes builds a SuccessSet accepting exactly the given codes.
func ExitCodes(codes ...int) SuccessSet {
	return SuccessSet{codes: append([]int(nil), codes...), set: true}
}

// AnyExitCode builds a SuccessSet that treats every exit code as success.
func AnyExitCode() SuccessSet {
	return SuccessSet{any: true, set: true}
}

// Contains reports whether code is classified as success.
func (s SuccessSet) Contains(code int) bool {
	if s.any {
		return true
	}
	if !s.set {
		return code == 0
	}
	for _, c := range s.codes {
		if c == code {
			return true
		}
	}
	return false
}

// Options configures Run and its wrappers. The zero value is ready to use;
// every field is optional.
type Options struct {
	// PrintMessage receives informational lines: the description and
	// retry progress. nil means standard output; use Silence to suppress.
	PrintMessage Printer

	// PrintOutput receives each line of the command's combined output as
	// it is produced. nil means standard output; use Silence to suppress.
	PrintOutput Printer

	// Description is printed through PrintMessage before each attempt.
	// Empty means "Running command: <command>".
	Description string

	// Success designates the exit codes treated as success.
	Success SuccessSet

	// DisableFlush skips the best-effort flush of the calling process's
	// own stdout and stderr before each spawn.
	DisableFlush bool

	// MaxOutputSize caps the retained output, in characters; when the
	// command produces more, only the most recent characters are kept.
	// 0 means the entry point's default cap.
	MaxOutputSize int

	// Retries is the number of times a failed command is re-run. The
	// total number of attempts is Retries+1.
	Retries int

	// RetryInitialSleep is the delay before the first retry. 0 means
	// DefaultRetryInitialSleep; a negative value means no delay.
	RetryInitialSleep time.Duration

	// RetryBackoff multiplies the delay before each subsequent retry.
	// 0 means DefaultRetryBackoff.
	RetryBackoff float64

	// EnvOverrides is merged over the current environment, overrides
	// winning. On Windows the keys are upper-cased first.
	EnvOverrides map[string]string

	// Dir is the working directory for the command. Empty means inherit.
	Dir string

	// Encoding names the text encoding of the command's output, resolved
	// through the WHATWG encoding index. Empty means UTF-8.
	Encoding string

	// EncodingErrors selects how undecodable output is handled:
	// DecodeReplace (default), DecodeIgnore, or DecodeStrict. Neither
	// ignore nor strict can distinguish a replacement character the child
	// printed literally from one produced by decoding: ignore strips
	// both, strict aborts the call on both.
	EncodingErrors string
}

// Validate checks field invariants without applying defaults. Run and its
// wrappers call it internally; it is exported for callers that assemble
// Options from untrusted input and want early errors.
func (o *Options) Validate() error {
	if o.MaxOutputSize < 0 {
		return fmt.Errorf("%w: MaxOutputSize must be >= 0, got %d", ErrInvalidOptions, o.MaxOutputSize)
	}
	if o.Retries < 0 {
		return fmt.Errorf("%w: Retries must be >= 0, got %d", ErrInvalidOptions, o.Retries)
	}
	if o.RetryBackoff < 0 {
		return fmt.Errorf("%w: RetryBackoff must be >= 0, got %g", ErrInvalidOptions, o.RetryBackoff)
	}
	switch o.EncodingErrors {
	case "", DecodeReplace, DecodeIgnore, DecodeStrict:
	default:
		return fmt.Errorf("%w: EncodingErrors must be %q, %q, or %q, got %q",
			ErrInvalidOptions, DecodeReplace, DecodeIgnore, DecodeStrict, o.EncodingErrors)
	}
	if _, err := lookupEncoding(o.Encoding); err != nil {
		return err
	}
	return nil
}

// runParams is one attempt's effective configuration: Options with all
// defaults applied and the command attached.
type runParams struct {
	cmd          []string
	printMessage Printer
	printOutput  Printer
	description  string
	success      SuccessSet
	flush        bool
	maxOutput    int
	retries      int
	initialSleep time.Duration
	backoff      float64
	env          []string
	dir          string
	encoding     encoding.Encoding
	decodePolicy string
}

// normalize validates o and resolves defaults. descPrefix and
// defaultMaxOutput vary between Run and its wrappers.
func (o *Options) normalize(cmd []string, descPrefix string, defaultMaxOutput int) (*runParams, error) {
	if len(cmd) == 0 {
		return nil, fmt.Errorf("%w: command must not be empty", ErrInvalidOptions)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	p := &runParams{
		cmd:          append([]string(nil), cmd...),
		printMessage: o.PrintMessage,
		printOutput:  o.PrintOutput,
		description:  o.Description,
		success:      o.Success,
		flush:        !o.DisableFlush,
		maxOutput:    o.MaxOutputSize,
		retries:      o.Retries,
		initialSleep: o.RetryInitialSleep,
		backoff:      o.RetryBackoff,
		env:          mergeEnv(o.EnvOverrides),
		dir:          o.Dir,
		decodePolicy: o.EncodingErrors,
	}

	if p.printMessage == nil {
		p.printMessage = Stdout()
	}
	if p.printOutput == nil {
		p.printOutput = Stdout()
	}
	if p.description == "" {
		p.description = descPrefix + JoinCommand(cmd)
	}
	if p.maxOutput == 0 {
		p.maxOutput = defaultMaxOutput
	}
	if p.initialSleep == 0 {
		p.initialSleep = DefaultRetryInitialSleep
	} else if p.initialSleep < 0 {
		p.initialSleep = 0
	}
	if p.backoff == 0 {
		p.backoff = DefaultRetryBackoff
	}
	if p.decodePolicy == "" {
		p.decodePolicy = DecodeReplace
	}
	p.encoding, _ = lookupEncoding(o.Encoding) // already validated

	return p, nil
}

// mergeEnv layers overrides on top of the current environment. A nil
// result makes exec.Cmd inherit the environment untouched.
func mergeEnv(overrides map[string]string) []string {
	if len(overrides) == 0 {
		return nil
	}

	merged := make(map[string]string)
	for _, kv := range os.Environ() {
		if idx := strings.IndexByte(kv, '='); idx >= 0 {
			merged[kv[:idx]] = kv[idx+1:]
		}
	}
	for k, v := range overrides {
		merged[normalizeEnvKey(k)] = v
	}

	env := make([]string, 0, len(merged))
	for k, v := range merged {
		env = append(env, k+"="+v)
	}
	return env
}
