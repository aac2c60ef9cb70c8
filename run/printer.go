package run

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Printer consumes one line of text without its trailing newline. The core
// calls it once per informational message and once per output line. A
// non-nil error aborts the in-flight call immediately, pending retries
// included, and is returned to the caller as-is.
type Printer func(line string) error

// Silence discards its input. Pass it as PrintMessage or PrintOutput to
// suppress the corresponding stream.
func Silence(string) error { return nil }

// Stdout returns a Printer that writes each line to standard output. It is
// the default for both PrintMessage and PrintOutput.
func Stdout() Printer {
	return To(os.Stdout)
}

// To returns a Printer that writes each line, newline-terminated, to w.
func To(w io.Writer) Printer {
	return func(line string) error {
		_, err := fmt.Fprintln(w, line)
		return err
	}
}

// Indented wraps p so every line is prefixed with n spaces.
func Indented(p Printer, n int) Printer {
	return Prefixed(p, strings.Repeat(" ", n))
}

// Prefixed wraps p so every line is prefixed with the given string.
func Prefixed(p Printer, prefix string) Printer {
	return func(line string) error {
		return p(prefix + line)
	}
}
