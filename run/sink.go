package run

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUndecodableOutput is reported under the DecodeStrict policy when the
// command's output cannot be decoded with the configured encoding. Like a
// printer error, it aborts the whole call and is never retried.
var ErrUndecodableOutput = errors.New("command output is not valid in the configured encoding")

const replacementChar = "�"

// lineSink forwards each output line to a printer as it arrives while
// retaining a character-capped tail of the newline-joined output. A sink
// belongs to a single attempt and is discarded when the attempt ends.
type lineSink struct {
	print  Printer
	tail   *tailBuffer
	policy string
	lines  int
}

func newLineSink(print Printer, maxOutput int, policy string) *lineSink {
	// One rune of headroom keeps the trailing newline around until
	// Output trims it, so the cap applies to the joined text exactly.
	return &lineSink{print: print, tail: newTailBuffer(maxOutput + 1), policy: policy}
}

// consume reads r line by line until EOF, printing and retaining each line
// as soon as it is complete. It never buffers more than one line, so the
// retained-output cap is enforced incrementally. Printer errors are
// returned verbatim.
func (s *lineSink) consume(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if lineErr := s.line(line); lineErr != nil {
				return lineErr
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func (s *lineSink) line(raw string) error {
	s.lines++
	line := strings.TrimSuffix(raw, "\n")
	line = strings.TrimSuffix(line, "\r")
	line = strings.ToValidUTF8(line, replacementChar)

	switch s.policy {
	case DecodeStrict:
		if strings.Contains(line, replacementChar) {
			return fmt.Errorf("%w (line %d)", ErrUndecodableOutput, s.lines)
		}
	case DecodeIgnore:
		line = strings.ReplaceAll(line, replacementChar, "")
	}

	if err := s.print(line); err != nil {
		return err
	}
	s.tail.WriteString(line)
	s.tail.WriteString("\n")
	return nil
}

// Output returns the retained tail without its trailing newline.
func (s *lineSink) Output() string {
	return strings.TrimSuffix(s.tail.String(), "\n")
}
