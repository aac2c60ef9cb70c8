package run

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector returns a Printer that records every line it receives.
func collector() (Printer, *[]string) {
	var lines []string
	return func(line string) error {
		lines = append(lines, line)
		return nil
	}, &lines
}

func TestLineSink_Basic(t *testing.T) {
	print, lines := collector()
	sink := newLineSink(print, 1000, DecodeReplace)

	err := sink.consume(strings.NewReader("hello\nworld\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"hello", "world"}, *lines)
	assert.Equal(t, "hello\nworld", sink.Output())
}

func TestLineSink_FinalLineWithoutNewline(t *testing.T) {
	print, lines := collector()
	sink := newLineSink(print, 1000, DecodeReplace)

	err := sink.consume(strings.NewReader("hello\npartial"))
	require.NoError(t, err)

	assert.Equal(t, []string{"hello", "partial"}, *lines)
	assert.Equal(t, "hello\npartial", sink.Output())
}

func TestLineSink_CRLF(t *testing.T) {
	print, lines := collector()
	sink := newLineSink(print, 1000, DecodeReplace)

	err := sink.consume(strings.NewReader("one\r\ntwo\r\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, *lines)
	assert.Equal(t, "one\ntwo", sink.Output())
}

func TestLineSink_EmptyOutput(t *testing.T) {
	sink := newLineSink(Silence, 1000, DecodeReplace)
	require.NoError(t, sink.consume(strings.NewReader("")))
	assert.Equal(t, "", sink.Output())
}

func TestLineSink_TailTruncation(t *testing.T) {
	// 15 characters into a 10-character cap: keep the most recent 10.
	sink := newLineSink(Silence, 10, DecodeReplace)
	require.NoError(t, sink.consume(strings.NewReader("abcdefghijklmno\n")))
	assert.Equal(t, "fghijklmno", sink.Output())
}

func TestLineSink_TailTruncationAcrossLines(t *testing.T) {
	// The cap applies to the newline-joined text, so truncation can land
	// mid-line.
	sink := newLineSink(Silence, 5, DecodeReplace)
	require.NoError(t, sink.consume(strings.NewReader("abc\nde\n")))
	assert.Equal(t, "bc\nde", sink.Output())
}

func TestLineSink_PrinterSeesFullLines(t *testing.T) {
	// The cap limits retention only; streaming is unaffected.
	print, lines := collector()
	sink := newLineSink(print, 3, DecodeReplace)

	require.NoError(t, sink.consume(strings.NewReader("abcdefgh\n")))
	assert.Equal(t, []string{"abcdefgh"}, *lines)
	assert.Equal(t, "fgh", sink.Output())
}

func TestLineSink_PrinterErrorAborts(t *testing.T) {
	sentinel := errors.New("sink closed")
	calls := 0
	print := func(string) error {
		calls++
		if calls == 2 {
			return sentinel
		}
		return nil
	}

	sink := newLineSink(print, 1000, DecodeReplace)
	err := sink.consume(strings.NewReader("one\ntwo\nthree\n"))

	// The error comes back verbatim and stops consumption.
	assert.Same(t, sentinel, err)
	assert.Equal(t, 2, calls)
}

func TestLineSink_ReplacePolicy(t *testing.T) {
	print, lines := collector()
	sink := newLineSink(print, 1000, DecodeReplace)

	require.NoError(t, sink.consume(strings.NewReader("ab\xffcd\n")))
	assert.Equal(t, []string{"ab�cd"}, *lines)
	assert.Equal(t, "ab�cd", sink.Output())
}

func TestLineSink_IgnorePolicy(t *testing.T) {
	print, lines := collector()
	sink := newLineSink(print, 1000, DecodeIgnore)

	require.NoError(t, sink.consume(strings.NewReader("ab\xffcd\n")))
	assert.Equal(t, []string{"abcd"}, *lines)
	assert.Equal(t, "abcd", sink.Output())
}

func TestLineSink_StrictPolicy(t *testing.T) {
	sink := newLineSink(Silence, 1000, DecodeStrict)

	err := sink.consume(strings.NewReader("fine\nab\xffcd\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUndecodableOutput)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLineSink_StrictPolicyCleanInput(t *testing.T) {
	sink := newLineSink(Silence, 1000, DecodeStrict)
	require.NoError(t, sink.consume(strings.NewReader("all good\n")))
	assert.Equal(t, "all good", sink.Output())
}
