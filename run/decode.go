package run

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Decode-error policies for EncodingErrors.
const (
	// DecodeReplace substitutes U+FFFD for undecodable input.
	DecodeReplace = "replace"
	// DecodeIgnore drops undecodable input.
	DecodeIgnore = "ignore"
	// DecodeStrict aborts the call when output cannot be decoded.
	DecodeStrict = "strict"
)

// lookupEncoding resolves an encoding name through the WHATWG index. Empty
// and UTF-8 names select passthrough (nil encoding).
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown encoding %q", ErrInvalidOptions, name)
	}
	return enc, nil
}

// decodeStream wraps r so downstream consumers always see UTF-8. The
// decoders substitute U+FFFD for undecodable bytes; the per-line policy in
// lineSink decides what happens to those.
func decodeStream(r io.Reader, enc encoding.Encoding) io.Reader {
	if enc == nil {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}
