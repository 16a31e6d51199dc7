// Package canonjson decodes and encodes canonical JSON.
//
// Canonical JSON requires lexicographically sorted object keys, no
// insignificant whitespace between tokens and a single canonical encoding for
// numbers and strings, so that two encodings of the same value are
// byte-for-byte identical. Documents are expected to be object or array
// rooted. Verify reports the first violation with a typed code, which lets
// callers treat the whitespace violation differently from every other one:
// pretty-printed documents are common in the wild, unsorted keys or rewritten
// numbers are not.
package canonjson

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
)

// Code classifies why an input is not acceptable canonical JSON.
type Code int

const (
	// CodeInvalidJSON means the input is not well-formed JSON at all.
	CodeInvalidJSON Code = iota
	// CodeUnexpectedWhitespace means the input contains insignificant
	// whitespace between tokens, which canonical form forbids.
	CodeUnexpectedWhitespace
	// CodeNotCanonical means the input is well-formed, whitespace-free JSON
	// that still deviates from canonical form: unsorted object keys, a
	// non-canonical number representation or a non-minimal string escape.
	CodeNotCanonical
)

func (c Code) String() string {
	switch c {
	case CodeInvalidJSON:
		return "invalid JSON"
	case CodeUnexpectedWhitespace:
		return "unexpected whitespace"
	case CodeNotCanonical:
		return "not in canonical form"
	default:
		return "unknown"
	}
}

// SyntaxError reports the first canonical-form violation found in an input.
// Offset, Line and Column locate the violation when one can be attributed to
// a position; for CodeInvalidJSON the underlying parser error is wrapped
// instead.
type SyntaxError struct {
	Code   Code
	Offset int
	Line   int
	Column int
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("canonical json: %s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("canonical json: %s at line %d, column %d", e.Code, e.Line, e.Column)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Verify checks that data is canonical JSON and returns a *SyntaxError
// describing the first violation otherwise. The document root must be an
// object or an array; scalar roots are rejected as invalid.
func Verify(data []byte) error {
	if off := scanWhitespace(data); off >= 0 {
		return syntaxErrorAt(CodeUnexpectedWhitespace, data, off)
	}
	canonical, err := jsoncanonicalizer.Transform(data)
	if err != nil {
		return &SyntaxError{Code: CodeInvalidJSON, Err: err}
	}
	if !bytes.Equal(canonical, data) {
		return syntaxErrorAt(CodeNotCanonical, data, firstDiff(data, canonical))
	}
	return nil
}

// Unmarshal decodes canonical JSON into v. Input that fails Verify is
// rejected before any value is produced.
func Unmarshal(data []byte, v any) error {
	if err := Verify(data); err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Marshal encodes v as canonical JSON.
func Marshal(v any) ([]byte, error) {
	buffer := new(bytes.Buffer)
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	data, err := jsoncanonicalizer.Transform(buffer.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cannot canonicalize json: %w", err)
	}
	return data, nil
}

// scanWhitespace returns the offset of the first whitespace byte outside a
// string literal, or -1 when there is none. Whitespace inside strings is
// content, not separation.
func scanWhitespace(data []byte) int {
	inString := false
	escaped := false
	for i, b := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case ' ', '\t', '\n', '\r':
			return i
		}
	}
	return -1
}

// firstDiff returns the offset of the first byte where a and b differ.
func firstDiff(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func syntaxErrorAt(code Code, data []byte, offset int) *SyntaxError {
	line, column := 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return &SyntaxError{Code: code, Offset: offset, Line: line, Column: column}
}
