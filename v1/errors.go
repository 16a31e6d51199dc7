package v1

import "fmt"

// Kind classifies a failed decode. Exactly one kind applies per failure.
type Kind int

const (
	// KindIO means the descriptor source could not be opened or read. It is
	// only produced by FromFile, before any parsing happens.
	KindIO Kind = iota
	// KindCanonical means the strict canonical-JSON decode failed for a
	// reason other than the whitespace condition that triggers the
	// permissive retry.
	KindCanonical
	// KindJSON means the permissive JSON decode failed, either because the
	// document is malformed or because it does not match the descriptor
	// schema.
	KindJSON
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "i/o"
	case KindCanonical:
		return "canonical json"
	case KindJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseError is the error type returned by the decode entry points. It tags
// the originating failure with a Kind and wraps it unmodified; position
// information, where the underlying error carries any, survives in the
// message.
type ParseError struct {
	Kind Kind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing bundle descriptor: %s: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newIOError(err error) *ParseError {
	return &ParseError{Kind: KindIO, Err: err}
}

func newCanonicalError(err error) *ParseError {
	return &ParseError{Kind: KindCanonical, Err: err}
}

func newJSONError(err error) *ParseError {
	return &ParseError{Kind: KindJSON, Err: err}
}
