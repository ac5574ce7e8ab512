// Package textkit implements the pure text transformations behind the
// service's tools. Every operation is a single-shot function of its inputs;
// failures are reported as typed errors so callers and tests can branch on
// the kind rather than matching formatted message text. Formatting into
// human-readable display strings happens at the tool boundary, not here.
package textkit

import "errors"

// Kind classifies a transformation failure
type Kind int

const (
	// KindUnknownSelector marks an unrecognized mode, case type, operation
	// or data type selector
	KindUnknownSelector Kind = iota

	// KindEmptyInput marks empty or whitespace-only input where content is
	// required, including an empty password character pool
	KindEmptyInput

	// KindOutOfRange marks a numeric parameter outside its allowed range
	KindOutOfRange

	// KindDecodeFailure marks malformed Base64 input or non-UTF-8 decoded bytes
	KindDecodeFailure

	// KindNoMatches marks an extraction that found nothing for the requested
	// category set
	KindNoMatches

	// KindInvalidToken marks a failed bearer token comparison
	KindInvalidToken

	// KindInternal marks an unexpected internal failure that was caught and
	// converted into a reported error instead of crashing the process
	KindInternal
)

// String returns a stable identifier for the kind
func (k Kind) String() string {
	switch k {
	case KindUnknownSelector:
		return "unknown_selector"
	case KindEmptyInput:
		return "empty_input"
	case KindOutOfRange:
		return "out_of_range"
	case KindDecodeFailure:
		return "decode_failure"
	case KindNoMatches:
		return "no_matches"
	case KindInvalidToken:
		return "invalid_token"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is a typed transformation failure
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Cause
}

// newError creates a typed error without a cause
func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// wrapError creates a typed error wrapping a cause
func wrapError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the kind from an error returned by this package.
// The second result is false when err is not a textkit error.
func KindOf(err error) (Kind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is a textkit error of the given kind
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
