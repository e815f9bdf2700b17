package strsearch

import "fmt"

// ErrorKind classifies errors returned by this package.
type ErrorKind uint8

const (
	// InvalidPattern indicates an empty pattern where a non-empty one is
	// required.
	InvalidPattern ErrorKind = iota

	// InvalidBounds indicates the text is too short to hold a single window
	// of the pattern.
	InvalidBounds

	// UnknownStrategy indicates a Strategy value outside the defined set.
	UnknownStrategy
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case InvalidPattern:
		return "InvalidPattern"
	case InvalidBounds:
		return "InvalidBounds"
	case UnknownStrategy:
		return "UnknownStrategy"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error is the error type returned by Compile, BruteForce and CheckBounds.
//
// Two errors compare equal under errors.Is when their kinds match, so callers
// can test against the exported sentinels:
//
//	if errors.Is(err, strsearch.ErrInvalidPattern) { ... }
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("strsearch: %s: %v", e.Message, e.Cause)
	}
	return "strsearch: " + e.Message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	// ErrInvalidPattern matches errors caused by an empty pattern.
	ErrInvalidPattern = &Error{Kind: InvalidPattern, Message: "pattern must not be empty"}

	// ErrInvalidBounds matches errors caused by a pattern longer than the text.
	ErrInvalidBounds = &Error{Kind: InvalidBounds, Message: "pattern longer than text"}

	// ErrUnknownStrategy matches errors caused by an undefined Strategy.
	ErrUnknownStrategy = &Error{Kind: UnknownStrategy, Message: "unknown strategy"}
)
