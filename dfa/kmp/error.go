package kmp

import "errors"

var (
	// ErrEmptyPattern indicates Build was called with a zero-length pattern.
	// The automaton needs at least one non-accepting state.
	ErrEmptyPattern = errors.New("kmp: empty pattern")

	// ErrPatternTooLong indicates the pattern has more states than StateID
	// can address.
	ErrPatternTooLong = errors.New("kmp: pattern too long")
)
