// Package conv provides checked integer conversions for the table builders.
//
// Pattern lengths arrive as int but state identifiers are stored as uint32 to
// halve the size of the transition table. These helpers check bounds before
// narrowing and panic on overflow, since a pattern longer than the state space
// is a programming error rather than a recoverable condition.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// FitsUint32 reports whether n can be narrowed by IntToUint32 without panicking.
func FitsUint32(n int) bool {
	return n >= 0 && uint(n) <= math.MaxUint32
}
