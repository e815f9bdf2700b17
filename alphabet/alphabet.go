// Package alphabet defines the byte alphabet shared by the table builders.
//
// Every symbol is an unsigned byte value in the range 0-255, so tables indexed
// by symbol have exactly Size entries. Patterns and texts are never decoded:
// multi-byte UTF-8 sequences are matched byte by byte.
package alphabet

// Size is the number of distinct symbols in the alphabet.
const Size = 256

// Index returns the table index of symbol b.
//
//go:inline
func Index(b byte) int {
	return int(b)
}
