// Package corpus generates random texts and extracts benchmark patterns
// from them.
package corpus

import (
	"fmt"
	"math/rand/v2"
)

// Charsets used by the benchmark. Letters exercises a 52-symbol alphabet;
// AllChars adds digits and punctuation for 72 symbols.
const (
	Letters  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AllChars = Letters + "0123456789!@#$%^&*()"
)

// Charset is a named set of symbols to draw text from.
type Charset struct {
	Name    string
	Symbols string
}

// DefaultCharsets returns the two charsets of the standard benchmark.
func DefaultCharsets() []Charset {
	return []Charset{
		{Name: "Letters", Symbols: Letters},
		{Name: "All Chars", Symbols: AllChars},
	}
}

// Generate returns n bytes drawn uniformly from charset.
// It panics if charset is empty and n > 0.
func Generate(r *rand.Rand, n int, charset string) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = charset[r.IntN(len(charset))]
	}
	return out
}

// Position selects where in the text a pattern is cut from.
type Position uint8

const (
	// Front takes the first m bytes, so the match is found immediately.
	Front Position = iota

	// Middle takes m bytes centered on the middle of the text.
	Middle

	// Back takes the last m bytes, forcing a scan of the whole text.
	Back
)

// Positions lists every Position in report order.
var Positions = []Position{Front, Middle, Back}

// String returns the position name.
func (p Position) String() string {
	switch p {
	case Front:
		return "Front"
	case Middle:
		return "Middle"
	case Back:
		return "Back"
	default:
		return fmt.Sprintf("Position(%d)", p)
	}
}

// Slice returns m bytes of text at pos. The result aliases text.
// It returns an error if m is not positive or exceeds len(text).
func Slice(text []byte, m int, pos Position) ([]byte, error) {
	n := len(text)
	if m <= 0 || m > n {
		return nil, fmt.Errorf("corpus: pattern length %d out of range for text length %d", m, n)
	}
	switch pos {
	case Front:
		return text[:m], nil
	case Middle:
		start := n/2 - m/2
		return text[start : start+m], nil
	case Back:
		return text[n-m:], nil
	default:
		return nil, fmt.Errorf("corpus: unknown position %s", pos)
	}
}
