// Package badchar implements Boyer-Moore substring search restricted to the
// bad-character rule.
//
// Preprocessing records, for every alphabet symbol, the rightmost index at
// which it occurs in the pattern. The search aligns a window with the text,
// compares it right to left, and on a mismatch slides the window so that the
// rightmost occurrence of the offending text byte lines up with it. Bytes that
// do not occur in the pattern let the window jump past them entirely.
//
// Average-case behavior is sub-linear on large alphabets. The worst case is
// O(N*M) comparisons since the good-suffix rule is not applied.
package badchar

import (
	"bytes"
	"errors"

	"github.com/coregx/strsearch/alphabet"
)

// Absent is the last-occurrence value for symbols not present in the pattern.
const Absent = -1

// ErrEmptyPattern indicates Build was called with a zero-length pattern.
var ErrEmptyPattern = errors.New("badchar: empty pattern")

// Table is an immutable last-occurrence table together with its pattern.
//
// A Table is safe for concurrent use by multiple goroutines once Build returns.
type Table struct {
	pattern []byte
	last    [alphabet.Size]int
}

// Build computes the last-occurrence table for pattern in a single pass.
// Later occurrences overwrite earlier ones, so ties resolve to the rightmost
// index, which the shift rule depends on.
func Build(pattern []byte) (*Table, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	t := &Table{pattern: bytes.Clone(pattern)}
	for c := range t.last {
		t.last[c] = Absent
	}
	for i, b := range pattern {
		t.last[alphabet.Index(b)] = i
	}
	return t, nil
}

// Last returns the rightmost index of c in the pattern, or Absent.
func (t *Table) Last(c byte) int {
	return t.last[alphabet.Index(c)]
}

// Len returns the pattern length.
func (t *Table) Len() int {
	return len(t.pattern)
}

// Pattern returns a copy of the pattern the table was built from.
func (t *Table) Pattern() []byte {
	return bytes.Clone(t.pattern)
}

// Equal reports whether t and other hold the same pattern and table.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	return bytes.Equal(t.pattern, other.pattern) && t.last == other.last
}

// Search returns the start of the leftmost occurrence of the pattern in text,
// or -1 if there is none, together with the number of byte comparisons made.
//
// Every compared byte counts, including the one that mismatches. A text
// shorter than the pattern has no valid window and returns (-1, 0).
func (t *Table) Search(text []byte) (pos, comparisons int) {
	m, n := len(t.pattern), len(text)
	if m > n {
		return -1, 0
	}

	for i := 0; i <= n-m; {
		skip := 0
		for j := m - 1; j >= 0; j-- {
			comparisons++
			c := text[i+j]
			if c != t.pattern[j] {
				skip = max(1, j-t.last[alphabet.Index(c)])
				break
			}
		}
		if skip == 0 {
			return i, comparisons
		}
		i += skip
	}
	return -1, comparisons
}
