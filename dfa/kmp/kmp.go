// Package kmp implements the Knuth-Morris-Pratt string matcher as a fully
// materialized deterministic finite automaton over the byte alphabet.
//
// The automaton for a pattern of length M has states 0..M. State j means "the
// last j text bytes equal the first j pattern bytes". State M is accepting and
// is never stored: the search stops as soon as it is reached. Each of the M
// stored states has one transition per alphabet symbol, so a search consumes
// every text byte exactly once and never backs up.
//
// Example:
//
//	d, err := kmp.Build([]byte("ABABAC"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pos, n := d.Search([]byte("BCBAABACAABABACAA"))
//	// pos == 9, n == 15
package kmp

import (
	"bytes"
	"slices"

	"github.com/coregx/strsearch/alphabet"
	"github.com/coregx/strsearch/internal/conv"
)

// StateID identifies an automaton state. Valid values are 0..Len().
type StateID uint32

// DFA is an immutable KMP automaton built from a single pattern.
//
// A DFA is safe for concurrent use by multiple goroutines once Build returns.
type DFA struct {
	pattern []byte

	// trans holds Len() rows of alphabet.Size transitions each.
	// The transition for symbol c out of state s lives at s*alphabet.Size + c.
	trans []StateID

	accept StateID
}

// Build constructs the automaton for pattern in O(alphabet.Size * M) time and
// space. The pattern is copied, so the caller may reuse its buffer.
//
// Construction tracks a restart state X: the state the automaton would be in
// after reading pattern[1:i]. Row i starts as a copy of row X (what to do on a
// mismatch), then the pattern's own symbol at i is pointed at i+1. X advances
// by simulating the automaton on pattern[i], using the rows built so far.
func Build(pattern []byte) (*DFA, error) {
	m := len(pattern)
	if m == 0 {
		return nil, ErrEmptyPattern
	}
	if !conv.FitsUint32(m) {
		return nil, ErrPatternTooLong
	}

	d := &DFA{
		pattern: bytes.Clone(pattern),
		trans:   make([]StateID, m*alphabet.Size),
		accept:  StateID(conv.IntToUint32(m)),
	}

	// State 0: only the first pattern symbol makes progress.
	d.trans[alphabet.Index(pattern[0])] = 1

	x := 0
	for i := 1; i < m; i++ {
		copy(d.row(i), d.row(x))
		c := alphabet.Index(pattern[i])
		d.trans[i*alphabet.Size+c] = StateID(conv.IntToUint32(i + 1))
		x = int(d.trans[x*alphabet.Size+c])
	}

	return d, nil
}

func (d *DFA) row(s int) []StateID {
	return d.trans[s*alphabet.Size : (s+1)*alphabet.Size]
}

// Next returns the state reached from s on symbol c.
// s must be in [0, Len()); the accepting state has no outgoing transitions.
func (d *DFA) Next(c byte, s StateID) StateID {
	return d.trans[int(s)*alphabet.Size+alphabet.Index(c)]
}

// Len returns the pattern length M, which is also the accepting state.
func (d *DFA) Len() int {
	return len(d.pattern)
}

// Accept returns the accepting state.
func (d *DFA) Accept() StateID {
	return d.accept
}

// Pattern returns a copy of the pattern the automaton was built from.
func (d *DFA) Pattern() []byte {
	return bytes.Clone(d.pattern)
}

// Search returns the start of the leftmost occurrence of the pattern in text,
// or -1 if there is none, together with the number of text bytes consumed.
//
// One comparison is counted per transition taken, so comparisons never exceeds
// len(text). A text shorter than the pattern is scanned in full and reported
// as not found.
func (d *DFA) Search(text []byte) (pos, comparisons int) {
	var j StateID
	i := 0
	for ; i < len(text) && j < d.accept; i++ {
		j = d.trans[int(j)*alphabet.Size+alphabet.Index(text[i])]
	}
	if j == d.accept {
		return i - len(d.pattern), i
	}
	return -1, i
}

// RestartTrace returns the state reached after running the automaton over
// pattern[1:i+1] from state 0, for every i in [0, Len()). Entry 0 is always 0.
//
// The trace is an introspection aid only; Search never consults it. It is
// recomputed on every call and the returned slice is owned by the caller.
func (d *DFA) RestartTrace() []StateID {
	trace := make([]StateID, len(d.pattern))
	var x StateID
	for i := 1; i < len(d.pattern); i++ {
		x = d.Next(d.pattern[i], x)
		trace[i] = x
	}
	return trace
}

// Equal reports whether d and other were built from the same pattern and hold
// identical transition tables.
func (d *DFA) Equal(other *DFA) bool {
	if d == nil || other == nil {
		return d == other
	}
	return bytes.Equal(d.pattern, other.pattern) && slices.Equal(d.trans, other.trans)
}
