// Package strsearch provides exact single-pattern substring search over byte
// strings with two preprocessing strategies and a brute-force baseline.
//
// The strategies are:
//   - UseDFA: a Knuth-Morris-Pratt automaton (package dfa/kmp). Linear time,
//     every text byte is read exactly once.
//   - UseBadChar: Boyer-Moore with the bad-character rule only (package
//     badchar). Sub-linear on average, O(N*M) worst case.
//
// Every search reports the leftmost match position together with the number
// of byte comparisons performed, which makes the strategies comparable
// independently of wall-clock timing.
//
// Basic usage:
//
//	s, err := strsearch.Compile([]byte("needle"), strsearch.UseBadChar)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := s.Search([]byte("haystack with a needle"))
//	if m.Found() {
//	    fmt.Println(m.Pos, m.Comparisons)
//	}
//
// Searchers are immutable once constructed and may be shared between
// goroutines without synchronization.
package strsearch

import (
	"fmt"

	"github.com/coregx/strsearch/badchar"
	"github.com/coregx/strsearch/brute"
	"github.com/coregx/strsearch/dfa/kmp"
)

// Strategy selects the preprocessing and search algorithm of a Searcher.
type Strategy uint8

const (
	// UseDFA selects the KMP automaton.
	UseDFA Strategy = iota

	// UseBadChar selects Boyer-Moore with the bad-character rule.
	UseBadChar
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case UseDFA:
		return "DFA"
	case UseBadChar:
		return "BadChar"
	default:
		return fmt.Sprintf("Strategy(%d)", s)
	}
}

// NotFound is the Match position reported when the pattern does not occur.
const NotFound = -1

// Match is the outcome of a single search.
type Match struct {
	// Pos is the index of the first byte of the leftmost occurrence, or
	// NotFound.
	Pos int

	// Comparisons is the number of byte comparisons (or automaton
	// transitions) the search performed.
	Comparisons int
}

// Found reports whether the search located the pattern.
func (m Match) Found() bool {
	return m.Pos != NotFound
}

// Searcher is a pattern compiled for one strategy.
//
// The interface is sealed: *DFASearcher and *BadCharSearcher are its only
// implementations. Use a type switch to reach strategy-specific accessors.
type Searcher interface {
	// Search returns the leftmost occurrence of the pattern in text.
	Search(text []byte) Match

	// Strategy returns the strategy the searcher was compiled for.
	Strategy() Strategy

	// Pattern returns a copy of the compiled pattern.
	Pattern() []byte

	sealed()
}

// DFASearcher searches with a KMP automaton.
type DFASearcher struct {
	dfa *kmp.DFA
}

// NewDFA builds the automaton for pattern.
func NewDFA(pattern []byte) (*DFASearcher, error) {
	d, err := kmp.Build(pattern)
	if err != nil {
		return nil, patternError(err)
	}
	return &DFASearcher{dfa: d}, nil
}

// Search implements Searcher.
func (s *DFASearcher) Search(text []byte) Match {
	pos, n := s.dfa.Search(text)
	return Match{Pos: pos, Comparisons: n}
}

// Strategy implements Searcher.
func (s *DFASearcher) Strategy() Strategy { return UseDFA }

// Pattern implements Searcher.
func (s *DFASearcher) Pattern() []byte { return s.dfa.Pattern() }

// RestartTrace returns the automaton's restart trace. See kmp.DFA.RestartTrace.
func (s *DFASearcher) RestartTrace() []kmp.StateID { return s.dfa.RestartTrace() }

// Automaton returns the underlying transition table.
func (s *DFASearcher) Automaton() *kmp.DFA { return s.dfa }

func (s *DFASearcher) sealed() {}

// BadCharSearcher searches with the Boyer-Moore bad-character rule.
type BadCharSearcher struct {
	table *badchar.Table
}

// NewBadChar builds the last-occurrence table for pattern.
func NewBadChar(pattern []byte) (*BadCharSearcher, error) {
	t, err := badchar.Build(pattern)
	if err != nil {
		return nil, patternError(err)
	}
	return &BadCharSearcher{table: t}, nil
}

// Search implements Searcher. A text shorter than the pattern reports
// NotFound with zero comparisons.
func (s *BadCharSearcher) Search(text []byte) Match {
	pos, n := s.table.Search(text)
	return Match{Pos: pos, Comparisons: n}
}

// Strategy implements Searcher.
func (s *BadCharSearcher) Strategy() Strategy { return UseBadChar }

// Pattern implements Searcher.
func (s *BadCharSearcher) Pattern() []byte { return s.table.Pattern() }

// Last returns the rightmost index of c in the pattern, or badchar.Absent.
func (s *BadCharSearcher) Last(c byte) int { return s.table.Last(c) }

// Table returns the underlying last-occurrence table.
func (s *BadCharSearcher) Table() *badchar.Table { return s.table }

func (s *BadCharSearcher) sealed() {}

// Compile builds a Searcher for pattern using strategy.
// The pattern is copied; the caller may reuse its buffer.
func Compile(pattern []byte, strategy Strategy) (Searcher, error) {
	switch strategy {
	case UseDFA:
		s, err := NewDFA(pattern)
		if err != nil {
			return nil, err
		}
		return s, nil
	case UseBadChar:
		s, err := NewBadChar(pattern)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, &Error{
			Kind:    UnknownStrategy,
			Message: fmt.Sprintf("unknown strategy %s", strategy),
		}
	}
}

// CompileString is like Compile but takes the pattern as a string.
func CompileString(pattern string, strategy Strategy) (Searcher, error) {
	return Compile([]byte(pattern), strategy)
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern []byte, strategy Strategy) Searcher {
	s, err := Compile(pattern, strategy)
	if err != nil {
		panic(fmt.Sprintf("strsearch: Compile(%q, %s): %v", pattern, strategy, err))
	}
	return s
}

// BruteForce searches for pattern in text without preprocessing.
func BruteForce(pattern, text []byte) (Match, error) {
	if len(pattern) == 0 {
		return Match{Pos: NotFound}, ErrInvalidPattern
	}
	pos, n := brute.Search(pattern, text)
	return Match{Pos: pos, Comparisons: n}, nil
}

// CheckBounds reports ErrInvalidBounds when a pattern of patternLen bytes
// cannot fit in a text of textLen bytes, and ErrInvalidPattern when
// patternLen is not positive. Searches themselves never fail on short texts;
// this is for callers that prefer an explicit error over NotFound.
func CheckBounds(patternLen, textLen int) error {
	if patternLen <= 0 {
		return ErrInvalidPattern
	}
	if patternLen > textLen {
		return &Error{
			Kind:    InvalidBounds,
			Message: fmt.Sprintf("pattern length %d exceeds text length %d", patternLen, textLen),
		}
	}
	return nil
}

func patternError(cause error) error {
	return &Error{Kind: InvalidPattern, Message: "cannot build pattern", Cause: cause}
}
