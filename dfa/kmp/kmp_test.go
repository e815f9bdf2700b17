package kmp

import (
	"bytes"
	"errors"
	"slices"
	"testing"
)

func TestBuildEmptyPattern(t *testing.T) {
	d, err := Build(nil)
	if !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("Build(nil) error = %v, want ErrEmptyPattern", err)
	}
	if d != nil {
		t.Errorf("Build(nil) returned non-nil DFA")
	}
}

// TestBuildTransitions checks the textbook automaton for ABABAC.
func TestBuildTransitions(t *testing.T) {
	d, err := Build([]byte("ABABAC"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := map[byte][]StateID{
		'A': {1, 1, 3, 1, 5, 1},
		'B': {0, 2, 0, 4, 0, 4},
		'C': {0, 0, 0, 0, 0, 6},
		'Z': {0, 0, 0, 0, 0, 0},
	}
	for c, row := range want {
		for s, next := range row {
			if got := d.Next(c, StateID(s)); got != next {
				t.Errorf("Next(%q, %d) = %d, want %d", c, s, got, next)
			}
		}
	}
	if d.Len() != 6 || d.Accept() != 6 {
		t.Errorf("Len() = %d, Accept() = %d, want 6 and 6", d.Len(), d.Accept())
	}
}

// TestBuildSelfTransitionSurvivesRestartCopy covers patterns whose restart row
// would otherwise clobber the forward edge.
func TestBuildSelfTransitionSurvivesRestartCopy(t *testing.T) {
	d, err := Build([]byte("AAAA"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for s := 0; s < 4; s++ {
		if got := d.Next('A', StateID(s)); got != StateID(s+1) {
			t.Errorf("Next('A', %d) = %d, want %d", s, got, s+1)
		}
		if got := d.Next('B', StateID(s)); got != 0 {
			t.Errorf("Next('B', %d) = %d, want 0", s, got)
		}
	}
}

func TestBuildEveryStateTotal(t *testing.T) {
	pattern := []byte{0x00, 0xff, 0x80, 0xff, 0x00}
	d, err := Build(pattern)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for s := 0; s < d.Len(); s++ {
		for c := 0; c < 256; c++ {
			if next := d.Next(byte(c), StateID(s)); next > d.Accept() {
				t.Fatalf("Next(%#x, %d) = %d, beyond accept state %d", c, s, next, d.Accept())
			}
		}
	}
}

func TestBuildCopiesPattern(t *testing.T) {
	pattern := []byte("abc")
	d, err := Build(pattern)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	pattern[0] = 'x'
	if !bytes.Equal(d.Pattern(), []byte("abc")) {
		t.Errorf("Pattern() = %q after caller mutation, want %q", d.Pattern(), "abc")
	}
}

func TestBuildIdempotent(t *testing.T) {
	a, err := Build([]byte("abracadabra"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	b, err := Build([]byte("abracadabra"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("two builds from the same pattern differ")
	}
	c, _ := Build([]byte("abracadabrx"))
	if a.Equal(c) {
		t.Error("builds from different patterns compare equal")
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		text        string
		wantPos     int
		wantCompare int
	}{
		{"leftmost", "AABA", "AABAACAABAA", 0, 4},
		{"not_found", "XYZ", "ABCDEF", -1, 6},
		{"pattern_longer_than_text", "ABCDE", "ABC", -1, 3},
		{"empty_text", "A", "", -1, 0},
		{"single_byte", "c", "abc", 2, 3},
		{"partial_overlap_restart", "AAB", "AAAB", 1, 4},
		{"textbook", "ABABAC", "BCBAABACAABABACAA", 9, 15},
		{"at_end", "end", "the end", 4, 7},
		{"exact", "same", "same", 0, 4},
		{"high_bytes", "\xff\xfe", "\x01\xff\xff\xfe", 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Build([]byte(tt.pattern))
			if err != nil {
				t.Fatalf("Build(%q) failed: %v", tt.pattern, err)
			}
			pos, n := d.Search([]byte(tt.text))
			if pos != tt.wantPos || n != tt.wantCompare {
				t.Errorf("Search(%q) in %q = (%d, %d), want (%d, %d)",
					tt.pattern, tt.text, pos, n, tt.wantPos, tt.wantCompare)
			}
		})
	}
}

func TestSearchComparisonsBoundedByText(t *testing.T) {
	d, err := Build([]byte("aaab"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	text := bytes.Repeat([]byte("a"), 1000)
	pos, n := d.Search(text)
	if pos != -1 {
		t.Errorf("Search pos = %d, want -1", pos)
	}
	if n != len(text) {
		t.Errorf("Search comparisons = %d, want %d", n, len(text))
	}
}

func TestRestartTrace(t *testing.T) {
	tests := []struct {
		pattern string
		want    []StateID
	}{
		{"A", []StateID{0}},
		{"ABABAC", []StateID{0, 0, 1, 2, 3, 0}},
		{"AAAA", []StateID{0, 1, 2, 3}},
		{"abcab", []StateID{0, 0, 0, 1, 2}},
	}
	for _, tt := range tests {
		d, err := Build([]byte(tt.pattern))
		if err != nil {
			t.Fatalf("Build(%q) failed: %v", tt.pattern, err)
		}
		if got := d.RestartTrace(); !slices.Equal(got, tt.want) {
			t.Errorf("RestartTrace(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}
