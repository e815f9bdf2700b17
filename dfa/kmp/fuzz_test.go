package kmp

import (
	"bytes"
	"testing"
)

// FuzzSearchAgainstBytesIndex compares the automaton with bytes.Index.
//
// Run with:
//
//	go test -fuzz=FuzzSearchAgainstBytesIndex -fuzztime=30s ./dfa/kmp
func FuzzSearchAgainstBytesIndex(f *testing.F) {
	f.Add([]byte("AABA"), []byte("AABAACAABAA"))
	f.Add([]byte("XYZ"), []byte("ABCDEF"))
	f.Add([]byte("ABABAC"), []byte("ABABABAC"))
	f.Add([]byte("aaaaa"), []byte("aaa"))
	f.Add([]byte{0}, []byte{1, 0, 0})

	f.Fuzz(func(t *testing.T, pattern, text []byte) {
		if len(pattern) == 0 || len(pattern) > 64 {
			return
		}
		d, err := Build(pattern)
		if err != nil {
			t.Fatalf("Build(%q) failed: %v", pattern, err)
		}
		pos, n := d.Search(text)
		want := bytes.Index(text, pattern)
		if pos != want {
			t.Fatalf("Search(%q, %q) = %d, bytes.Index = %d", pattern, text, pos, want)
		}
		if n > len(text) {
			t.Fatalf("comparisons %d exceed text length %d", n, len(text))
		}
		if pos >= 0 && n != pos+len(pattern) {
			t.Fatalf("comparisons %d, want %d on match", n, pos+len(pattern))
		}
	})
}
