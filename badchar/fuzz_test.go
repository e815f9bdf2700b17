package badchar

import (
	"bytes"
	"testing"
)

// FuzzSearchAgainstBytesIndex compares the bad-character matcher with
// bytes.Index.
//
// Run with:
//
//	go test -fuzz=FuzzSearchAgainstBytesIndex -fuzztime=30s ./badchar
func FuzzSearchAgainstBytesIndex(f *testing.F) {
	f.Add([]byte("AABA"), []byte("AABAACAABAA"))
	f.Add([]byte("XYZ"), []byte("ABCDEF"))
	f.Add([]byte("abcab"), []byte("abcabcab"))
	f.Add([]byte("aaaaa"), []byte("aaa"))
	f.Add([]byte{0xff}, []byte{0, 0xff})

	f.Fuzz(func(t *testing.T, pattern, text []byte) {
		if len(pattern) == 0 {
			return
		}
		tbl, err := Build(pattern)
		if err != nil {
			t.Fatalf("Build(%q) failed: %v", pattern, err)
		}
		pos, n := tbl.Search(text)
		if want := bytes.Index(text, pattern); pos != want {
			t.Fatalf("Search(%q, %q) = %d, bytes.Index = %d", pattern, text, pos, want)
		}
		if n < 0 {
			t.Fatalf("negative comparison count %d", n)
		}
	})
}
