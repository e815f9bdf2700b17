// Package brute provides the naive substring matcher used as a correctness
// and performance baseline for the preprocessing matchers.
package brute

// Search returns the start of the leftmost occurrence of pattern in text, or
// -1 if there is none, together with the number of byte comparisons made.
//
// Every window from 0 to len(text)-len(pattern) is tried in order. Within a
// window the pattern is compared from its last byte backward and the window is
// accepted once index 0 also matches. An empty pattern, or one longer than the
// text, returns (-1, 0).
func Search(pattern, text []byte) (pos, comparisons int) {
	m, n := len(pattern), len(text)
	if m == 0 || m > n {
		return -1, 0
	}

	for i := 0; i <= n-m; i++ {
		j := m - 1
		for ; j >= 0; j-- {
			comparisons++
			if text[i+j] != pattern[j] {
				break
			}
		}
		if j < 0 {
			return i, comparisons
		}
	}
	return -1, comparisons
}
