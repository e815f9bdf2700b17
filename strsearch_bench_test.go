package strsearch

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

// BenchmarkStrategies searches for a pattern cut from the end of a random
// text, which forces every matcher to cross the whole input.
func BenchmarkStrategies(b *testing.B) {
	r := rand.New(rand.NewPCG(3, 4))
	text := randomBytes(r, 200000, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

	for _, m := range []int{8, 80, 1000} {
		pattern := text[len(text)-m:]
		for _, st := range strategies {
			s := MustCompile(pattern, st)
			b.Run(fmt.Sprintf("%s/len_%d", st, m), func(b *testing.B) {
				b.SetBytes(int64(len(text)))
				for i := 0; i < b.N; i++ {
					s.Search(text)
				}
			})
		}
		b.Run(fmt.Sprintf("BruteForce/len_%d", m), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				_, _ = BruteForce(pattern, text)
			}
		})
	}
}
