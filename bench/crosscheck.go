package bench

import (
	"fmt"

	"github.com/coregx/ahocorasick"
)

// MismatchError reports a matcher whose position disagrees with the
// reference automaton.
type MismatchError struct {
	Matcher string
	Got     int
	Want    int
}

// Error implements the error interface
func (e *MismatchError) Error() string {
	return fmt.Sprintf("bench: %s reported position %d, reference found %d", e.Matcher, e.Got, e.Want)
}

// Reference finds the leftmost occurrence of pattern in text with an
// Aho-Corasick automaton, which shares no code with the matchers under test.
func Reference(pattern, text []byte) (int, error) {
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(pattern)
	auto, err := builder.Build()
	if err != nil {
		return -1, fmt.Errorf("bench: build reference automaton: %w", err)
	}
	m := auto.Find(text, 0)
	if m == nil {
		return -1, nil
	}
	return m.Start, nil
}

// CrossCheck compares each matcher's reported position with Reference.
// positions maps matcher names to the positions they reported.
func CrossCheck(pattern, text []byte, positions map[string]int) error {
	want, err := Reference(pattern, text)
	if err != nil {
		return err
	}
	for _, name := range sortedKeys(positions) {
		if got := positions[name]; got != want {
			return &MismatchError{Matcher: name, Got: got, Want: want}
		}
	}
	return nil
}
