package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/coregx/strsearch"
	"github.com/coregx/strsearch/dfa/kmp"
)

// StrategyRow is one matcher's outcome in a Comparison.
type StrategyRow struct {
	Name   string
	Match  strsearch.Match
	Build  time.Duration
	Search time.Duration
}

// Comparison is the result of running every matcher on a single
// pattern/text pair.
type Comparison struct {
	Pattern      []byte
	TextLength   int
	Rows         []StrategyRow
	RestartTrace []kmp.StateID
}

// Compare runs both strategies and the brute-force baseline on pattern and
// text. Unlike Run it does not require the pattern to fit in the text; a
// short text simply reports no match. When crossCheck is set the positions
// are verified against Reference.
func Compare(pattern, text []byte, crossCheck bool) (*Comparison, error) {
	c := &Comparison{Pattern: pattern, TextLength: len(text)}

	var (
		dfa *strsearch.DFASearcher
		bc  *strsearch.BadCharSearcher
		err error
	)
	dfaBuild := Measure(func() { dfa, err = strsearch.NewDFA(pattern) })
	if err != nil {
		return nil, err
	}
	bcBuild := Measure(func() { bc, err = strsearch.NewBadChar(pattern) })
	if err != nil {
		return nil, err
	}

	var dfaM, bcM, bruteM strsearch.Match
	dfaSearch := Measure(func() { dfaM = dfa.Search(text) })
	bcSearch := Measure(func() { bcM = bc.Search(text) })
	bruteSearch := Measure(func() { bruteM, err = strsearch.BruteForce(pattern, text) })
	if err != nil {
		return nil, err
	}

	c.Rows = []StrategyRow{
		{Name: strsearch.UseDFA.String(), Match: dfaM, Build: dfaBuild, Search: dfaSearch},
		{Name: strsearch.UseBadChar.String(), Match: bcM, Build: bcBuild, Search: bcSearch},
		{Name: "BruteForce", Match: bruteM, Search: bruteSearch},
	}
	c.RestartTrace = dfa.RestartTrace()

	if crossCheck {
		positions := make(map[string]int, len(c.Rows))
		for _, row := range c.Rows {
			positions[row.Name] = row.Match.Pos
		}
		if err := CrossCheck(pattern, text, positions); err != nil {
			return c, err
		}
	}
	return c, nil
}

// RenderComparison writes c as a table followed by the DFA restart trace.
func RenderComparison(w io.Writer, c *Comparison) error {
	rows := make([][]string, 0, len(c.Rows))
	for _, r := range c.Rows {
		pos := "not found"
		if r.Match.Found() {
			pos = strconv.Itoa(r.Match.Pos)
		}
		rows = append(rows, []string{
			r.Name,
			pos,
			strconv.Itoa(r.Match.Comparisons),
			formatMicros(r.Build),
			formatMicros(r.Search),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Matcher", "Position", "Comp.", "Build (us)", "Search (us)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return textStyle
			default:
				return numberStyle
			}
		})

	trace := make([]string, len(c.RestartTrace))
	for i, s := range c.RestartTrace {
		trace[i] = strconv.FormatUint(uint64(s), 10)
	}

	_, err := fmt.Fprintf(w, "Pattern %q (%d bytes) in %d-byte text\n%s\nRestart trace: %s\n",
		c.Pattern, len(c.Pattern), c.TextLength, t.Render(), strings.Join(trace, " "))
	return err
}
