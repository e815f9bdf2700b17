package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// ReportOptions carries the run metadata printed around the result table.
type ReportOptions struct {
	Seed     uint64
	Features []string
	Total    time.Duration
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	textStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

var resultHeaders = []string{
	"Charset", "Length", "Position",
	"DFA Comp.", "BM Comp.", "BF Comp.",
	"DFA Build", "DFA Search", "BM Build", "BM Search",
}

// textColumns are left-aligned; all other columns are numeric.
const textColumns = 3

// Render writes the results summary table followed by the legend.
func Render(w io.Writer, results []Result, opts ReportOptions) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Charset,
			strconv.Itoa(r.PatternLength),
			r.Position.String(),
			strconv.Itoa(r.DFAComparisons),
			strconv.Itoa(r.BadCharComparisons),
			strconv.Itoa(r.BruteComparisons),
			formatMicros(r.DFABuild),
			formatMicros(r.DFASearch),
			formatMicros(r.BadCharBuild),
			formatMicros(r.BadCharSearch),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(resultHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col < textColumns:
				return textStyle
			default:
				return numberStyle
			}
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render("Results Summary"))
	b.WriteByte('\n')
	if len(opts.Features) > 0 {
		fmt.Fprintf(&b, "Host: %s\n", strings.Join(opts.Features, " "))
	}
	if opts.Seed != 0 {
		fmt.Fprintf(&b, "Seed: %d\n", opts.Seed)
	}
	b.WriteString(t.Render())
	b.WriteString("\n\nNotes:\n")
	b.WriteString("- Time measurements in microseconds (us)\n")
	b.WriteString("- Comp. = Number of character comparisons\n")
	b.WriteString("- DFA = KMP automaton, BM = Boyer-Moore bad-character rule, BF = brute force\n")
	if opts.Total > 0 {
		fmt.Fprintf(&b, "\nTotal test time: %s\n", opts.Total.Round(time.Millisecond))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatMicros(d time.Duration) string {
	return strconv.FormatFloat(Micros(d), 'f', 3, 64)
}
