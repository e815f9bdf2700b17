// Command strbench compares the DFA, bad-character and brute-force matchers.
//
// Without -pattern it runs the random-text benchmark and prints a summary
// table. With -pattern it runs a single comparison against -text, or against a
// line read from standard input when -text is omitted.
//
// Logging goes to standard error; set STRSEARCH_LOG_LEVEL=debug for per-case
// records and STRSEARCH_JSON_LOG=1 for JSON output.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/coregx/strsearch/bench"
	"github.com/coregx/strsearch/corpus"
	"github.com/coregx/strsearch/internal/logging"
)

var (
	textLen  = flag.Int("text-len", 200000, "Length of each generated text in bytes")
	lengths  = flag.String("lengths", "80,150,300,500,1000", "Comma-separated pattern lengths")
	charsets = flag.String("charsets", "letters,all", "Comma-separated charsets: letters, all")
	seed     = flag.Uint64("seed", 0, "Random seed (0 picks a time-based seed)")
	noCheck  = flag.Bool("no-crosscheck", false, "Skip verifying positions against the reference automaton")
	timeout  = flag.Duration("timeout", 0, "Abort the benchmark after this duration (0 disables)")
	pattern  = flag.String("pattern", "", "Run a single comparison for this pattern")
	text     = flag.String("text", "", "Text for -pattern (read from stdin when empty)")
)

func main() {
	flag.Parse()
	logger := logging.Init(os.Stderr, "strbench")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	if *pattern != "" {
		err = runCompare(os.Stdin, os.Stdout)
	} else {
		err = runBenchmark(ctx, logger, os.Stdout)
	}
	if err != nil {
		logger.Error("strbench failed", "error", err)
		os.Exit(1)
	}
}

func runCompare(in io.Reader, out io.Writer) error {
	t := *text
	if t == "" {
		line, err := prompt(in, out, "Text: ")
		if err != nil {
			return err
		}
		t = line
	}
	c, err := bench.Compare([]byte(*pattern), []byte(t), !*noCheck)
	if err != nil {
		return err
	}
	return bench.RenderComparison(out, c)
}

func runBenchmark(ctx context.Context, logger *slog.Logger, out io.Writer) error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	runner, err := bench.NewRunner(cfg, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	return bench.Render(out, results, bench.ReportOptions{
		Seed:     runner.Seed(),
		Features: bench.HostFeatures(),
		Total:    time.Since(start),
	})
}

func configFromFlags() (bench.Config, error) {
	cfg := bench.DefaultConfig()
	cfg.TextLength = *textLen
	cfg.Seed = *seed
	cfg.CrossCheck = !*noCheck

	ls, err := parseLengths(*lengths)
	if err != nil {
		return cfg, err
	}
	cfg.PatternLengths = ls

	cs, err := parseCharsets(*charsets)
	if err != nil {
		return cfg, err
	}
	cfg.Charsets = cs
	return cfg, nil
}

func parseLengths(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern length %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseCharsets(s string) ([]corpus.Charset, error) {
	var out []corpus.Charset
	for _, f := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "":
		case "letters":
			out = append(out, corpus.Charset{Name: "Letters", Symbols: corpus.Letters})
		case "all":
			out = append(out, corpus.Charset{Name: "All Chars", Symbols: corpus.AllChars})
		default:
			return nil, fmt.Errorf("unknown charset %q", f)
		}
	}
	return out, nil
}

// prompt writes msg and reads one line from in, without the trailing newline.
func prompt(in io.Reader, out io.Writer, msg string) (string, error) {
	fmt.Fprint(out, msg)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read text: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
