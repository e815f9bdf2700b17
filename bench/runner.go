package bench

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/coregx/strsearch"
	"github.com/coregx/strsearch/corpus"
)

// Result holds the measurements for one (charset, length, position) case.
type Result struct {
	Charset       string
	PatternLength int
	Position      corpus.Position

	// MatchPos is the position every matcher agreed on.
	MatchPos int

	DFAComparisons     int
	BadCharComparisons int
	BruteComparisons   int

	DFABuild      time.Duration
	DFASearch     time.Duration
	BadCharBuild  time.Duration
	BadCharSearch time.Duration
	BruteSearch   time.Duration
}

// Runner executes a benchmark described by a Config.
type Runner struct {
	cfg    Config
	logger *slog.Logger
	rng    *rand.Rand
	seed   uint64
}

// NewRunner validates cfg and prepares a runner. A nil logger discards logs.
func NewRunner(cfg Config, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Runner{
		cfg:    cfg,
		logger: logger,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed:   seed,
	}, nil
}

// Seed returns the seed actually used, so a run can be reproduced.
func (r *Runner) Seed() uint64 {
	return r.seed
}

// Run generates one text per charset and measures every pattern length and
// position against it. It stops early if ctx is canceled.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	total := len(r.cfg.Charsets) * len(r.cfg.PatternLengths) * len(corpus.Positions)
	results := make([]Result, 0, total)

	r.logger.Info("benchmark started",
		"text_length", r.cfg.TextLength,
		"pattern_lengths", r.cfg.PatternLengths,
		"seed", r.seed,
		"cases", total)

	for _, cs := range r.cfg.Charsets {
		text := corpus.Generate(r.rng, r.cfg.TextLength, cs.Symbols)
		r.logger.Info("testing charset", "charset", cs.Name, "symbols", len(cs.Symbols))

		for _, m := range r.cfg.PatternLengths {
			for _, pos := range corpus.Positions {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				pattern, err := corpus.Slice(text, m, pos)
				if err != nil {
					return results, err
				}
				res, err := r.measure(pattern, text)
				if err != nil {
					return results, fmt.Errorf("charset %s, length %d, %s: %w", cs.Name, m, pos, err)
				}
				res.Charset = cs.Name
				res.PatternLength = m
				res.Position = pos
				results = append(results, res)

				r.logger.Debug("case done",
					"charset", cs.Name,
					"length", m,
					"position", pos.String(),
					"match", res.MatchPos,
					"dfa_comparisons", res.DFAComparisons,
					"badchar_comparisons", res.BadCharComparisons)
			}
		}
	}

	r.logger.Info("benchmark finished", "cases", len(results))
	return results, nil
}

// measure builds and runs every strategy for one pattern.
func (r *Runner) measure(pattern, text []byte) (Result, error) {
	var (
		res    Result
		dfa    strsearch.Searcher
		bc     strsearch.Searcher
		err    error
		dfaM   strsearch.Match
		bcM    strsearch.Match
		bruteM strsearch.Match
	)

	res.DFABuild = Measure(func() { dfa, err = strsearch.Compile(pattern, strsearch.UseDFA) })
	if err != nil {
		return res, err
	}
	res.DFASearch = Measure(func() { dfaM = dfa.Search(text) })

	res.BadCharBuild = Measure(func() { bc, err = strsearch.Compile(pattern, strsearch.UseBadChar) })
	if err != nil {
		return res, err
	}
	res.BadCharSearch = Measure(func() { bcM = bc.Search(text) })

	res.BruteSearch = Measure(func() { bruteM, err = strsearch.BruteForce(pattern, text) })
	if err != nil {
		return res, err
	}

	res.MatchPos = dfaM.Pos
	res.DFAComparisons = dfaM.Comparisons
	res.BadCharComparisons = bcM.Comparisons
	res.BruteComparisons = bruteM.Comparisons

	positions := map[string]int{
		strsearch.UseDFA.String():     dfaM.Pos,
		strsearch.UseBadChar.String(): bcM.Pos,
		"BruteForce":                  bruteM.Pos,
	}
	if r.cfg.CrossCheck {
		return res, CrossCheck(pattern, text, positions)
	}
	for _, name := range sortedKeys(positions) {
		if got := positions[name]; got != dfaM.Pos {
			return res, &MismatchError{Matcher: name, Got: got, Want: dfaM.Pos}
		}
	}
	return res, nil
}

func sortedKeys(m map[string]int) []string {
	return slices.Sorted(maps.Keys(m))
}
