// Package bench runs the strategy comparison benchmark: it generates random
// texts, cuts patterns from known positions, times preprocessing and search
// for every strategy, and renders the results as a table.
package bench

import (
	"fmt"

	"github.com/coregx/strsearch"
	"github.com/coregx/strsearch/corpus"
)

// Config controls the shape of a benchmark run.
//
// Example:
//
//	cfg := bench.DefaultConfig()
//	cfg.TextLength = 50_000
//	cfg.PatternLengths = []int{16, 64}
//	runner, err := bench.NewRunner(cfg, slog.Default())
type Config struct {
	// TextLength is the number of bytes generated per charset.
	// Default: 200000
	TextLength int

	// PatternLengths lists the pattern sizes to cut from each text.
	// Every length must fit in TextLength.
	// Default: 80, 150, 300, 500, 1000
	PatternLengths []int

	// Charsets lists the alphabets texts are drawn from.
	// Default: corpus.DefaultCharsets()
	Charsets []corpus.Charset

	// Seed seeds the text generator. Zero picks a time-based seed.
	// Default: 0
	Seed uint64

	// CrossCheck verifies every reported position against an independent
	// Aho-Corasick automaton.
	// Default: true
	CrossCheck bool
}

// DefaultConfig returns the configuration of the standard benchmark.
func DefaultConfig() Config {
	return Config{
		TextLength:     200000,
		PatternLengths: []int{80, 150, 300, 500, 1000},
		Charsets:       corpus.DefaultCharsets(),
		CrossCheck:     true,
	}
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
	Cause  error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("bench: invalid config %s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Validate checks that the configuration describes a runnable benchmark.
func (c Config) Validate() error {
	if c.TextLength <= 0 {
		return &ConfigError{Field: "TextLength", Reason: fmt.Sprintf("must be positive, got %d", c.TextLength)}
	}
	if len(c.PatternLengths) == 0 {
		return &ConfigError{Field: "PatternLengths", Reason: "at least one length required"}
	}
	for _, m := range c.PatternLengths {
		if err := strsearch.CheckBounds(m, c.TextLength); err != nil {
			return &ConfigError{
				Field:  "PatternLengths",
				Reason: fmt.Sprintf("length %d does not fit text length %d", m, c.TextLength),
				Cause:  err,
			}
		}
	}
	if len(c.Charsets) == 0 {
		return &ConfigError{Field: "Charsets", Reason: "at least one charset required"}
	}
	for _, cs := range c.Charsets {
		if cs.Symbols == "" {
			return &ConfigError{Field: "Charsets", Reason: fmt.Sprintf("charset %q is empty", cs.Name)}
		}
	}
	return nil
}
