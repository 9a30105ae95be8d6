// Package counter counts eojeols over a sentence stream with periodic
// low-frequency pruning to bound memory.
package counter

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/juju/errors"
)

const (
	// DefaultMinCount is the default minimum count kept after pruning.
	DefaultMinCount = 2
	// DefaultPruneEvery is the default number of sentences between prunes.
	DefaultPruneEvery = 100000
	// DefaultReportEvery is the default number of sentences between progress reports.
	DefaultReportEvery = 100000
)

// Table maps an eojeol to its count.
type Table map[string]int

// Sum returns the sum of all counts.
func (t Table) Sum() int {
	sum := 0
	for _, c := range t {
		sum += c
	}
	return sum
}

// Prune returns a new table holding the entries of t with count >= minCount.
// t itself is left untouched.
func Prune(t Table, minCount int) Table {
	pruned := make(Table, len(t)/2)
	for eojeol, count := range t {
		if count >= minCount {
			pruned[eojeol] = count
		}
	}
	return pruned
}

// Gate rejects eojeols that must not be counted.
type Gate interface {
	ContainsNoun(token string) bool
}

// Observer receives counting progress.
type Observer interface {
	Progress(sentences, retained int)
	Done(sentences, retained int)
}

// Options configures a Counter.
type Options struct {
	MinCount    int
	PruneEvery  int
	ReportEvery int
}

// DefaultOptions returns the counting defaults.
func DefaultOptions() Options {
	return Options{
		MinCount:    DefaultMinCount,
		PruneEvery:  DefaultPruneEvery,
		ReportEvery: DefaultReportEvery,
	}
}

// Counter builds eojeol frequency tables. A Counter holds no state between
// Count calls.
type Counter struct {
	opts     Options
	gate     Gate
	observer Observer
}

// New creates a Counter. gate and observer may be nil.
func New(opts Options, gate Gate, observer Observer) (*Counter, error) {
	if opts.MinCount < 1 {
		return nil, errors.NotValidf("min count %d (must be >= 1)", opts.MinCount)
	}
	if opts.PruneEvery < 0 {
		return nil, errors.NotValidf("prune interval %d (must be >= 0)", opts.PruneEvery)
	}
	if opts.ReportEvery <= 0 {
		opts.ReportEvery = DefaultReportEvery
	}
	return &Counter{opts: opts, gate: gate, observer: observer}, nil
}

// Accept reports whether token is counted: it must be longer than one rune
// and pass the gate.
func (c *Counter) Accept(token string) bool {
	if utf8.RuneCountInString(token) <= 1 {
		return false
	}
	return c.gate == nil || !c.gate.ContainsNoun(token)
}

// Count tokenizes every sentence on whitespace and counts accepted tokens.
// Every PruneEvery sentences the running table is replaced by its pruned
// copy; the returned table is pruned once more at MinCount.
func (c *Counter) Count(sentences iter.Seq[string]) Table {
	table := make(Table)
	n := 0
	for sent := range sentences {
		if c.opts.PruneEvery > 0 && n > 0 && n%c.opts.PruneEvery == 0 {
			table = Prune(table, c.opts.MinCount)
		}
		if c.observer != nil && n%c.opts.ReportEvery == c.opts.ReportEvery-1 {
			c.observer.Progress(n+1, len(table))
		}
		for _, token := range strings.Fields(sent) {
			if c.Accept(token) {
				table[token]++
			}
		}
		n++
	}

	table = Prune(table, c.opts.MinCount)
	if c.observer != nil {
		c.observer.Done(n, len(table))
	}
	return table
}
