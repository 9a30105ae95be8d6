// Package eomi extracts predicate endings (eomi) from raw sentences.
//
// Training counts the eojeols of a corpus, skipping tokens that start with a
// known noun, and turns the counts into an L-R graph. A candidate ending R is
// then judged by the L parts observed before it: registered predicate roots
// count as support unless a longer L part competes for the same R, and words
// built on a composable root (덕질+하+다) are credited as well. The final score
// is computed by a pluggable Scorer.
//
// Training is not reentrant; a trained Extractor may be queried concurrently.
package eomi

import (
	"iter"
	"sync"

	"github.com/bastiangx/eomi/internal/logger"
	"github.com/bastiangx/eomi/pkg/counter"
	"github.com/bastiangx/eomi/pkg/dictionary"
	"github.com/bastiangx/eomi/pkg/lrgraph"
	"github.com/charmbracelet/log"
	"github.com/juju/errors"
)

// ErrNotTrained is returned by queries on an extractor without a graph.
const ErrNotTrained = errors.ConstError("eomi extractor is not trained")

// DefaultMinRScore is the default minimum score of a valid ending.
const DefaultMinRScore = 0.3

// Options configures training.
type Options struct {
	MinEojeolCount int
	PruneEvery     int
	MaxLeftLength  int
	MaxRightLength int
	Verbose        bool
}

// DefaultOptions returns the training defaults.
func DefaultOptions() Options {
	return Options{
		MinEojeolCount: counter.DefaultMinCount,
		PruneEvery:     counter.DefaultPruneEvery,
		MaxLeftLength:  lrgraph.DefaultMaxLeftLength,
		MaxRightLength: lrgraph.DefaultMaxRightLength,
		Verbose:        true,
	}
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithScorer sets the scoring strategy used by PredictR.
func WithScorer(s Scorer) Option {
	return func(e *Extractor) { e.scorer = s }
}

// WithObserver sets the counting progress observer. It replaces the default
// log observer of verbose extractors.
func WithObserver(o counter.Observer) Option {
	return func(e *Extractor) { e.observer = o }
}

// WithLogger sets the extractor logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// Stats summarizes the trained state.
type Stats struct {
	Eojeols        int `msgpack:"eojeols"`
	CoveredEojeols int `msgpack:"covered_eojeols"`
	DistinctTokens int `msgpack:"distinct_tokens"`
	Lefts          int `msgpack:"lefts"`
	Rights         int `msgpack:"rights"`
	Pairs          int `msgpack:"pairs"`
}

// Extractor holds the dictionaries and the trained L-R graph.
type Extractor struct {
	nouns    *dictionary.NounSet
	roots    *dictionary.Roots
	opts     Options
	scorer   Scorer
	observer counter.Observer
	logger   *log.Logger

	mu         sync.RWMutex
	graph      *lrgraph.Graph
	table      counter.Table
	numEojeols int
	covered    int
}

// New creates an untrained extractor.
func New(nouns *dictionary.NounSet, roots *dictionary.Roots, opts Options, options ...Option) (*Extractor, error) {
	if nouns == nil {
		nouns = dictionary.NewNounSet()
	}
	if roots == nil {
		return nil, errors.NotValidf("nil root dictionary")
	}
	if opts.MaxLeftLength < 1 || opts.MaxRightLength < 1 {
		return nil, errors.Trace(&lrgraph.InvalidBoundsError{MaxL: opts.MaxLeftLength, MaxR: opts.MaxRightLength})
	}

	e := &Extractor{
		nouns: nouns,
		roots: roots,
		opts:  opts,
	}
	for _, o := range options {
		o(e)
	}
	if e.logger == nil {
		e.logger = logger.New("Eomi Extractor")
	}
	if e.observer == nil && opts.Verbose {
		e.observer = counter.NewLogObserver(e.logger)
	}
	return e, nil
}

// Load creates an extractor from dictionaries served by loader. When nouns is
// non-nil it is used instead of the noun resources.
func Load(loader dictionary.ResourceLoader, paths dictionary.Paths, nouns *dictionary.NounSet, opts Options, options ...Option) (*Extractor, error) {
	var err error
	if nouns == nil {
		nouns, err = dictionary.LoadNouns(loader, paths.Nouns...)
		if err != nil {
			return nil, errors.Trace(err)
		}
	}
	roots, err := dictionary.LoadRoots(loader, paths)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return New(nouns, roots, opts, options...)
}

// IsTrained reports whether a graph is present. A graph trained on an empty
// corpus still counts.
func (e *Extractor) IsTrained() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph != nil
}

// Train counts the eojeols of sentences and replaces the L-R graph.
func (e *Extractor) Train(sentences iter.Seq[string]) error {
	c, err := counter.New(counter.Options{
		MinCount:   e.opts.MinEojeolCount,
		PruneEvery: e.opts.PruneEvery,
	}, e.nouns, e.observer)
	if err != nil {
		return errors.Annotate(err, "eomi: train")
	}

	e.logger.Debug("counting eojeols")
	table := c.Count(sentences)

	e.logger.Debug("complete eojeol counter -> lr graph")
	graph, err := lrgraph.Build(table, e.opts.MaxLeftLength, e.opts.MaxRightLength)
	if err != nil {
		return errors.Annotate(err, "eomi: train")
	}

	e.mu.Lock()
	e.graph = graph
	e.table = table
	e.numEojeols = table.Sum()
	e.covered = 0
	e.mu.Unlock()

	if e.opts.Verbose {
		e.logger.Info("has been trained", "eojeols", len(table), "pairs", graph.Len())
	}
	return nil
}

// Graph returns the trained graph, or nil.
func (e *Extractor) Graph() *lrgraph.Graph {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph
}

// Stats returns counts about the trained state.
func (e *Extractor) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := Stats{
		Eojeols:        e.numEojeols,
		CoveredEojeols: e.covered,
		DistinctTokens: len(e.table),
	}
	if e.graph != nil {
		s.Lefts = e.graph.NumLefts()
		s.Rights = e.graph.NumRights()
		s.Pairs = e.graph.Len()
	}
	return s
}

func (e *Extractor) snapshot() (*lrgraph.Graph, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.graph == nil {
		return nil, ErrNotTrained
	}
	return e.graph, nil
}
