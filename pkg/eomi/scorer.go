package eomi

import (
	"math"
	"sort"
	"sync"

	"github.com/bastiangx/eomi/pkg/lrgraph"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// Evidence is what the extractor knows about one candidate ending.
type Evidence struct {
	// R is the candidate ending.
	R string
	// Features are all L parts observed before R.
	Features []lrgraph.Edge
	// Refined are the features that are registered roots without a longer
	// competing L part.
	Refined []lrgraph.Edge
	// Composable are the remaining features built on a composable root.
	Composable []lrgraph.Edge
	// Total is the summed count of Features.
	Total int
}

// Scorer turns evidence into a confidence that R is a valid ending. Scores
// outside [0, 1] are clamped by the extractor.
type Scorer interface {
	Score(ev Evidence) float64
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(ev Evidence) float64

func (f ScorerFunc) Score(ev Evidence) float64 { return f(ev) }

// SupportRatio scores R by the share of its L-side count carried by roots
// and composable roots.
var SupportRatio = ScorerFunc(func(ev Evidence) float64 {
	if ev.Total == 0 {
		return 0
	}
	support := sumCounts(ev.Refined) + sumCounts(ev.Composable)
	return float64(support) / float64(ev.Total)
})

var (
	scorersMu sync.RWMutex
	scorers   = map[string]Scorer{
		"support_ratio": SupportRatio,
	}
)

// RegisterScorer makes a scoring strategy available by name.
func RegisterScorer(name string, s Scorer) {
	scorersMu.Lock()
	defer scorersMu.Unlock()
	scorers[name] = s
}

// LookupScorer returns the strategy registered under name. An empty name
// yields a nil Scorer: prediction is then unavailable.
func LookupScorer(name string) (Scorer, error) {
	if name == "" {
		return nil, nil
	}
	scorersMu.RLock()
	defer scorersMu.RUnlock()
	s, ok := scorers[name]
	if !ok {
		return nil, errors.NotFoundf("scorer %q (available: %v)", name, scorerNames())
	}
	return s, nil
}

// ScorerNames lists the registered strategies.
func ScorerNames() []string {
	scorersMu.RLock()
	defer scorersMu.RUnlock()
	return scorerNames()
}

func scorerNames() []string {
	names := lo.Keys(scorers)
	sort.Strings(names)
	return names
}

func sumCounts(edges []lrgraph.Edge) int {
	return lo.SumBy(edges, func(e lrgraph.Edge) int { return e.Count })
}

func clamp(score float64) float64 {
	switch {
	case math.IsNaN(score), score < 0:
		return 0
	case score > 1:
		return 1
	}
	return score
}
