package eomi

import (
	"sort"

	"github.com/bastiangx/eomi/pkg/lrgraph"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// Prediction is the verdict on one candidate ending.
type Prediction struct {
	Ending     string         `msgpack:"r"`
	Score      float64        `msgpack:"score"`
	Valid      bool           `msgpack:"valid"`
	Support    int            `msgpack:"support"`
	Composable int            `msgpack:"composable"`
	Total      int            `msgpack:"total"`
	Roots      []lrgraph.Edge `msgpack:"roots,omitempty"`
}

// RefineFeatures keeps the (l, count) features whose l is a registered root
// and has no longer L part observed before r. A shorter root sharing r with a
// longer L part is most likely a truncated root.
func (e *Extractor) RefineFeatures(features []lrgraph.Edge, r string) ([]lrgraph.Edge, error) {
	g, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	return e.refine(g, features, r), nil
}

func (e *Extractor) refine(g *lrgraph.Graph, features []lrgraph.Edge, r string) []lrgraph.Edge {
	return lo.Filter(features, func(f lrgraph.Edge, _ int) bool {
		return e.roots.IsRoot(f.Word) && !g.HasLongerLeft(f.Word, r)
	})
}

// composable returns the features, outside refined, whose l is built on a
// composable root and has no longer competitor.
func (e *Extractor) composable(g *lrgraph.Graph, features, refined []lrgraph.Edge, r string) []lrgraph.Edge {
	seen := make(map[string]struct{}, len(refined))
	for _, f := range refined {
		seen[f.Word] = struct{}{}
	}
	return lo.Filter(features, func(f lrgraph.Edge, _ int) bool {
		if _, ok := seen[f.Word]; ok {
			return false
		}
		return e.roots.IsComposable(f.Word) && !g.HasLongerLeft(f.Word, r)
	})
}

// Evidence gathers what the graph says about r.
func (e *Extractor) Evidence(r string) (Evidence, error) {
	g, err := e.snapshot()
	if err != nil {
		return Evidence{}, err
	}
	return e.evidence(g, r), nil
}

func (e *Extractor) evidence(g *lrgraph.Graph, r string) Evidence {
	features := g.Lefts(r)
	refined := e.refine(g, features, r)
	return Evidence{
		R:          r,
		Features:   features,
		Refined:    refined,
		Composable: e.composable(g, features, refined, r),
		Total:      sumCounts(features),
	}
}

// PredictR scores r as an ending. The prediction is Valid when the score
// reaches minScore. An R never observed in the graph yields an invalid zero
// prediction. Without a Scorer the call fails with a NotImplemented error.
func (e *Extractor) PredictR(r string, minScore float64) (Prediction, error) {
	g, err := e.snapshot()
	if err != nil {
		return Prediction{}, err
	}
	if e.scorer == nil {
		return Prediction{}, errors.NotImplementedf("ending scoring without a scorer")
	}
	return e.predict(g, r, minScore), nil
}

func (e *Extractor) predict(g *lrgraph.Graph, r string, minScore float64) Prediction {
	ev := e.evidence(g, r)
	p := Prediction{
		Ending:     r,
		Support:    sumCounts(ev.Refined),
		Composable: sumCounts(ev.Composable),
		Total:      ev.Total,
		Roots:      ev.Refined,
	}
	if ev.Total == 0 {
		return p
	}
	p.Score = clamp(e.scorer.Score(ev))
	p.Valid = p.Score >= minScore
	return p
}

// Extract predicts every R of the graph and returns the valid endings, best
// first. limit <= 0 returns all of them. It also updates the covered eojeol
// count reported by Stats.
func (e *Extractor) Extract(minScore float64, limit int) ([]Prediction, error) {
	g, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if e.scorer == nil {
		return nil, errors.NotImplementedf("ending extraction without a scorer")
	}

	var endings []Prediction
	for _, r := range g.RightKeys() {
		if p := e.predict(g, r, minScore); p.Valid {
			endings = append(endings, p)
		}
	}
	sort.SliceStable(endings, func(i, j int) bool {
		if endings[i].Score != endings[j].Score {
			return endings[i].Score > endings[j].Score
		}
		return endings[i].Ending < endings[j].Ending
	})

	e.updateCoverage(g, endings)
	if limit > 0 && len(endings) > limit {
		endings = endings[:limit]
	}
	return endings, nil
}

// updateCoverage counts the eojeols that split into a root (or composable
// root) and one of the accepted endings.
func (e *Extractor) updateCoverage(g *lrgraph.Graph, endings []Prediction) {
	accepted := lo.SliceToMap(endings, func(p Prediction) (string, struct{}) {
		return p.Ending, struct{}{}
	})

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.graph != g {
		return
	}
	covered := 0
	for eojeol, count := range e.table {
		for l, r := range lrgraph.Split(eojeol, g.MaxLeftLength(), g.MaxRightLength()) {
			if _, ok := accepted[r]; ok && (e.roots.IsRoot(l) || e.roots.IsComposable(l)) {
				covered += count
				break
			}
		}
	}
	e.covered = covered
}
