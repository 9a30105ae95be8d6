package lrgraph

import "github.com/charmbracelet/log"

// Build converts an eojeol frequency table into a Graph. Every split of every
// eojeol within the (maxL, maxR) bounds receives the eojeol's count, and pairs
// produced by several eojeols are summed.
func Build(table map[string]int, maxL, maxR int) (*Graph, error) {
	if maxL < 1 || maxR < 1 {
		return nil, &InvalidBoundsError{MaxL: maxL, MaxR: maxR}
	}

	g := newGraph(maxL, maxR)
	for eojeol, count := range table {
		for l, r := range Split(eojeol, maxL, maxR) {
			g.add(l, r, count)
		}
	}

	log.Debugf("L-R graph built: %d eojeols, %d lefts, %d rights, %d pairs",
		len(table), len(g.l2r), len(g.r2l), g.Len())
	return g, nil
}
