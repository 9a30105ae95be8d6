package lrgraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/juju/errors"
)

// InvalidBoundsError is returned by Build when a length bound is below one.
type InvalidBoundsError struct {
	MaxL int
	MaxR int
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("lrgraph: invalid split bounds maxL=%d maxR=%d (both must be >= 1)", e.MaxL, e.MaxR)
}

// Unwrap lets callers match the error with errors.Is(err, errors.NotValid).
func (e *InvalidBoundsError) Unwrap() error {
	return errors.NotValid
}

// Edge is one neighbour of a node together with the pair count.
type Edge struct {
	Word  string `msgpack:"w"`
	Count int    `msgpack:"c"`
}

// Graph is a bipartite count structure between L and R substrings.
// It is never modified after Build returns and is safe for concurrent reads.
type Graph struct {
	l2r   map[string]map[string]int
	r2l   map[string]map[string]int
	maxL  int
	maxR  int
	total int
}

func newGraph(maxL, maxR int) *Graph {
	return &Graph{
		l2r:  make(map[string]map[string]int),
		r2l:  make(map[string]map[string]int),
		maxL: maxL,
		maxR: maxR,
	}
}

// add accumulates count into both directions of the (l, r) pair.
func (g *Graph) add(l, r string, count int) {
	rights, ok := g.l2r[l]
	if !ok {
		rights = make(map[string]int)
		g.l2r[l] = rights
	}
	rights[r] += count

	lefts, ok := g.r2l[r]
	if !ok {
		lefts = make(map[string]int)
		g.r2l[r] = lefts
	}
	lefts[l] += count
	g.total += count
}

// MaxLeftLength returns the L bound the graph was built with.
func (g *Graph) MaxLeftLength() int { return g.maxL }

// MaxRightLength returns the R bound the graph was built with.
func (g *Graph) MaxRightLength() int { return g.maxR }

// Rights returns the R parts observed after l, most frequent first.
func (g *Graph) Rights(l string) []Edge {
	return sortedEdges(g.l2r[l])
}

// Lefts returns the L parts observed before r, most frequent first.
func (g *Graph) Lefts(r string) []Edge {
	return sortedEdges(g.r2l[r])
}

// Count returns the number of times the (l, r) pair was observed.
func (g *Graph) Count(l, r string) int {
	return g.l2r[l][r]
}

// HasLongerLeft reports whether some strict extension of l (l plus at least
// one more rune) was observed before r. Only the L parts of r are scanned.
func (g *Graph) HasLongerLeft(l, r string) bool {
	for left := range g.r2l[r] {
		if len(left) > len(l) && strings.HasPrefix(left, l) {
			return true
		}
	}
	return false
}

// LeftKeys returns all L parts in lexical order.
func (g *Graph) LeftKeys() []string {
	return sortedKeys(g.l2r)
}

// RightKeys returns all R parts in lexical order.
func (g *Graph) RightKeys() []string {
	return sortedKeys(g.r2l)
}

// NumLefts returns the number of distinct L parts.
func (g *Graph) NumLefts() int { return len(g.l2r) }

// NumRights returns the number of distinct R parts.
func (g *Graph) NumRights() int { return len(g.r2l) }

// Len returns the number of distinct (l, r) pairs.
func (g *Graph) Len() int {
	n := 0
	for _, rights := range g.l2r {
		n += len(rights)
	}
	return n
}

// Total returns the sum of all pair counts.
func (g *Graph) Total() int { return g.total }

// Walk calls fn for every (l, r, count) in lexical (l, r) order until fn returns false.
func (g *Graph) Walk(fn func(l, r string, count int) bool) {
	for _, l := range sortedKeys(g.l2r) {
		rights := g.l2r[l]
		for _, r := range sortedKeys(rights) {
			if !fn(l, r, rights[r]) {
				return
			}
		}
	}
}

func sortedEdges(m map[string]int) []Edge {
	if len(m) == 0 {
		return nil
	}
	edges := make([]Edge, 0, len(m))
	for w, c := range m {
		edges = append(edges, Edge{Word: w, Count: c})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Count != edges[j].Count {
			return edges[i].Count > edges[j].Count
		}
		return edges[i].Word < edges[j].Word
	})
	return edges
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
