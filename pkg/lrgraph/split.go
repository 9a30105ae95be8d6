// Package lrgraph builds the L-R co-occurrence graph of eojeols.
//
// Every eojeol is split into a left part (L) and a right part (R) at each inner
// position. The graph counts how often each (L, R) pair was observed and can be
// read in both directions: the R parts seen after an L, and the L parts seen
// before an R. Lengths are measured in runes.
package lrgraph

import "iter"

const (
	// DefaultMaxLeftLength is the longest L part kept in a graph.
	DefaultMaxLeftLength = 10
	// DefaultMaxRightLength is the longest R part kept in a graph.
	DefaultMaxRightLength = 9
)

// Split yields every (l, r) split of token with both parts non-empty,
// len(l) <= maxL and len(r) <= maxR, in order of increasing split position.
func Split(token string, maxL, maxR int) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		runes := []rune(token)
		n := len(runes)
		for i := 1; i < n; i++ {
			if i > maxL {
				return
			}
			if n-i > maxR {
				continue
			}
			if !yield(string(runes[:i]), string(runes[i:])) {
				return
			}
		}
	}
}
