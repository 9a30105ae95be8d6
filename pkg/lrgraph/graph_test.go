package lrgraph

import (
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct{ l, r string }

func collect(token string, maxL, maxR int) []pair {
	var pairs []pair
	for l, r := range Split(token, maxL, maxR) {
		pairs = append(pairs, pair{l, r})
	}
	return pairs
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		token string
		maxL  int
		maxR  int
		want  []pair
	}{
		{"single rune", "다", 10, 9, nil},
		{"empty", "", 10, 9, nil},
		{"two runes", "먹다", 10, 9, []pair{{"먹", "다"}}},
		{"all splits", "먹었다", 10, 9, []pair{{"먹", "었다"}, {"먹었", "다"}}},
		{"left bound", "abcd", 2, 9, []pair{{"a", "bcd"}, {"ab", "cd"}}},
		{"right bound", "abcd", 10, 1, []pair{{"abc", "d"}}},
		{"both bounds", "abcdef", 3, 3, []pair{{"abc", "def"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tt.token, tt.maxL, tt.maxR))
		})
	}
}

func TestSplitStopsEarly(t *testing.T) {
	var got []pair
	for l, r := range Split("abcde", 10, 9) {
		got = append(got, pair{l, r})
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []pair{{"a", "bcde"}, {"ab", "cde"}}, got)
}

func TestBuildInvalidBounds(t *testing.T) {
	for _, bounds := range [][2]int{{0, 9}, {10, 0}, {-1, -1}} {
		g, err := Build(map[string]int{"먹었다": 1}, bounds[0], bounds[1])
		assert.Nil(t, g)
		var boundsErr *InvalidBoundsError
		require.ErrorAs(t, err, &boundsErr)
		assert.Equal(t, bounds[0], boundsErr.MaxL)
		assert.True(t, errors.Is(err, errors.NotValid))
	}
}

func TestBuildSumsPairs(t *testing.T) {
	table := map[string]int{
		"먹었다": 3,
		"먹는다": 2,
		"갔다":  4,
		"먹었고": 1,
	}
	g, err := Build(table, DefaultMaxLeftLength, DefaultMaxRightLength)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Count("먹었", "다"))
	assert.Equal(t, 2, g.Count("먹는", "다"))
	assert.Equal(t, 4, g.Count("갔", "다"))
	assert.Equal(t, 4, g.Count("먹", "었다")+g.Count("먹", "었고"))
	assert.Equal(t, []Edge{{"갔", 4}, {"먹었", 3}, {"먹는", 2}}, g.Lefts("다"))
	assert.Equal(t, []Edge{{"었다", 3}, {"는다", 2}, {"었고", 1}}, g.Rights("먹"))
	assert.Equal(t, 0, g.Count("없", "다"))
	assert.Nil(t, g.Lefts("없다"))
}

func TestGraphInvariants(t *testing.T) {
	table := map[string]int{
		"먹었다":            5,
		"먹는다":            3,
		"예뻤다":            2,
		"덕질하다":           1,
		"abcdefghijklmn": 7,
	}
	g, err := Build(table, 4, 3)
	require.NoError(t, err)

	pairs := 0
	g.Walk(func(l, r string, count int) bool {
		pairs++
		// every pair reconstructs one of the counted eojeols
		_, ok := table[l+r]
		assert.True(t, ok, "%q+%q is not an eojeol", l, r)
		assert.LessOrEqual(t, len([]rune(l)), 4)
		assert.LessOrEqual(t, len([]rune(r)), 3)
		assert.Positive(t, count)
		// both directions agree
		found := false
		for _, e := range g.Lefts(r) {
			if e.Word == l {
				assert.Equal(t, count, e.Count)
				found = true
			}
		}
		assert.True(t, found, "(%q, %q) missing from r->l", l, r)
		return true
	})
	assert.Equal(t, g.Len(), pairs)

	sum := 0
	for _, r := range g.RightKeys() {
		for _, e := range g.Lefts(r) {
			sum += e.Count
		}
	}
	assert.Equal(t, g.Total(), sum)
}

func TestHasLongerLeft(t *testing.T) {
	g, err := Build(map[string]int{"먹다": 10, "먹었다": 3, "먹었고": 1, "가다": 2}, 10, 9)
	require.NoError(t, err)

	assert.True(t, g.HasLongerLeft("먹", "다"))
	assert.False(t, g.HasLongerLeft("먹었", "다"))
	assert.False(t, g.HasLongerLeft("가", "다"))
	assert.False(t, g.HasLongerLeft("먹", "었다"))
	assert.True(t, g.HasLongerLeft("먹", "고"))
	assert.False(t, g.HasLongerLeft("없", "다"))
	assert.True(t, g.HasLongerLeft("", "다"))
}

func TestBuildEmpty(t *testing.T) {
	g, err := Build(map[string]int{}, 10, 9)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.RightKeys())
	assert.Empty(t, g.LeftKeys())
}

func TestHasLongerLeftMatchesPairs(t *testing.T) {
	table := map[string]int{"먹었다": 4, "먹었고": 2, "먹다": 3, "먹히다": 1, "가다": 2, "가셨다": 1}
	g, err := Build(table, 10, 9)
	require.NoError(t, err)

	for _, r := range g.RightKeys() {
		for _, l := range g.LeftKeys() {
			want := false
			g.Walk(func(left, right string, _ int) bool {
				if right == r && len(left) > len(l) && strings.HasPrefix(left, l) {
					want = true
					return false
				}
				return true
			})
			assert.Equal(t, want, g.HasLongerLeft(l, r), "l=%s r=%s", l, r)
		}
	}
}
