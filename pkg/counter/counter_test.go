package counter

import (
	"slices"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prefixGate map[string]bool

func (g prefixGate) ContainsNoun(token string) bool {
	runes := []rune(token)
	for e := 2; e <= len(runes); e++ {
		if g[string(runes[:e])] {
			return true
		}
	}
	return false
}

type recordingObserver struct {
	progress [][2]int
	done     [2]int
}

func (o *recordingObserver) Progress(sentences, retained int) {
	o.progress = append(o.progress, [2]int{sentences, retained})
}

func (o *recordingObserver) Done(sentences, retained int) {
	o.done = [2]int{sentences, retained}
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(Options{MinCount: 0}, nil, nil)
	assert.True(t, errors.Is(err, errors.NotValid))
	_, err = New(Options{MinCount: 1, PruneEvery: -1}, nil, nil)
	assert.True(t, errors.Is(err, errors.NotValid))
	c, err := New(Options{MinCount: 1}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultReportEvery, c.opts.ReportEvery)
}

func TestCountScenario(t *testing.T) {
	c, err := New(Options{MinCount: 1}, prefixGate{"밥을": true}, nil)
	require.NoError(t, err)

	table := c.Count(slices.Values([]string{"나는 밥을 먹었다", "나는 밥을 먹는다"}))
	assert.Equal(t, Table{"나는": 2, "먹었다": 1, "먹는다": 1}, table)
	assert.Equal(t, 4, table.Sum())
}

func TestCountSkipsSingleRunes(t *testing.T) {
	c, err := New(Options{MinCount: 1}, nil, nil)
	require.NoError(t, err)

	table := c.Count(slices.Values([]string{"a 다 b  먹다", "\t", ""}))
	assert.Equal(t, Table{"먹다": 1}, table)
}

func TestCountFinalPrune(t *testing.T) {
	c, err := New(Options{MinCount: 2}, nil, nil)
	require.NoError(t, err)

	table := c.Count(slices.Values([]string{"먹었다 갔다", "먹었다 왔다"}))
	assert.Equal(t, Table{"먹었다": 2}, table)
	for _, count := range table {
		assert.GreaterOrEqual(t, count, 2)
	}
}

func TestCountPeriodicPrune(t *testing.T) {
	obs := &recordingObserver{}
	c, err := New(Options{MinCount: 2, PruneEvery: 2, ReportEvery: 2}, nil, obs)
	require.NoError(t, err)

	// 갔다 is seen once before the first prune and once after it, so it is
	// dropped even though its total count reaches the minimum.
	sentences := []string{"먹었다 갔다", "먹었다", "갔다", "왔다 왔다"}
	table := c.Count(slices.Values(sentences))
	assert.Equal(t, Table{"먹었다": 2, "왔다": 2}, table)
	assert.Equal(t, [2]int{4, 2}, obs.done)
	assert.Equal(t, [][2]int{{2, 2}, {4, 2}}, obs.progress)
}

func TestCountIsDeterministic(t *testing.T) {
	gate := prefixGate{"학교": true}
	sentences := []string{"학교에 갔다", "밥을 먹었다 먹었다", "학교가 좋다"}

	c, err := New(Options{MinCount: 1, PruneEvery: 1}, gate, nil)
	require.NoError(t, err)
	first := c.Count(slices.Values(sentences))
	second := c.Count(slices.Values(sentences))
	assert.Equal(t, first, second)
	assert.NotContains(t, first, "학교에")
}

func TestPrune(t *testing.T) {
	table := Table{"a": 1, "b": 2, "c": 3}
	pruned := Prune(table, 2)
	assert.Equal(t, Table{"b": 2, "c": 3}, pruned)
	assert.Len(t, table, 3)
}
