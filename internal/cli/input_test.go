package cli

import (
	"strings"
	"testing"

	"github.com/bastiangx/eomi/pkg/eomi"
	"github.com/bastiangx/eomi/pkg/lrgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPredictor struct {
	seen []string
}

func (p *recordingPredictor) PredictR(r string, minScore float64) (eomi.Prediction, error) {
	p.seen = append(p.seen, r)
	return eomi.Prediction{
		Ending: r,
		Score:  0.75,
		Valid:  0.75 >= minScore,
		Total:  4,
		Roots:  []lrgraph.Edge{{Word: "먹", Count: 2}, {Word: "가", Count: 1}},
	}, nil
}

func TestHandleInputFilters(t *testing.T) {
	p := &recordingPredictor{}
	h := NewInputHandler(p, 0.3, 9, 1, false)

	_, ok := h.handleInput("다1")
	assert.False(t, ok)

	pred, ok := h.handleInput("었다")
	require.True(t, ok)
	assert.True(t, pred.Valid)
	assert.Equal(t, []string{"었다"}, p.seen)
}

func TestHandleInputNoFilter(t *testing.T) {
	p := &recordingPredictor{}
	h := NewInputHandler(p, 0.9, 9, 5, true)

	pred, ok := h.handleInput("da")
	require.True(t, ok)
	assert.False(t, pred.Valid)

	_, ok = h.handleInput("다다다다다다다다다다")
	assert.False(t, ok)
	assert.Equal(t, []string{"da"}, p.seen)
}

func TestStartReadsUntilEOF(t *testing.T) {
	p := &recordingPredictor{}
	h := NewInputHandler(p, 0.3, 9, 3, false)
	h.reader = strings.NewReader("었다\n\n  는다  \n고")

	require.NoError(t, h.Start())
	assert.Equal(t, []string{"었다", "는다", "고"}, p.seen)
	assert.Equal(t, 3, h.requestCount)
}
