// Package cli handles cmd line input for querying endings interactively
package cli

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/bastiangx/eomi/internal/utils"
	"github.com/bastiangx/eomi/pkg/eomi"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	endingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	validStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	rejectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Predictor scores a single candidate ending.
type Predictor interface {
	PredictR(r string, minScore float64) (eomi.Prediction, error)
}

// InputHandler reads candidate endings from stdin and logs their verdict.
type InputHandler struct {
	predictor    Predictor
	minScore     float64
	maxLength    int
	rootsShown   int
	requestCount int
	noFilter     bool
	reader       io.Reader
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(predictor Predictor, minScore float64, maxLength, rootsShown int, noFilter bool) *InputHandler {
	return &InputHandler{
		predictor:  predictor,
		minScore:   minScore,
		maxLength:  maxLength,
		rootsShown: rootsShown,
		noFilter:   noFilter,
		reader:     os.Stdin,
	}
}

// Start begins the interface loop. It returns nil once the input is closed.
func (h *InputHandler) Start() error {
	log.Print("Eomi CLI")
	log.Print("type a candidate ending and press Enter to score it (Ctrl+C to exit):")
	reader := bufio.NewReader(h.reader)

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		r := utils.NormalizeEnding(line)
		if r != "" {
			h.handleInput(r)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// handleInput scores r and logs the verdict. It reports whether a
// prediction was made.
func (h *InputHandler) handleInput(r string) (eomi.Prediction, bool) {
	h.requestCount++
	if !utils.IsValidEnding(r, h.maxLength) {
		log.Errorf("Not a candidate ending: %s", r)
		return eomi.Prediction{}, false
	}
	if !h.noFilter && !utils.IsHangulEnding(r) {
		log.Errorf("Not a Hangul ending: %s (use --no-filter to score it)", r)
		return eomi.Prediction{}, false
	}

	start := time.Now()
	p, err := h.predictor.PredictR(r, h.minScore)
	if err != nil {
		log.Errorf("Scoring '%s' failed: %v", r, err)
		return eomi.Prediction{}, false
	}
	log.Debugf("Took [ %v ] for ending '%s'", time.Since(start), r)

	if p.Total == 0 {
		log.Warnf("Ending '%s' was never observed", r)
		return p, true
	}

	verdict := rejectStyle.Render("rejected")
	if p.Valid {
		verdict = validStyle.Render("valid")
	}
	log.Printf("%s  score %.3f  %s  (support %d, composable %d, total %d)",
		endingStyle.Render("-"+r), p.Score, verdict, p.Support, p.Composable, p.Total)
	for i, root := range p.Roots {
		if i == h.rootsShown {
			log.Printf("    ... %d more roots", len(p.Roots)-i)
			break
		}
		log.Printf("    %2d. %-12s %8d", i+1, root.Word, root.Count)
	}
	return p, true
}
