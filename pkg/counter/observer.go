package counter

import (
	"github.com/charmbracelet/log"
)

// LogObserver reports counting progress through a charm logger.
type LogObserver struct {
	Logger *log.Logger
}

// NewLogObserver creates an observer writing to logger, or to the default
// charm logger when logger is nil.
func NewLogObserver(logger *log.Logger) *LogObserver {
	if logger == nil {
		logger = log.Default()
	}
	return &LogObserver{Logger: logger}
}

func (o *LogObserver) Progress(sentences, retained int) {
	o.Logger.Info("counting eojeols", "eojeols", retained, "sentences", sentences)
}

func (o *LogObserver) Done(sentences, retained int) {
	o.Logger.Info("counting eojeols was done", "eojeols", retained, "sentences", sentences)
}
