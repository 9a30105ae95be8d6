package server

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/bastiangx/eomi/internal/utils"
	"github.com/bastiangx/eomi/pkg/config"
	"github.com/bastiangx/eomi/pkg/eomi"
	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/juju/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Predictor answers ending queries. *eomi.Extractor implements it.
type Predictor interface {
	PredictR(r string, minScore float64) (eomi.Prediction, error)
	Extract(minScore float64, limit int) ([]eomi.Prediction, error)
	Stats() eomi.Stats
}

// Options bound what clients may ask for.
type Options struct {
	MaxLimit        int
	CacheSize       int
	DefaultLimit    int
	DefaultMinScore float64
	MaxEndingLength int
	EnableFilter    bool
}

// OptionsFromConfig picks the server options out of the loaded config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MaxLimit:        cfg.Server.MaxLimit,
		CacheSize:       cfg.Server.CacheSize,
		DefaultLimit:    cfg.CLI.DefaultLimit,
		DefaultMinScore: cfg.Extractor.MinRScore,
		MaxEndingLength: cfg.Extractor.MaxRightLength,
		EnableFilter:    cfg.Server.EnableFilter,
	}
}

type cacheKey struct {
	r        string
	minScore float64
}

// Server handles the IPC for ending queries
type Server struct {
	predictor Predictor
	opts      Options
	cache     *lru.Cache[cacheKey, eomi.Prediction]
	decoder   *msgpack.Decoder
	encoder   *msgpack.Encoder
	requests  int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(p Predictor, opts Options) (*Server, error) {
	return NewServerWithIO(p, opts, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w
func NewServerWithIO(p Predictor, opts Options, r io.Reader, w io.Writer) (*Server, error) {
	if p == nil {
		return nil, errors.NotValidf("nil predictor")
	}
	if opts.MaxLimit < 1 {
		return nil, errors.NotValidf("max limit %d", opts.MaxLimit)
	}
	if opts.DefaultLimit < 1 || opts.DefaultLimit > opts.MaxLimit {
		opts.DefaultLimit = opts.MaxLimit
	}
	s := &Server{
		predictor: p,
		opts:      opts,
		decoder:   msgpack.NewDecoder(bufio.NewReader(r)),
		encoder:   msgpack.NewEncoder(w),
	}
	if opts.CacheSize > 0 {
		cache, err := lru.New[cacheKey, eomi.Prediction](opts.CacheSize)
		if err != nil {
			return nil, errors.Annotate(err, "prediction cache")
		}
		s.cache = cache
	}
	return s, nil
}

// Start announces readiness and serves requests until the input is closed
func (s *Server) Start() error {
	log.Debug("Starting Server.")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			log.Errorf("Reading from stdin: %v", err)
			return errors.Annotate(err, "reading request")
		}
		s.requests++
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes one message and dispatches it by action
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	var request Request
	if err := msgpack.Unmarshal(raw, &request); err != nil {
		log.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "Invalid msgpack request", 400)
	}

	switch request.Action {
	case "predict":
		return s.handlePredict(request)
	case "extract":
		return s.handleExtract(request)
	case "stats":
		return s.send(StatsResponse{ID: request.ID, Stats: s.predictor.Stats()})
	case "health":
		return s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		return s.sendError(request.ID, "Unknown action: "+request.Action, 400)
	}
}

func (s *Server) minScore(request Request) float64 {
	if request.MinScore != nil {
		return *request.MinScore
	}
	return s.opts.DefaultMinScore
}

func (s *Server) handlePredict(request Request) error {
	r := utils.NormalizeEnding(request.R)
	if r == "" {
		log.Debug("Ending is empty in request")
		return s.sendError(request.ID, "Missing 'r' parameter", 400)
	}
	if !utils.IsValidEnding(r, s.opts.MaxEndingLength) {
		log.Debugf("Rejected ending %q", r)
		return s.sendError(request.ID, "Invalid ending: "+r, 400)
	}
	if s.opts.EnableFilter && !utils.IsHangulEnding(r) {
		log.Debugf("Filtered ending %q", r)
		return s.sendError(request.ID, "Not a Hangul ending: "+r, 400)
	}

	key := cacheKey{r: r, minScore: s.minScore(request)}
	start := time.Now()
	if s.cache != nil {
		if p, ok := s.cache.Get(key); ok {
			return s.send(PredictResponse{
				ID:         request.ID,
				Prediction: p,
				Cached:     true,
				TimeTaken:  time.Since(start).Microseconds(),
			})
		}
	}

	p, err := s.predictor.PredictR(key.r, key.minScore)
	if err != nil {
		return s.sendFailure(request.ID, err)
	}
	if s.cache != nil {
		s.cache.Add(key, p)
	}
	return s.send(PredictResponse{
		ID:         request.ID,
		Prediction: p,
		TimeTaken:  time.Since(start).Microseconds(),
	})
}

func (s *Server) handleExtract(request Request) error {
	limit := request.Limit
	if limit < 1 {
		limit = s.opts.DefaultLimit
	}
	if limit > s.opts.MaxLimit {
		limit = s.opts.MaxLimit
	}

	start := time.Now()
	endings, err := s.predictor.Extract(s.minScore(request), limit)
	if err != nil {
		return s.sendFailure(request.ID, err)
	}
	if endings == nil {
		endings = []eomi.Prediction{}
	}
	return s.send(ExtractResponse{
		ID:        request.ID,
		Endings:   endings,
		Count:     len(endings),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

// sendFailure maps a predictor error to an error response
func (s *Server) sendFailure(id string, err error) error {
	log.Warnf("Request %s failed: %v", id, err)
	switch {
	case errors.Is(err, eomi.ErrNotTrained):
		return s.sendError(id, err.Error(), 503)
	case errors.Is(err, errors.NotImplemented):
		return s.sendError(id, err.Error(), 501)
	case errors.Is(err, errors.NotValid):
		return s.sendError(id, err.Error(), 400)
	default:
		return s.sendError(id, err.Error(), 500)
	}
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

// send encodes a response. A failed write ends the serve loop.
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
		return errors.Annotate(err, "writing response")
	}
	return nil
}
