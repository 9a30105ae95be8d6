/*
Package server implements msgpack IPC for eomi queries.

The server reads msgpack encoded requests from stdin and writes one msgpack
encoded response per request to stdout. Logs go to stderr.

# IPC

Every request carries an ID and an action. Once training is done the server
announces itself with a status message:

	{"id": "", "status": "ready"}

Ending predictions use the "predict" action:

	{"id": "req_001", "action": "predict", "r": "었다", "min_score": 0.3}

The server replies with the verdict and the timing in microseconds:

	{"id": "req_001", "p": {"r": "었다", "score": 0.92, "valid": true, ...}, "cached": false, "t": 31}

Full extraction ranks every valid ending of the graph, best first:

	{"id": "req_002", "action": "extract", "min_score": 0.5, "limit": 20}

The "stats" action returns counters of the trained graph, "health" a plain
status. Failed requests are answered with an ErrorResponse whose code follows
HTTP conventions: 400 for malformed requests, 501 when no scorer is set and
503 while the extractor is untrained.

Predictions are cached per (ending, min score) in an LRU cache, the trained
graph never changes while the server runs.
*/
package server

import "github.com/bastiangx/eomi/pkg/eomi"

// Request is any message sent by a client
type Request struct {
	ID       string   `msgpack:"id"`
	Action   string   `msgpack:"action"`              // "predict", "extract", "stats", "health"
	R        string   `msgpack:"r,omitempty"`         // for "predict"
	MinScore *float64 `msgpack:"min_score,omitempty"` // server default when nil
	Limit    int      `msgpack:"limit,omitempty"`     // for "extract"
}

// PredictResponse - single ending verdict
type PredictResponse struct {
	ID         string          `msgpack:"id"`
	Prediction eomi.Prediction `msgpack:"p"`
	Cached     bool            `msgpack:"cached"`
	TimeTaken  int64           `msgpack:"t"`
}

// ExtractResponse - ranked valid endings
type ExtractResponse struct {
	ID        string            `msgpack:"id"`
	Endings   []eomi.Prediction `msgpack:"e"`
	Count     int               `msgpack:"c"`
	TimeTaken int64             `msgpack:"t"`
}

// StatsResponse - trained graph counters
type StatsResponse struct {
	ID    string     `msgpack:"id"`
	Stats eomi.Stats `msgpack:"stats"`
}

// StatusResponse - readiness and health replies
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
