// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/TTMK7777/release-creator/internal/app"
	"github.com/TTMK7777/release-creator/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// AddRecords ingests a batch into the dataset store.
	AddRecords(ctx context.Context, records []model.RankingRecord) (int, []model.Warning, error)

	// ClearRecords empties the dataset store.
	ClearRecords(ctx context.Context) error

	// CountRecords returns the dataset size.
	CountRecords(ctx context.Context) int

	// Analyze runs the engine over the supplied records only.
	Analyze(ctx context.Context, records []model.RankingRecord) (model.Report, error)

	// AnalyzeStoredWith runs the engine over the stored dataset with
	// optional per-request threshold overrides.
	AnalyzeStoredWith(ctx context.Context, opts ...app.Option) (model.Report, error)
}

// Server wires HTTP routes for the analysis API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	recordsHandler *RecordsHandler
	analyzeHandler *AnalyzeHandler
	topicsHandler  *TopicsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		recordsHandler: NewRecordsHandler(deps),
		analyzeHandler: NewAnalyzeHandler(deps),
		topicsHandler:  NewTopicsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/records", MetricsMiddleware(s.recordsHandler.HandleRecords, "records"))
	mux.HandleFunc("/analyze", MetricsMiddleware(s.analyzeHandler.HandlePostAnalyze, "analyze"))
	mux.HandleFunc("/topics", MetricsMiddleware(s.topicsHandler.HandleGetTopics, "topics"))
}

// recordBatch mirrors the request body for POST /records and POST /analyze.
type recordBatch struct {
	Records []model.RankingRecord `json:"records"`
}

func (b recordBatch) validate() error {
	if len(b.Records) == 0 {
		return ErrEmptyBatch
	}
	return nil
}

// ingestResponse acknowledges a POST /records batch.
type ingestResponse struct {
	Status   string          `json:"status"`
	Added    int             `json:"added"`
	Rejected int             `json:"rejected"`
	Total    int             `json:"dataset_size"`
	Warnings []model.Warning `json:"warnings,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
