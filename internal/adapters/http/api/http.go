// Package api declares HTTP contracts and route registration helpers
// for serve mode.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tmcrae/batstat/internal/app"
	"github.com/tmcrae/batstat/internal/domain/model"
	"github.com/tmcrae/batstat/pkg/metrics"
)

// Dependencies required by the HTTP handlers. An interface bundle keeps
// the handler layer loosely coupled to the pipeline implementation.
type Dependencies interface {
	// Report runs the pipeline and returns the assembled report.
	Report(ctx context.Context) (*model.Report, error)

	// Stats describes the most recent run.
	Stats() app.RunStats
}

// Server wires HTTP routes for the report API.
type Server struct {
	reportHandler *ReportHandler
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
}

// NewServer creates an API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		reportHandler: NewReportHandler(deps),
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", instrument(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", instrument(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/report", instrument(s.reportHandler.HandleReport, "report"))
	mux.Handle("/metrics", metrics.Handler())
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
