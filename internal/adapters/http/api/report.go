package api

import (
	"encoding/json"
	"net/http"
)

// ReportHandler serves the analytical report.
type ReportHandler struct {
	deps Dependencies
}

// NewReportHandler creates a report handler.
func NewReportHandler(deps Dependencies) *ReportHandler {
	return &ReportHandler{deps: deps}
}

// HandleReport runs the pipeline and returns the report as JSON.
// ?pretty=1 indents the output.
func (h *ReportHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	report, err := h.deps.Report(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "pipeline_failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "1" {
		enc.SetIndent("", "  ")
	}
	_ = enc.Encode(report)
}
