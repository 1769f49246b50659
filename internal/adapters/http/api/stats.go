package api

import "net/http"

// StatsHandler exposes pipeline run statistics.
type StatsHandler struct {
	deps Dependencies
}

// NewStatsHandler creates a stats handler.
func NewStatsHandler(deps Dependencies) *StatsHandler {
	return &StatsHandler{deps: deps}
}

// HandleStats returns the most recent run's statistics.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Stats())
}
