// internal/httpserver/routes_stats.go
//
// GET /stats → aggregate results plus the most recent finished rounds.
// Answers 503 when the server runs without a results log.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-engine/internal/results"
)

// statsRes is returned by /stats.
type statsRes struct {
	Summary results.Summary `json:"summary"`
	Recent  []results.Entry `json:"recent"`
}

// handleStats returns the results summary. ?limit=N bounds the recent list (default 10).
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		writeError(w, http.StatusServiceUnavailable, "stats_disabled")
		return
	}
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			writeError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = n
	}

	sum, err := s.results.Summary(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("results summary")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	recent, err := s.results.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("recent results")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(statsRes{Summary: sum, Recent: recent})
}
