package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/db"
)

// handleStatistics reports screening totals. A query failure degrades to
// zeroed statistics rather than an error.
func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetStatistics(r.Context())
	if err != nil {
		s.logger.Warn("failed to compute statistics, returning zeros", zap.Error(err))
		stats = &db.Statistics{}
	}
	s.jsonResponse(w, http.StatusOK, stats)
}
