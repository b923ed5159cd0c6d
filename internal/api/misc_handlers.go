package api

import (
	"net/http"
	"time"

	"github.com/valentinlamine/MemoryApp/internal/auth"
	"github.com/valentinlamine/MemoryApp/internal/logger"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())

	stats, err := s.StatsService.Dashboard(r.Context(), learnerID, time.Now())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleSignOut publishes a session-invalidated event. The session
// service subscribes and drops the learner's in-flight queue, forcing a
// recomputation on next access.
func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	learnerID := learnerFromContext(r.Context())

	s.AuthHub.Publish(auth.Event{Kind: auth.SessionInvalidated, LearnerID: learnerID})
	log.Info("learner signed out: learner_id=%s", learnerID)
	w.WriteHeader(http.StatusNoContent)
}
