package api

import (
	"net/http"
	"time"

	"github.com/valentinlamine/MemoryApp/internal/errors"
	"github.com/valentinlamine/MemoryApp/internal/logger"
)

type gradeRequest struct {
	CardID  string `json:"card_id"`
	Quality int    `json:"quality"`
}

func (s *Server) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	learnerID := learnerFromContext(r.Context())

	snap, err := s.SessionService.Open(r.Context(), learnerID, time.Now())
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Info("review session opened: total=%d", snap.Total)
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleSessionState(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())

	snap, err := s.SessionService.State(r.Context(), learnerID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleSessionQueue(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())

	queue, err := s.SessionService.Queue(r.Context(), learnerID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, queue)
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())

	snap, err := s.SessionService.Reveal(r.Context(), learnerID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleGrade(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	learnerID := learnerFromContext(r.Context())

	var req gradeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.CardID == "" {
		handleError(w, r, errors.NewBadRequestError("card_id required"))
		return
	}

	event, snap, err := s.SessionService.Grade(r.Context(), learnerID, req.CardID, req.Quality, time.Now())
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("card graded: card_id=%s, quality=%d", req.CardID, event.Quality)
	writeJSON(w, http.StatusOK, map[string]any{
		"next_due_at": event.NextDueAt,
		"event":       event,
		"session":     snap,
	})
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())

	snap, err := s.SessionService.Restart(r.Context(), learnerID, time.Now())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())

	s.SessionService.Close(r.Context(), learnerID)
	w.WriteHeader(http.StatusNoContent)
}
