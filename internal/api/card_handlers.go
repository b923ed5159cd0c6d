package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/models"
)

type createCardRequest struct {
	CategoryID string `json:"category_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	ImageURL   string `json:"image_url"`
	AudioURL   string `json:"audio_url"`
	Difficulty int    `json:"difficulty"`
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())
	filter := models.CardFilter{CategoryID: r.URL.Query().Get("category_id")}

	cards, err := s.CardService.ListCards(r.Context(), learnerID, filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if cards == nil {
		cards = []models.Card{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"cards": cards})
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	card, err := s.CardService.GetCard(r.Context(), learnerID, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	learnerID := learnerFromContext(r.Context())

	var req createCardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.CardService.CreateCard(r.Context(), models.Card{
		LearnerID:  learnerID,
		CategoryID: req.CategoryID,
		Question:   req.Question,
		Answer:     req.Answer,
		ImageURL:   req.ImageURL,
		AudioURL:   req.AudioURL,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("card created via API: id=%s", card.ID)
	writeJSON(w, http.StatusCreated, card)
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	learnerID := learnerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req createCardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.CardService.UpdateCard(r.Context(), models.Card{
		ID:         id,
		LearnerID:  learnerID,
		CategoryID: req.CategoryID,
		Question:   req.Question,
		Answer:     req.Answer,
		ImageURL:   req.ImageURL,
		AudioURL:   req.AudioURL,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("card updated via API: id=%s", card.ID)
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.CardService.DeleteCard(r.Context(), learnerID, id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
