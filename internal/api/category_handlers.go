package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/valentinlamine/MemoryApp/internal/models"
)

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())

	categories, err := s.CategoryService.ListCategories(r.Context(), learnerID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())

	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	category, err := s.CategoryService.CreateCategory(r.Context(), models.Category{
		LearnerID:   learnerID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	category, err := s.CategoryService.UpdateCategory(r.Context(), models.Category{
		ID:          id,
		LearnerID:   learnerID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.CategoryService.DeleteCategory(r.Context(), learnerID, id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
