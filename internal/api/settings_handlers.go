package api

import (
	"net/http"
)

type updateSettingsRequest struct {
	CardsPerDay int `json:"cards_per_day"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())

	settings, err := s.SettingsService.GetSettings(r.Context(), learnerID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())

	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	settings, err := s.SettingsService.UpdateSettings(r.Context(), learnerID, req.CardsPerDay)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
