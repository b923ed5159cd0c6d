package api

import (
	"encoding/json"
	"net/http"

	"github.com/valentinlamine/MemoryApp/internal/auth"
	"github.com/valentinlamine/MemoryApp/internal/errors"
	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/services"
)

// Server wires the HTTP boundary to the service layer. The presentation
// layer (a separate SPA) is a pure view over these JSON endpoints.
type Server struct {
	CardService     services.CardService
	CategoryService services.CategoryService
	SessionService  services.SessionService
	SettingsService services.SettingsService
	StatsService    services.StatsService
	TokenVerifier   *auth.Verifier
	AuthHub         *auth.Hub
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.NewBadRequestError("invalid JSON body")
	}
	return nil
}

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	// Wrap unknown errors as repository failures; nothing leaves the core
	// without a code.
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewRepositoryError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else {
		log.Warn("client error: %v", appErr)
	}

	writeJSON(w, appErr.Status, map[string]any{
		"error": map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
