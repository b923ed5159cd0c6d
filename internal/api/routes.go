package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Post("/auth/signout", s.handleSignOut)

		r.Get("/cards", s.handleListCards)
		r.Post("/cards", s.handleCreateCard)
		r.Get("/cards/{id}", s.handleGetCard)
		r.Put("/cards/{id}", s.handleUpdateCard)
		r.Delete("/cards/{id}", s.handleDeleteCard)

		r.Get("/categories", s.handleListCategories)
		r.Post("/categories", s.handleCreateCategory)
		r.Put("/categories/{id}", s.handleUpdateCategory)
		r.Delete("/categories/{id}", s.handleDeleteCategory)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleUpdateSettings)

		r.Get("/dashboard", s.handleDashboard)

		r.Route("/review/session", func(r chi.Router) {
			r.Post("/", s.handleOpenSession)
			r.Get("/", s.handleSessionState)
			r.Delete("/", s.handleCloseSession)
			r.Get("/queue", s.handleSessionQueue)
			r.Post("/reveal", s.handleReveal)
			r.Post("/grade", s.handleGrade)
			r.Post("/restart", s.handleRestart)
		})
	})

	return r
}
