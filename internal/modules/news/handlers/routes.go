package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers news routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/trending-articles", func(r chi.Router) {
		r.Get("/", h.HandleGetTrendingArticles)
		r.Post("/refresh", h.HandleRefresh)
	})
}
