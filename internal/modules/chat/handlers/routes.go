package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers chat routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.HandleChat)
}
