package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers market data routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/live-data", h.HandleGetLiveData)
}
