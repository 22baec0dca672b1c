package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers price history routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/oil-history", func(r chi.Router) {
		r.Get("/", h.HandleGetInstruments)
		r.Get("/{instrument}", func(w http.ResponseWriter, r *http.Request) {
			instrument := chi.URLParam(r, "instrument")
			h.HandleGetOilHistory(w, r, instrument)
		})
	})
}
