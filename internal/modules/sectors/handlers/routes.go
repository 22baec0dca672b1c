package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers sector analytics routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/sector-comparison", h.HandleGetSectorComparison)
	r.Get("/renewable-trends", h.HandleGetRenewableTrends)
	r.Get("/regional-prices", h.HandleGetRegionalPrices)
	r.Get("/carbon-pricing", h.HandleGetCarbonPricing)
}
