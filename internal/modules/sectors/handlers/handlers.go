// Package handlers provides HTTP handlers for sector analytics.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/energyintel/internal/modules/sectors"
	"github.com/rs/zerolog"
)

// Handler handles sector analytics requests
type Handler struct {
	generator *sectors.Generator
	now       func() time.Time
	log       zerolog.Logger
}

// NewHandler creates a new sector analytics handler
func NewHandler(generator *sectors.Generator, log zerolog.Logger) *Handler {
	return &Handler{
		generator: generator,
		now:       time.Now,
		log:       log.With().Str("handler", "sectors").Logger(),
	}
}

// HandleGetSectorComparison handles GET /api/sector-comparison
func (h *Handler) HandleGetSectorComparison(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.generator.SectorComparison(h.now()))
}

// HandleGetRenewableTrends handles GET /api/renewable-trends
func (h *Handler) HandleGetRenewableTrends(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.generator.RenewableTrends(h.now()))
}

// HandleGetRegionalPrices handles GET /api/regional-prices
func (h *Handler) HandleGetRegionalPrices(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.generator.RegionalPrices())
}

// HandleGetCarbonPricing handles GET /api/carbon-pricing
func (h *Handler) HandleGetCarbonPricing(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.generator.CarbonPricing(h.now()))
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
