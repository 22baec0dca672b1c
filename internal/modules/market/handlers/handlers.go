// Package handlers provides HTTP handlers for live market quotes.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/energyintel/internal/modules/market"
	"github.com/rs/zerolog"
)

// Handler handles live market data requests
type Handler struct {
	snapshot *market.Snapshot
	log      zerolog.Logger
}

// NewHandler creates a new market data handler
func NewHandler(snapshot *market.Snapshot, log zerolog.Logger) *Handler {
	return &Handler{
		snapshot: snapshot,
		log:      log.With().Str("handler", "market").Logger(),
	}
}

type quote struct {
	CurrentPrice float64 `json:"current_price"`
}

type marketData struct {
	OilPrices        map[string]quote `json:"oil_prices"`
	NaturalGasPrices quote            `json:"natural_gas_prices"`
}

type snapshotData struct {
	MarketData *marketData `json:"market_data,omitempty"`
	Timestamp  string      `json:"timestamp,omitempty"`
}

type liveDataResponse struct {
	Data       snapshotData `json:"data"`
	LastUpdate string       `json:"last_update"`
	Status     string       `json:"status"`
}

// HandleGetLiveData handles GET /api/live-data
func (h *Handler) HandleGetLiveData(w http.ResponseWriter, r *http.Request) {
	response := liveDataResponse{
		LastUpdate: h.snapshot.LastUpdate(),
		Status:     "connected",
	}

	if snap, ok := h.snapshot.Current(); ok {
		response.Data = snapshotData{
			MarketData: &marketData{
				OilPrices: map[string]quote{
					market.Brent: {CurrentPrice: snap.Prices[market.Brent]},
					market.WTI:   {CurrentPrice: snap.Prices[market.WTI]},
				},
				NaturalGasPrices: quote{CurrentPrice: snap.Prices[market.Gas]},
			},
			Timestamp: snap.UpdatedAt.Format(time.RFC3339),
		}
	}

	h.writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
