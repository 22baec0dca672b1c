// Package handlers provides HTTP handlers for price history.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/energyintel/internal/modules/history"
	"github.com/rs/zerolog"
)

// Handler handles price history HTTP requests
type Handler struct {
	resolver *history.Resolver
	now      func() time.Time
	log      zerolog.Logger
}

// NewHandler creates a new price history handler
func NewHandler(resolver *history.Resolver, log zerolog.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		now:      time.Now,
		log:      log.With().Str("handler", "history").Logger(),
	}
}

// seriesResponse keeps the field names the dashboard charts read
type seriesResponse struct {
	Labels     []string       `json:"labels"`
	Prices     []float64      `json:"prices"`
	Source     string         `json:"source"`
	SourceType history.Source `json:"source_type"`
	OilType    string         `json:"oil_type"`
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	DataPoints int            `json:"data_points"`
	Stats      history.Stats  `json:"stats"`
	SMA5       []float64      `json:"sma5,omitempty"`
}

// HandleGetOilHistory handles GET /api/oil-history/{instrument}
func (h *Handler) HandleGetOilHistory(w http.ResponseWriter, r *http.Request, instrument string) {
	series := h.resolver.Resolve(r.Context(), instrument, h.now())

	h.writeJSON(w, http.StatusOK, seriesResponse{
		Labels:     series.Labels,
		Prices:     series.Prices,
		Source:     series.Provenance,
		SourceType: series.Source,
		OilType:    series.Instrument,
		StartDate:  series.RangeStart.Format("2006-01-02"),
		EndDate:    series.RangeEnd.Format("2006-01-02"),
		DataPoints: series.Len(),
		Stats:      series.Stats,
		SMA5:       series.SMA5,
	})
}

// HandleGetInstruments handles GET /api/oil-history
func (h *Handler) HandleGetInstruments(w http.ResponseWriter, r *http.Request) {
	instruments := history.ListInstruments()

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"instruments": instruments,
			"count":       len(instruments),
		},
		"metadata": map[string]interface{}{
			"timestamp": h.now().Format(time.RFC3339),
		},
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
