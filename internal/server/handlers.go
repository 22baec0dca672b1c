package server

import (
	"encoding/json"
	"net/http"
)

// endpoints is the index served at /
var endpoints = []string{
	"GET /health",
	"GET /api/live-data",
	"GET /api/trending-articles",
	"POST /api/trending-articles/refresh",
	"GET /api/oil-history",
	"GET /api/oil-history/{instrument}",
	"POST /api/chat",
	"GET /api/sector-comparison",
	"GET /api/renewable-trends",
	"GET /api/regional-prices",
	"GET /api/carbon-pricing",
	"GET /api/system/status",
	"GET /api/system/jobs",
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"service": "energyintel",
	}

	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"service":   "energyintel",
		"endpoints": endpoints,
	})
}

func (s *Server) handleFavicon(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
