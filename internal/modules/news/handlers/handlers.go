// Package handlers provides HTTP handlers for the news feed.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/energyintel/internal/modules/news"
	"github.com/rs/zerolog"
)

// Handler handles news HTTP requests
type Handler struct {
	engine *news.Engine
	log    zerolog.Logger
}

// NewHandler creates a new news handler
func NewHandler(engine *news.Engine, log zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		log:    log.With().Str("handler", "news").Logger(),
	}
}

type articlesResponse struct {
	Articles    []news.RankedArticle `json:"articles"`
	Provenance  news.Provenance      `json:"provenance"`
	RefreshedAt string               `json:"refreshed_at"`
	Count       int                  `json:"count"`
}

// HandleGetTrendingArticles handles GET /api/trending-articles
func (h *Handler) HandleGetTrendingArticles(w http.ResponseWriter, r *http.Request) {
	h.writeResult(w, h.engine.GetArticles(r.Context()))
}

// HandleRefresh handles POST /api/trending-articles/refresh
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	h.log.Info().Msg("Manual news refresh requested")
	h.engine.Invalidate()
	h.writeResult(w, h.engine.GetArticles(r.Context()))
}

func (h *Handler) writeResult(w http.ResponseWriter, result news.Result) {
	h.writeJSON(w, http.StatusOK, articlesResponse{
		Articles:    result.Articles,
		Provenance:  result.Provenance,
		RefreshedAt: result.RefreshedAt.Format(time.RFC3339),
		Count:       len(result.Articles),
	})
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
