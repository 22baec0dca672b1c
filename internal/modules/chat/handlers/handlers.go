// Package handlers provides the HTTP handler for the market assistant chat.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aristath/energyintel/internal/modules/chat"
	"github.com/aristath/energyintel/internal/modules/market"
	"github.com/rs/zerolog"
)

// maxMessageBytes bounds the request body
const maxMessageBytes = 16 << 10

// Handler handles chat requests
type Handler struct {
	snapshot *market.Snapshot
	log      zerolog.Logger
}

// NewHandler creates a new chat handler
func NewHandler(snapshot *market.Snapshot, log zerolog.Logger) *Handler {
	return &Handler{
		snapshot: snapshot,
		log:      log.With().Str("handler", "chat").Logger(),
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// HandleChat handles POST /api/chat
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageBytes)).Decode(&req); err != nil {
		h.log.Debug().Err(err).Msg("Invalid chat request body")
		h.writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		h.writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	topic := chat.Classify(req.Message)
	h.log.Debug().Str("topic", string(topic)).Msg("Answering chat message")

	h.writeJSON(w, http.StatusOK, chatResponse{
		Response: chat.Respond(req.Message, chat.ContextFrom(h.snapshot)),
	})
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
