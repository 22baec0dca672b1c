package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aristath/energyintel/internal/modules/market"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *chi.Mux {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	snapshot := market.NewSnapshot(rand.NewSource(1), logger)

	router := chi.NewRouter()
	router.Route("/api", NewHandler(snapshot, logger).RegisterRoutes)
	return router
}

func TestHandleChat(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode int
		validate     func(*testing.T, map[string]string)
	}{
		{
			name:         "oil question quotes anchor prices before first refresh",
			body:         `{"message":"What's the oil price?"}`,
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, resp map[string]string) {
				assert.Contains(t, resp["response"], "$74.25/barrel")
				assert.Contains(t, resp["response"], "$70.80/barrel")
			},
		},
		{
			name:         "greeting",
			body:         `{"message":"hello"}`,
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, resp map[string]string) {
				assert.Contains(t, resp["response"], "Energy Intelligence Assistant")
			},
		},
		{
			name:         "empty message",
			body:         `{"message":""}`,
			expectedCode: http.StatusBadRequest,
			validate: func(t *testing.T, resp map[string]string) {
				assert.Equal(t, "Message is required", resp["error"])
			},
		},
		{
			name:         "whitespace message",
			body:         `{"message":"   "}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing field",
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed json",
			body:         `{"message":`,
			expectedCode: http.StatusBadRequest,
		},
	}

	router := setupRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedCode, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.validate != nil {
				tt.validate(t, resp)
			}
		})
	}
}

func TestHandleChat_MethodNotAllowed(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
