package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aristath/energyintel/internal/config"
	"github.com/aristath/energyintel/internal/di"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Port:        8000,
		CacheDBPath: ":memory:",
		EIA: config.EIAConfig{
			BaseURL: "http://127.0.0.1:1",
			Timeout: time.Second,
		},
		NewsAPI: config.NewsAPIConfig{
			BaseURL:       "http://127.0.0.1:1",
			Timeout:       time.Second,
			RatePerMinute: 30,
		},
		NewsCacheTTL:     time.Hour,
		SnapshotInterval: time.Minute,
		News:             &config.NewsProfile{Queries: []string{"energy"}},
	}

	container, _, err := di.Wire(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	return New(Config{
		Log:       zerolog.Nop(),
		Port:      cfg.Port,
		DevMode:   true,
		Container: container,
	})
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method       string
		path         string
		body         string
		expectedCode int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/favicon.ico", "", http.StatusNoContent},
		{http.MethodGet, "/api/live-data", "", http.StatusOK},
		{http.MethodGet, "/api/trending-articles", "", http.StatusOK},
		{http.MethodGet, "/api/oil-history", "", http.StatusOK},
		{http.MethodGet, "/api/oil-history/wti", "", http.StatusOK},
		{http.MethodPost, "/api/chat", `{"message":"gas"}`, http.StatusOK},
		{http.MethodPost, "/api/chat", `{"message":""}`, http.StatusBadRequest},
		{http.MethodGet, "/api/sector-comparison", "", http.StatusOK},
		{http.MethodGet, "/api/renewable-trends", "", http.StatusOK},
		{http.MethodGet, "/api/regional-prices", "", http.StatusOK},
		{http.MethodGet, "/api/carbon-pricing", "", http.StatusOK},
		{http.MethodGet, "/api/system/status", "", http.StatusOK},
		{http.MethodGet, "/api/system/jobs", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doRequest(t, s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestHandleSystemStatus(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/api/system/status", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SystemStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "ok", resp.CacheDB)
	assert.Len(t, resp.CacheTables, 2)
	assert.NotNil(t, resp.SnapshotAge, "snapshot is warmed during wiring")
	assert.Nil(t, resp.NewsCacheAge, "curated results are not cached")
	assert.Positive(t, resp.Goroutines)
}

func TestHandleJobs(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/api/system/jobs", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestHandleIndex(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "energyintel", resp["service"])
	assert.Len(t, resp["endpoints"], len(endpoints))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
