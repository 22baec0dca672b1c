package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aristath/energyintel/internal/gateway"
	"github.com/aristath/energyintel/internal/modules/history"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	result gateway.HistoryResult
}

func (s stubFetcher) FetchPriceHistory(context.Context, string, time.Time, time.Time) gateway.HistoryResult {
	return s.result
}

func setupRouter(result gateway.HistoryResult) *chi.Mux {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	resolver := history.NewResolver(stubFetcher{result: result}, rand.NewSource(1), logger)

	handler := NewHandler(resolver, logger)
	handler.now = func() time.Time { return time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC) }

	router := chi.NewRouter()
	router.Route("/api", handler.RegisterRoutes)
	return router
}

func TestHandleGetOilHistory(t *testing.T) {
	v1, v2 := "70.0", "72.5"
	official := gateway.HistoryOK([]gateway.PriceRecord{
		{Period: "2024-06-13", Value: &v2},
		{Period: "2024-06-12", Value: &v1},
	})

	tests := []struct {
		name       string
		instrument string
		result     gateway.HistoryResult
		validate   func(*testing.T, seriesResponse)
	}{
		{
			name:       "official series",
			instrument: "brent",
			result:     official,
			validate: func(t *testing.T, resp seriesResponse) {
				assert.Equal(t, history.SourceOfficial, resp.SourceType)
				assert.Equal(t, history.ProvenanceOfficial, resp.Source)
				assert.Equal(t, []float64{70.0, 72.5}, resp.Prices)
				assert.Equal(t, []string{"Jun 12", "Jun 13"}, resp.Labels)
				assert.Equal(t, "2024-06-12", resp.StartDate)
				assert.Equal(t, "2024-06-13", resp.EndDate)
				assert.Equal(t, 2, resp.DataPoints)
				assert.Equal(t, "Brent", resp.OilType)
			},
		},
		{
			name:       "upstream failure degrades to synthetic",
			instrument: "WTI",
			result:     gateway.HistoryFailed(errors.New("timeout")),
			validate: func(t *testing.T, resp seriesResponse) {
				assert.Equal(t, history.SourceSynthetic, resp.SourceType)
				assert.Equal(t, history.ProvenanceSynthetic, resp.Source)
				assert.Equal(t, len(resp.Labels), len(resp.Prices))
				assert.Equal(t, "2024-05-16", resp.StartDate)
				assert.Equal(t, "2024-06-14", resp.EndDate)
				assert.NotEmpty(t, resp.SMA5)
			},
		},
		{
			name:       "unknown instrument is not an error",
			instrument: "urals",
			result:     official,
			validate: func(t *testing.T, resp seriesResponse) {
				assert.Equal(t, history.SourceSynthetic, resp.SourceType)
				assert.Equal(t, "Urals", resp.OilType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/oil-history/"+tt.instrument, nil)
			w := httptest.NewRecorder()

			setupRouter(tt.result).ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp seriesResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			tt.validate(t, resp)
		})
	}
}

func TestHandleGetInstruments(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/oil-history/", nil)
	w := httptest.NewRecorder()

	setupRouter(gateway.HistoryOK(nil)).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Instruments []history.Instrument `json:"instruments"`
			Count       int                  `json:"count"`
		} `json:"data"`
		Metadata map[string]string `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Count)
	assert.Equal(t, "brent", resp.Data.Instruments[0].Key)
	assert.Equal(t, "RWTC", resp.Data.Instruments[1].SeriesKey)
	assert.Equal(t, "2024-06-14T12:00:00Z", resp.Metadata["timestamp"])
}
