// Package eia provides a client for the U.S. Energy Information Administration v2 API.
package eia

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aristath/energyintel/internal/clientdata"
	"github.com/aristath/energyintel/internal/gateway"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	spotPricePath = "/petroleum/pri/spt/data/"
	maxRecords    = 50
	dateLayout    = "2006-01-02"
)

var (
	// ErrMissingAPIKey is reported when no API key is configured
	ErrMissingAPIKey = errors.New("eia: api key not configured")
	// ErrUnknownSeries is reported for an empty series key
	ErrUnknownSeries = errors.New("eia: unknown series")
)

// Config configures the client
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// CacheTTL enables caching of raw responses when positive
	CacheTTL time.Duration
}

// Client fetches daily spot prices from EIA
type Client struct {
	apiKey    string
	baseURL   string
	cacheTTL  time.Duration
	client    *http.Client
	limiter   *rate.Limiter
	cacheRepo *clientdata.Repository
	log       zerolog.Logger
}

// NewClient creates a new EIA client.
// cacheRepo is optional - if nil or cfg.CacheTTL is zero, caching is disabled.
func NewClient(cfg Config, cacheRepo *clientdata.Repository, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		apiKey:    cfg.APIKey,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		cacheTTL:  cfg.CacheTTL,
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Limit(2), 2),
		cacheRepo: cacheRepo,
		log:       log.With().Str("client", "eia").Logger(),
	}
}

// apiResponse mirrors the parts of the EIA v2 envelope we read
type apiResponse struct {
	Response struct {
		Data []struct {
			Period string          `json:"period"`
			Value  json.RawMessage `json:"value"`
		} `json:"data"`
	} `json:"response"`
	Error string `json:"error"`
}

// FetchPriceHistory implements gateway.PriceHistoryFetcher.
// Records are returned newest first, at most 50 of them.
func (c *Client) FetchPriceHistory(ctx context.Context, seriesKey string, start, end time.Time) gateway.HistoryResult {
	if seriesKey == "" {
		return gateway.HistoryFailed(ErrUnknownSeries)
	}
	if c.apiKey == "" {
		return gateway.HistoryFailed(ErrMissingAPIKey)
	}

	cacheKey := fmt.Sprintf("%s:%s:%s", seriesKey, start.Format(dateLayout), end.Format(dateLayout))
	if records, ok := c.getFromCache(cacheKey, true); ok {
		c.log.Debug().Str("series", seriesKey).Int("records", len(records)).Msg("Cache hit")
		return gateway.HistoryOK(records)
	}

	records, err := c.fetch(ctx, seriesKey, start, end)
	if err != nil {
		if stale, ok := c.getFromCache(cacheKey, false); ok {
			c.log.Warn().Err(err).Str("series", seriesKey).Msg("API failed, using stale cached history")
			return gateway.HistoryOK(stale)
		}
		c.log.Warn().Err(err).Str("series", seriesKey).Msg("Price history request failed")
		return gateway.HistoryFailed(err)
	}

	if len(records) == 0 {
		c.log.Info().Str("series", seriesKey).Msg("Price history request returned no records")
		return gateway.HistoryOK(nil)
	}

	c.storeInCache(cacheKey, records)
	return gateway.HistoryOK(records)
}

func (c *Client) fetch(ctx context.Context, seriesKey string, start, end time.Time) ([]gateway.PriceRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("frequency", "daily")
	params.Set("data[0]", "value")
	params.Set("facets[series][]", seriesKey)
	params.Set("start", start.Format(dateLayout))
	params.Set("end", end.Format(dateLayout))
	params.Set("sort[0][column]", "period")
	params.Set("sort[0][direction]", "desc")
	params.Set("offset", "0")
	params.Set("length", fmt.Sprintf("%d", maxRecords))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+spotPricePath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	c.log.Debug().
		Str("series", seriesKey).
		Str("start", start.Format(dateLayout)).
		Str("end", end.Format(dateLayout)).
		Msg("Fetching price history")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("API error: %s", body.Error)
	}

	records := make([]gateway.PriceRecord, 0, len(body.Response.Data))
	for _, row := range body.Response.Data {
		records = append(records, gateway.PriceRecord{
			Period: row.Period,
			Value:  rawValue(row.Value),
		})
	}

	return records, nil
}

// rawValue normalizes EIA values, which arrive as strings, numbers or null
func rawValue(raw json.RawMessage) *string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
	} else {
		s = string(raw)
	}
	return &s
}

func (c *Client) cacheEnabled() bool {
	return c.cacheRepo != nil && c.cacheTTL > 0
}

// getFromCache reads cached records; fresh selects between GetIfFresh and stale Get
func (c *Client) getFromCache(key string, fresh bool) ([]gateway.PriceRecord, bool) {
	if !c.cacheEnabled() {
		return nil, false
	}

	var (
		data json.RawMessage
		err  error
	)
	if fresh {
		data, err = c.cacheRepo.GetIfFresh(clientdata.TableEIAHistory, key)
	} else {
		data, err = c.cacheRepo.Get(clientdata.TableEIAHistory, key)
	}
	if err != nil || data == nil {
		return nil, false
	}

	var records []gateway.PriceRecord
	if err := json.Unmarshal(data, &records); err != nil || len(records) == 0 {
		return nil, false
	}
	return records, true
}

func (c *Client) storeInCache(key string, records []gateway.PriceRecord) {
	if !c.cacheEnabled() {
		return
	}
	if err := c.cacheRepo.Store(clientdata.TableEIAHistory, key, records, c.cacheTTL); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Failed to cache price history")
	}
}
