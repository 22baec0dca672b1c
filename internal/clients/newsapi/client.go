// Package newsapi provides a client for the newsapi.org "everything" search endpoint.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aristath/energyintel/internal/clientdata"
	"github.com/aristath/energyintel/internal/gateway"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// ErrMissingAPIKey is reported when no API key is configured
var ErrMissingAPIKey = errors.New("newsapi: api key not configured")

// Config configures the client
type Config struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	RatePerMinute int
	// CacheTTL enables per-query response caching when positive
	CacheTTL time.Duration
}

// Client searches news through newsapi.org
type Client struct {
	apiKey    string
	baseURL   string
	cacheTTL  time.Duration
	client    *http.Client
	limiter   *rate.Limiter
	cacheRepo *clientdata.Repository
	log       zerolog.Logger
}

// NewClient creates a new NewsAPI client.
// cacheRepo is optional - if nil, caching is disabled.
func NewClient(cfg Config, cacheRepo *clientdata.Repository, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	perMinute := cfg.RatePerMinute
	if perMinute <= 0 {
		perMinute = 30
	}

	return &Client{
		apiKey:    cfg.APIKey,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		cacheTTL:  cfg.CacheTTL,
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 6),
		cacheRepo: cacheRepo,
		log:       log.With().Str("client", "newsapi").Logger(),
	}
}

type apiArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

type apiResponse struct {
	Status       string       `json:"status"`
	Code         string       `json:"code"`
	Message      string       `json:"message"`
	TotalResults int          `json:"totalResults"`
	Articles     []apiArticle `json:"articles"`
}

// SearchNews implements gateway.NewsSearcher
func (c *Client) SearchNews(ctx context.Context, q gateway.Query) gateway.SearchResult {
	if c.apiKey == "" {
		return gateway.SearchFailed(ErrMissingAPIKey)
	}

	params := c.buildParams(q)
	cacheKey := params.Encode()

	if q.NoCache {
		c.log.Debug().Str("query", q.Text).Msg("Cache bypassed")
	} else if articles, ok := c.getFromCache(cacheKey); ok {
		c.log.Debug().Str("query", q.Text).Int("articles", len(articles)).Msg("Cache hit")
		return gateway.SearchOK(articles)
	}

	articles, err := c.search(ctx, params)
	if err != nil {
		c.log.Warn().Err(err).Str("query", q.Text).Msg("News search failed")
		return gateway.SearchFailed(err)
	}

	if len(articles) == 0 {
		c.log.Info().Str("query", q.Text).Msg("News search returned no articles")
		return gateway.SearchOK(nil)
	}

	c.log.Debug().Str("query", q.Text).Int("articles", len(articles)).Msg("News search completed")
	c.storeInCache(cacheKey, articles)

	return gateway.SearchOK(articles)
}

// buildParams holds everything except the API key, so the encoded form doubles as a cache key
func (c *Client) buildParams(q gateway.Query) url.Values {
	params := url.Values{}
	params.Set("q", q.Text)
	if len(q.Sources) > 0 {
		params.Set("sources", strings.Join(q.Sources, ","))
	}
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if !q.From.IsZero() {
		params.Set("from", q.From.Format("2006-01-02"))
	}
	return params
}

func (c *Client) search(ctx context.Context, params url.Values) ([]gateway.Article, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	withKey := url.Values{}
	for k, v := range params {
		withKey[k] = v
	}
	withKey.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/everything?"+withKey.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	var body apiResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && body.Message != "" {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, body.Message)
		}
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to parse response: %w", decodeErr)
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("API error %s: %s", body.Code, body.Message)
	}

	articles := make([]gateway.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		articles = append(articles, gateway.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			SourceName:  a.Source.Name,
			ImageURL:    a.URLToImage,
		})
	}

	return articles, nil
}

func (c *Client) getFromCache(key string) ([]gateway.Article, bool) {
	if c.cacheRepo == nil || c.cacheTTL <= 0 {
		return nil, false
	}

	data, err := c.cacheRepo.GetIfFresh(clientdata.TableNewsAPISearch, key)
	if err != nil || data == nil {
		return nil, false
	}

	var articles []gateway.Article
	if err := json.Unmarshal(data, &articles); err != nil || len(articles) == 0 {
		return nil, false
	}
	return articles, true
}

func (c *Client) storeInCache(key string, articles []gateway.Article) {
	if c.cacheRepo == nil || c.cacheTTL <= 0 {
		return
	}
	if err := c.cacheRepo.Store(clientdata.TableNewsAPISearch, key, articles, c.cacheTTL); err != nil {
		c.log.Warn().Err(err).Msg("Failed to cache news search")
	}
}
