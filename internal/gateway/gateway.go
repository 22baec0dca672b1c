// Package gateway defines the boundary between the aggregation core and the
// upstream price-history and news-search providers.
//
// Upstream calls never return Go errors. They return a result whose Status tells
// the caller which branch to take: use the data, treat it as "nothing found", or
// fall back. Reason carries the failure cause for logging.
package gateway

import (
	"context"
	"time"
)

// Status classifies the outcome of an upstream call
type Status int

const (
	// StatusOK means the upstream answered with at least one record
	StatusOK Status = iota
	// StatusEmpty means the upstream answered successfully with zero records
	StatusEmpty
	// StatusFailed covers network errors, timeouts, non-success statuses and undecodable bodies
	StatusFailed
)

// String returns the lower-case status name used in logs
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PriceRecord is one raw daily observation. Value is nil when the upstream
// reported no value for the period.
type PriceRecord struct {
	Period string  `json:"period"`
	Value  *string `json:"value"`
}

// HistoryResult is the outcome of a price-history request
type HistoryResult struct {
	Status  Status
	Records []PriceRecord
	Reason  error
}

// Article is a raw news article as returned by a search provider.
// PublishedAt is kept as the provider's string so that unparseable timestamps
// survive until formatting.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	SourceName  string `json:"sourceName"`
	ImageURL    string `json:"imageUrl"`
}

// Query describes one news search
type Query struct {
	Text     string
	Sources  []string
	Language string
	SortBy   string
	PageSize int
	From     time.Time
	// NoCache asks the searcher to skip any response cache it keeps
	NoCache bool
}

// SearchResult is the outcome of a news search
type SearchResult struct {
	Status   Status
	Articles []Article
	Reason   error
}

// PriceHistoryFetcher fetches daily observations for a series between two dates
type PriceHistoryFetcher interface {
	FetchPriceHistory(ctx context.Context, seriesKey string, start, end time.Time) HistoryResult
}

// NewsSearcher runs a single news search
type NewsSearcher interface {
	SearchNews(ctx context.Context, q Query) SearchResult
}

// HistoryOK builds a successful history result, or an empty one when records is empty
func HistoryOK(records []PriceRecord) HistoryResult {
	if len(records) == 0 {
		return HistoryResult{Status: StatusEmpty}
	}
	return HistoryResult{Status: StatusOK, Records: records}
}

// HistoryFailed builds a failed history result
func HistoryFailed(reason error) HistoryResult {
	return HistoryResult{Status: StatusFailed, Reason: reason}
}

// SearchOK builds a successful search result, or an empty one when articles is empty
func SearchOK(articles []Article) SearchResult {
	if len(articles) == 0 {
		return SearchResult{Status: StatusEmpty}
	}
	return SearchResult{Status: StatusOK, Articles: articles}
}

// SearchFailed builds a failed search result
func SearchFailed(reason error) SearchResult {
	return SearchResult{Status: StatusFailed, Reason: reason}
}
