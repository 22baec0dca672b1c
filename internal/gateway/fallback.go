package gateway

import (
	"context"

	"github.com/rs/zerolog"
)

// FallbackSearcher answers from Primary and consults Fallback only when the
// primary search failed. An empty primary answer is a real answer and is returned as is.
type FallbackSearcher struct {
	primary  NewsSearcher
	fallback NewsSearcher
	log      zerolog.Logger
}

// NewFallbackSearcher creates a searcher chain. fallback may be nil.
func NewFallbackSearcher(primary, fallback NewsSearcher, log zerolog.Logger) *FallbackSearcher {
	return &FallbackSearcher{
		primary:  primary,
		fallback: fallback,
		log:      log.With().Str("component", "news_gateway").Logger(),
	}
}

// SearchNews implements NewsSearcher
func (f *FallbackSearcher) SearchNews(ctx context.Context, q Query) SearchResult {
	result := f.primary.SearchNews(ctx, q)
	if result.Status != StatusFailed || f.fallback == nil {
		return result
	}

	f.log.Debug().
		Err(result.Reason).
		Str("query", q.Text).
		Msg("Primary news search failed, trying fallback")

	return f.fallback.SearchNews(ctx, q)
}
