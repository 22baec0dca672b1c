package news

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aristath/energyintel/internal/gateway"
	"github.com/rs/zerolog"
)

// Config controls how the engine queries upstream and how long results live
type Config struct {
	Queries        []string
	MaxQueries     int
	MaxRawArticles int
	PageSize       int
	Language       string
	SortBy         string
	Sources        []string
	TTL            time.Duration
	// RefreshTimeout bounds a whole refresh sequence
	RefreshTimeout time.Duration
}

type cacheEntry struct {
	result Result
}

// Engine owns the news cache. The cache is replaced by pointer swap, so readers
// always see a complete result. Only the reader that wins the refresh lock waits
// on upstream; the others get the cached or curated list.
type Engine struct {
	searcher gateway.NewsSearcher
	cfg      Config

	cache     atomic.Pointer[cacheEntry]
	refreshMu sync.Mutex
	// set after Invalidate or a curated fallback; the next refresh goes upstream
	bypassGateway atomic.Bool

	now func() time.Time
	log zerolog.Logger
}

// NewEngine creates a news engine
func NewEngine(searcher gateway.NewsSearcher, cfg Config, log zerolog.Logger) *Engine {
	if cfg.MaxQueries <= 0 {
		cfg.MaxQueries = 6
	}
	if cfg.MaxRawArticles <= 0 {
		cfg.MaxRawArticles = 50
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 2 * time.Hour
	}
	if cfg.RefreshTimeout <= 0 {
		cfg.RefreshTimeout = 90 * time.Second
	}

	return &Engine{
		searcher: searcher,
		cfg:      cfg,
		now:      time.Now,
		log:      log.With().Str("service", "news").Logger(),
	}
}

// GetArticles returns the ranked article list, refreshing it when the cached
// one is missing or older than the TTL.
func (e *Engine) GetArticles(ctx context.Context) Result {
	if entry, ok := e.fresh(); ok {
		return entry.result.clone()
	}

	if !e.refreshMu.TryLock() {
		// Another request is refreshing; serve what we have rather than wait
		if entry := e.cache.Load(); entry != nil {
			return entry.result.clone()
		}
		return Result{
			Articles:    Curated(),
			Provenance:  ProvenanceCurated,
			RefreshedAt: e.now(),
		}
	}
	defer e.refreshMu.Unlock()

	if entry, ok := e.fresh(); ok {
		return entry.result.clone()
	}

	return e.refresh(ctx).clone()
}

// CacheAge reports how old the cached result is; ok is false when nothing is cached
func (e *Engine) CacheAge() (time.Duration, bool) {
	entry := e.cache.Load()
	if entry == nil {
		return 0, false
	}
	return e.now().Sub(entry.result.RefreshedAt), true
}

// Invalidate drops the cached result so the next call refreshes from upstream
func (e *Engine) Invalidate() {
	e.bypassGateway.Store(true)
	e.cache.Store(nil)
}

func (e *Engine) fresh() (*cacheEntry, bool) {
	entry := e.cache.Load()
	if entry == nil {
		return nil, false
	}
	return entry, e.now().Sub(entry.result.RefreshedAt) < e.cfg.TTL
}

// refresh runs the upstream query sequence. Only a live result is cached.
func (e *Engine) refresh(ctx context.Context) Result {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.RefreshTimeout)
	defer cancel()

	now := e.now()
	raw := e.collect(ctx, now, e.bypassGateway.Load())
	articles := e.process(raw, now)

	if len(articles) < MinLiveResults {
		e.log.Warn().
			Int("raw", len(raw)).
			Int("qualifying", len(articles)).
			Msg("Too few qualifying articles, serving curated list")
		e.bypassGateway.Store(true)
		return Result{
			Articles:    Curated(),
			Provenance:  ProvenanceCurated,
			RefreshedAt: now,
		}
	}

	result := Result{
		Articles:    articles,
		Provenance:  ProvenanceLive,
		RefreshedAt: now,
	}
	e.bypassGateway.Store(false)
	e.cache.Store(&cacheEntry{result: result})

	e.log.Info().
		Int("raw", len(raw)).
		Int("articles", len(articles)).
		Msg("News cache refreshed")

	return result
}

// collect issues the query sequence and merges results, deduplicated by URL
func (e *Engine) collect(ctx context.Context, now time.Time, noCache bool) []gateway.Article {
	queries := e.cfg.Queries
	if len(queries) > e.cfg.MaxQueries {
		queries = queries[:e.cfg.MaxQueries]
	}

	seen := make(map[string]bool)
	var raw []gateway.Article

	for i, text := range queries {
		if ctx.Err() != nil {
			e.log.Warn().Err(ctx.Err()).Int("query_index", i).Msg("News refresh deadline reached")
			break
		}

		result := e.searcher.SearchNews(ctx, gateway.Query{
			Text:     text,
			Sources:  e.cfg.Sources,
			Language: e.cfg.Language,
			SortBy:   e.cfg.SortBy,
			PageSize: e.cfg.PageSize,
			From:     queryWindowStart(i, now),
			NoCache:  noCache,
		})

		switch result.Status {
		case gateway.StatusFailed:
			e.log.Warn().Err(result.Reason).Str("query", text).Msg("News query failed")
			continue
		case gateway.StatusEmpty:
			e.log.Debug().Str("query", text).Msg("News query returned nothing")
			continue
		}

		for _, a := range result.Articles {
			key := strings.TrimSpace(a.URL)
			if key != "" && seen[key] {
				continue
			}
			seen[key] = true
			raw = append(raw, a)
		}

		if len(raw) >= e.cfg.MaxRawArticles {
			break
		}
	}

	return raw
}

// queryWindowStart tiers the search window by query position:
// a week for the first two, three days for the next two, today for the rest.
func queryWindowStart(index int, now time.Time) time.Time {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch {
	case index < 2:
		return today.AddDate(0, 0, -7)
	case index < 4:
		return today.AddDate(0, 0, -3)
	default:
		return today
	}
}

// process filters and ranks raw articles, stopping at MaxArticles
func (e *Engine) process(raw []gateway.Article, now time.Time) []RankedArticle {
	articles := make([]RankedArticle, 0, MaxArticles)

	for _, a := range raw {
		ranked, ok := rank(a, now)
		if !ok {
			continue
		}
		articles = append(articles, ranked)
		if len(articles) >= MaxArticles {
			break
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Score > articles[j].Score
	})

	return articles
}

// rank converts one raw article, or reports false when it is not relevant
func rank(a gateway.Article, now time.Time) (RankedArticle, bool) {
	content, ok := relevantContent(a)
	if !ok {
		return RankedArticle{}, false
	}

	category := classify(content)
	source := normalizeSource(a.SourceName)

	return RankedArticle{
		ID:       articleID(a.URL),
		Title:    truncate(strings.TrimSpace(a.Title), titleBound),
		Summary:  truncate(strings.TrimSpace(a.Description), summaryBound),
		Source:   source,
		TimeAgo:  timeAgo(a.PublishedAt, now),
		Category: category,
		ImageURL: chooseImage(a.ImageURL, category),
		URL:      a.URL,
		Score:    score(source, content),
	}, true
}

func (r Result) clone() Result {
	out := r
	out.Articles = make([]RankedArticle, len(r.Articles))
	copy(out.Articles, r.Articles)
	return out
}
