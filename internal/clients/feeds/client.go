// Package feeds provides an RSS/Atom news searcher used when the primary news API is unavailable.
package feeds

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/aristath/energyintel/internal/gateway"
	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"
)

// minTermLength drops short filler words from query text
const minTermLength = 4

// Feed is one syndication source
type Feed struct {
	Name string
	URL  string
}

// Client searches a fixed set of feeds locally
type Client struct {
	feeds   []Feed
	timeout time.Duration
	parser  *gofeed.Parser
	log     zerolog.Logger
}

// NewClient creates a feed searcher over the given feeds
func NewClient(feeds []Feed, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		feeds:   feeds,
		timeout: timeout,
		parser:  gofeed.NewParser(),
		log:     log.With().Str("client", "feeds").Logger(),
	}
}

type datedArticle struct {
	article   gateway.Article
	published time.Time
}

// SearchNews implements gateway.NewsSearcher.
// Items match when their title or description contains any query word.
func (c *Client) SearchNews(ctx context.Context, q gateway.Query) gateway.SearchResult {
	if len(c.feeds) == 0 {
		return gateway.SearchFailed(fmt.Errorf("no feeds configured"))
	}

	terms := queryTerms(q.Text)

	var (
		matched  []datedArticle
		failures int
		lastErr  error
	)

	for _, f := range c.feeds {
		feed, err := c.fetch(ctx, f)
		if err != nil {
			failures++
			lastErr = err
			c.log.Warn().Err(err).Str("feed", f.Name).Msg("Failed to fetch feed")
			continue
		}

		for _, item := range feed.Items {
			if item == nil {
				continue
			}

			published := itemTime(item)
			if !q.From.IsZero() && !published.IsZero() && published.Before(q.From) {
				continue
			}

			text := strings.ToLower(item.Title + " " + item.Description)
			if !containsAny(text, terms) {
				continue
			}

			matched = append(matched, datedArticle{
				article:   toArticle(f, item, published),
				published: published,
			})
		}
	}

	if failures == len(c.feeds) {
		return gateway.SearchFailed(fmt.Errorf("all feeds failed: %w", lastErr))
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].published.After(matched[j].published)
	})

	if q.PageSize > 0 && len(matched) > q.PageSize {
		matched = matched[:q.PageSize]
	}

	articles := make([]gateway.Article, 0, len(matched))
	for _, m := range matched {
		articles = append(articles, m.article)
	}

	if len(articles) == 0 {
		c.log.Info().Str("query", q.Text).Msg("Feed search returned no articles")
	}

	return gateway.SearchOK(articles)
}

func (c *Client) fetch(ctx context.Context, f Feed) (*gofeed.Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	feed, err := c.parser.ParseURLWithContext(f.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", f.Name, err)
	}
	return feed, nil
}

func toArticle(f Feed, item *gofeed.Item, published time.Time) gateway.Article {
	a := gateway.Article{
		Title:       strings.TrimSpace(item.Title),
		Description: strings.TrimSpace(item.Description),
		URL:         item.Link,
		SourceName:  f.Name,
	}

	if !published.IsZero() {
		a.PublishedAt = published.UTC().Format(time.RFC3339)
	} else {
		a.PublishedAt = item.Published
	}

	if item.Image != nil {
		a.ImageURL = item.Image.URL
	} else {
		for _, enc := range item.Enclosures {
			if enc != nil && strings.HasPrefix(enc.Type, "image/") {
				a.ImageURL = enc.URL
				break
			}
		}
	}

	return a
}

func itemTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Time{}
}

func queryTerms(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= minTermLength {
			terms = append(terms, f)
		}
	}
	return terms
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
