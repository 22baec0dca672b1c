package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aristath/energyintel/internal/gateway"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Markets</title>
  <item>
    <title>Nvidia expands datacenter power deals</title>
    <description>Billion dollar energy investment for AI.</description>
    <link>https://example.com/new</link>
    <pubDate>Wed, 03 Jan 2024 12:00:00 GMT</pubDate>
    <enclosure url="https://example.com/new.jpg" type="image/jpeg" length="0"/>
  </item>
  <item>
    <title>Older datacenter story</title>
    <description>Energy demand grows.</description>
    <link>https://example.com/old</link>
    <pubDate>Mon, 01 Jan 2024 12:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Sports results</title>
    <description>Nothing relevant here.</description>
    <link>https://example.com/sports</link>
    <pubDate>Wed, 03 Jan 2024 13:00:00 GMT</pubDate>
  </item>
</channel>
</rss>`

func feedServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testRSS))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSearchNews_MatchesAndOrders(t *testing.T) {
	server := feedServer(t)
	client := NewClient([]Feed{{Name: "CNBC", URL: server.URL}}, time.Second, zerolog.Nop())

	result := client.SearchNews(context.Background(), gateway.Query{Text: "datacenter energy"})

	require.Equal(t, gateway.StatusOK, result.Status)
	require.Len(t, result.Articles, 2)
	assert.Equal(t, "https://example.com/new", result.Articles[0].URL)
	assert.Equal(t, "https://example.com/old", result.Articles[1].URL)
	assert.Equal(t, "CNBC", result.Articles[0].SourceName)
	assert.Equal(t, "https://example.com/new.jpg", result.Articles[0].ImageURL)
	assert.Equal(t, "2024-01-03T12:00:00Z", result.Articles[0].PublishedAt)
}

func TestSearchNews_FromAndPageSize(t *testing.T) {
	server := feedServer(t)
	client := NewClient([]Feed{{Name: "CNBC", URL: server.URL}}, time.Second, zerolog.Nop())

	result := client.SearchNews(context.Background(), gateway.Query{
		Text: "datacenter",
		From: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.Len(t, result.Articles, 1)
	assert.Equal(t, "https://example.com/new", result.Articles[0].URL)

	result = client.SearchNews(context.Background(), gateway.Query{Text: "datacenter", PageSize: 1})
	assert.Len(t, result.Articles, 1)
}

func TestSearchNews_NoMatch(t *testing.T) {
	server := feedServer(t)
	client := NewClient([]Feed{{Name: "CNBC", URL: server.URL}}, time.Second, zerolog.Nop())

	result := client.SearchNews(context.Background(), gateway.Query{Text: "geothermal"})
	assert.Equal(t, gateway.StatusEmpty, result.Status)
}

func TestSearchNews_Failures(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	client := NewClient([]Feed{{Name: "broken", URL: broken.URL}}, time.Second, zerolog.Nop())
	assert.Equal(t, gateway.StatusFailed, client.SearchNews(context.Background(), gateway.Query{Text: "energy"}).Status)

	empty := NewClient(nil, time.Second, zerolog.Nop())
	result := empty.SearchNews(context.Background(), gateway.Query{Text: "energy"})
	assert.Equal(t, gateway.StatusFailed, result.Status)
	assert.EqualError(t, result.Reason, "no feeds configured")

	// One healthy feed is enough
	server := feedServer(t)
	mixed := NewClient([]Feed{{Name: "broken", URL: broken.URL}, {Name: "ok", URL: server.URL}}, time.Second, zerolog.Nop())
	assert.Equal(t, gateway.StatusOK, mixed.SearchNews(context.Background(), gateway.Query{Text: "energy"}).Status)
}

func TestQueryTerms(t *testing.T) {
	assert.Equal(t, []string{"datacenter", "energy", "investment"}, queryTerms("AI datacenter energy investment"))
	assert.Equal(t, []string{"nuclear", "power", "deal"}, queryTerms("nuclear-power deal, AI"))
	assert.Empty(t, queryTerms("AI a an"))
}
