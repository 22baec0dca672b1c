// Package news aggregates, filters, classifies and scores AI/energy investment
// articles from upstream news searches, behind a TTL cache.
package news

import "time"

// Category is one of the fixed article topics
type Category string

// Categories in classification priority order
const (
	CategoryAIInvestment         Category = "AI Investment"
	CategoryDatacenterInvestment Category = "Datacenter Investment"
	CategoryEnergyInfrastructure Category = "Energy Infrastructure"
	CategoryTechEnergyStrategy   Category = "Tech Energy Strategy"
	CategoryAIMarketTrends       Category = "AI Market Trends"
	CategoryEnergyEconomics      Category = "Energy Economics"
)

// DefaultCategory is used when no category keywords match
const DefaultCategory = CategoryAIInvestment

// Provenance tells whether a result came from upstream or the curated list
type Provenance string

const (
	ProvenanceLive    Provenance = "LIVE"
	ProvenanceCurated Provenance = "CURATED"
)

// Result set bounds
const (
	MaxArticles    = 6
	MinLiveResults = 3
	MaxScore       = 99
	MinScore       = 0
)

// RankedArticle is a processed article ready for display
type RankedArticle struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Source   string   `json:"source"`
	TimeAgo  string   `json:"time"`
	Category Category `json:"category"`
	ImageURL string   `json:"image"`
	URL      string   `json:"url"`
	Score    int      `json:"score"`
}

// Result is what the engine hands out. Articles must not be modified by callers.
type Result struct {
	Articles    []RankedArticle
	Provenance  Provenance
	RefreshedAt time.Time
}
