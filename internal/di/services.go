// Package di provides dependency injection for service implementations.
package di

import (
	"fmt"

	"github.com/aristath/energyintel/internal/clientdata"
	"github.com/aristath/energyintel/internal/clients/eia"
	"github.com/aristath/energyintel/internal/clients/feeds"
	"github.com/aristath/energyintel/internal/clients/newsapi"
	"github.com/aristath/energyintel/internal/config"
	"github.com/aristath/energyintel/internal/gateway"
	"github.com/aristath/energyintel/internal/modules/history"
	"github.com/aristath/energyintel/internal/modules/market"
	"github.com/aristath/energyintel/internal/modules/news"
	"github.com/aristath/energyintel/internal/modules/sectors"
	"github.com/aristath/energyintel/internal/scheduler"
	"github.com/rs/zerolog"
)

// InitializeServices creates the gateway clients and the domain services
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	if container.ClientDataRepo == nil {
		return fmt.Errorf("repositories not initialized")
	}

	profile := cfg.News
	if profile == nil {
		profile = config.DefaultNewsProfile()
	}

	// Gateways
	container.EIAClient = eia.NewClient(eia.Config{
		APIKey:   cfg.EIA.APIKey,
		BaseURL:  cfg.EIA.BaseURL,
		Timeout:  cfg.EIA.Timeout,
		CacheTTL: cfg.HistoryCacheTTL,
	}, container.ClientDataRepo, log)

	container.NewsAPIClient = newsapi.NewClient(newsapi.Config{
		APIKey:        cfg.NewsAPI.APIKey,
		BaseURL:       cfg.NewsAPI.BaseURL,
		Timeout:       cfg.NewsAPI.Timeout,
		RatePerMinute: cfg.NewsAPI.RatePerMinute,
		CacheTTL:      clientdata.TTLNewsSearch,
	}, container.ClientDataRepo, log)

	feedList := make([]feeds.Feed, 0, len(profile.Feeds))
	for _, f := range profile.Feeds {
		feedList = append(feedList, feeds.Feed{Name: f.Name, URL: f.URL})
	}
	container.FeedsClient = feeds.NewClient(feedList, cfg.NewsAPI.Timeout, log)

	if len(feedList) > 0 {
		container.NewsSearcher = gateway.NewFallbackSearcher(container.NewsAPIClient, container.FeedsClient, log)
	} else {
		container.NewsSearcher = container.NewsAPIClient
	}

	// Domain services
	container.HistoryResolver = history.NewResolver(container.EIAClient, nil, log)

	container.NewsEngine = news.NewEngine(container.NewsSearcher, news.Config{
		Queries:        profile.Queries,
		MaxQueries:     profile.MaxQueries,
		MaxRawArticles: profile.MaxRawArticles,
		PageSize:       profile.PageSize,
		Language:       profile.Language,
		SortBy:         profile.SortBy,
		Sources:        profile.Sources,
		TTL:            cfg.NewsCacheTTL,
	}, log)

	container.MarketSnapshot = market.NewSnapshot(nil, log)
	container.SectorGenerator = sectors.NewGenerator(nil, log)

	container.Scheduler = scheduler.New(log)

	log.Info().
		Int("news_queries", len(profile.Queries)).
		Int("rss_feeds", len(feedList)).
		Bool("eia_key", cfg.EIA.APIKey != "").
		Bool("newsapi_key", cfg.NewsAPI.APIKey != "").
		Msg("Services initialized")

	return nil
}
