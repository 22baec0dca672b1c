/**
 * Package di provides dependency injection type definitions.
 *
 * The Container holds every long-lived instance of the service and is
 * passed to the server and the CLI for access to them.
 */
package di

import (
	"github.com/aristath/energyintel/internal/clientdata"
	"github.com/aristath/energyintel/internal/clients/eia"
	"github.com/aristath/energyintel/internal/clients/feeds"
	"github.com/aristath/energyintel/internal/clients/newsapi"
	"github.com/aristath/energyintel/internal/database"
	"github.com/aristath/energyintel/internal/gateway"
	"github.com/aristath/energyintel/internal/modules/history"
	"github.com/aristath/energyintel/internal/modules/market"
	"github.com/aristath/energyintel/internal/modules/news"
	"github.com/aristath/energyintel/internal/modules/sectors"
	"github.com/aristath/energyintel/internal/scheduler"
)

// Container holds all application dependencies
type Container struct {
	// Databases
	CacheDB *database.DB // upstream response cache, in-memory by default

	// Repositories
	ClientDataRepo *clientdata.Repository

	// Gateways
	EIAClient     *eia.Client
	NewsAPIClient *newsapi.Client
	FeedsClient   *feeds.Client
	NewsSearcher  gateway.NewsSearcher // NewsAPI with RSS fallback

	// Services
	HistoryResolver *history.Resolver
	NewsEngine      *news.Engine
	MarketSnapshot  *market.Snapshot
	SectorGenerator *sectors.Generator

	Scheduler *scheduler.Scheduler
}

// JobInstances holds the registered background jobs
type JobInstances struct {
	SnapshotRefresh   *market.RefreshJob
	ClientDataCleanup *clientdata.CleanupJob
}

// Close releases the resources held by the container
func (c *Container) Close() error {
	if c == nil || c.CacheDB == nil {
		return nil
	}
	return c.CacheDB.Close()
}
