// Package di provides dependency injection for background job registration.
package di

import (
	"fmt"

	"github.com/aristath/energyintel/internal/clientdata"
	"github.com/aristath/energyintel/internal/config"
	"github.com/aristath/energyintel/internal/modules/market"
	"github.com/rs/zerolog"
)

// RegisterJobs registers the background jobs with the scheduler and warms the
// market snapshot so the first request sees real values
func RegisterJobs(container *Container, cfg *config.Config, log zerolog.Logger) (*JobInstances, error) {
	if container.Scheduler == nil {
		return nil, fmt.Errorf("scheduler not initialized")
	}

	jobs := &JobInstances{
		SnapshotRefresh:   market.NewRefreshJob(container.MarketSnapshot, log),
		ClientDataCleanup: clientdata.NewCleanupJob(container.ClientDataRepo, log),
	}

	schedule := fmt.Sprintf("@every %s", cfg.SnapshotInterval)
	if err := container.Scheduler.AddJob(schedule, jobs.SnapshotRefresh); err != nil {
		return nil, fmt.Errorf("failed to register snapshot refresh job: %w", err)
	}

	if err := container.Scheduler.AddJob("@hourly", jobs.ClientDataCleanup); err != nil {
		return nil, fmt.Errorf("failed to register client data cleanup job: %w", err)
	}

	if err := container.Scheduler.RunNow(jobs.SnapshotRefresh); err != nil {
		// Readers fall back to anchor prices until the next tick
		log.Warn().Err(err).Msg("Initial market snapshot refresh failed")
	}

	return jobs, nil
}
