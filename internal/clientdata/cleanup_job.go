package clientdata

import (
	"github.com/rs/zerolog"
)

// CleanupJob purges expired cache entries on the scheduler's cadence
type CleanupJob struct {
	repo *Repository
	log  zerolog.Logger
}

// NewCleanupJob creates a cache purge job
func NewCleanupJob(repo *Repository, log zerolog.Logger) *CleanupJob {
	return &CleanupJob{
		repo: repo,
		log:  log.With().Str("job", "client_data_cleanup").Logger(),
	}
}

// Run purges every cache table and logs one summary line when anything went
func (j *CleanupJob) Run() error {
	purged, err := j.repo.DeleteAllExpired()
	if err != nil {
		j.log.Error().Err(err).Msg("Cache purge failed")
		return err
	}

	var total int64
	perTable := zerolog.Dict()
	for _, table := range AllTables {
		total += purged[table]
		perTable = perTable.Int64(string(table), purged[table])
	}

	if total == 0 {
		j.log.Debug().Msg("No expired cache entries")
		return nil
	}

	j.log.Info().
		Int64("purged", total).
		Dict("tables", perTable).
		Msg("Expired cache entries purged")
	return nil
}

// Name returns the job name for scheduling and logging
func (j *CleanupJob) Name() string {
	return "client_data_cleanup"
}
