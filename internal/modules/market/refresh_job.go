package market

import "github.com/rs/zerolog"

// RefreshJob refreshes the snapshot on the scheduler's cadence
type RefreshJob struct {
	snapshot *Snapshot
	log      zerolog.Logger
}

// NewRefreshJob creates a snapshot refresh job
func NewRefreshJob(snapshot *Snapshot, log zerolog.Logger) *RefreshJob {
	return &RefreshJob{
		snapshot: snapshot,
		log:      log.With().Str("job", "market_snapshot_refresh").Logger(),
	}
}

// Run refreshes the snapshot
func (j *RefreshJob) Run() error {
	if err := j.snapshot.Refresh(); err != nil {
		j.log.Error().Err(err).Msg("Snapshot refresh failed, keeping previous values")
		return err
	}
	return nil
}

// Name returns the job name for scheduling and logging
func (j *RefreshJob) Name() string {
	return "market_snapshot_refresh"
}
