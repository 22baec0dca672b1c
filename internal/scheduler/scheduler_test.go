package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name  string
	runs  atomic.Int32
	fails bool
}

func (j *countingJob) Run() error {
	j.runs.Add(1)
	if j.fails {
		return errors.New("job failed")
	}
	return nil
}

func (j *countingJob) Name() string { return j.name }

func TestAddJob(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		wantErr  bool
	}{
		{"every interval", "@every 60s", false},
		{"hourly", "@hourly", false},
		{"six field cron", "0 */5 * * * *", false},
		{"invalid", "not a schedule", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(zerolog.Nop())
			err := s.AddJob(tt.schedule, &countingJob{name: "job"})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, s.Jobs())
				return
			}
			require.NoError(t, err)
			require.Len(t, s.Jobs(), 1)
			assert.Equal(t, tt.schedule, s.Jobs()[0].Schedule)
		})
	}
}

func TestAddJob_DuplicateName(t *testing.T) {
	s := New(zerolog.Nop())

	require.NoError(t, s.AddJob("@hourly", &countingJob{name: "cleanup"}))
	assert.Error(t, s.AddJob("@every 1s", &countingJob{name: "cleanup"}))
}

func TestRunNow(t *testing.T) {
	s := New(zerolog.Nop())

	ok := &countingJob{name: "ok"}
	require.NoError(t, s.RunNow(ok))
	assert.Equal(t, int32(1), ok.runs.Load())

	failing := &countingJob{name: "failing", fails: true}
	assert.Error(t, s.RunNow(failing))
}

func TestScheduledJobRuns(t *testing.T) {
	s := New(zerolog.Nop())
	job := &countingJob{name: "tick", fails: true}

	require.NoError(t, s.AddJob("@every 1s", job))
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return job.runs.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond, "failing jobs keep their schedule")
}

func TestJobs_SortedWithNextRun(t *testing.T) {
	s := New(zerolog.Nop())
	require.NoError(t, s.AddJob("@hourly", &countingJob{name: "zeta"}))
	require.NoError(t, s.AddJob("@hourly", &countingJob{name: "alpha"}))

	s.Start()
	defer s.Stop()

	jobs := s.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, "alpha", jobs[0].Name)
	assert.Equal(t, "zeta", jobs[1].Name)
	assert.False(t, jobs[0].Next.IsZero())
}
