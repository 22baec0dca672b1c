package market

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSnapshot(seed int64) *Snapshot {
	s := NewSnapshot(rand.NewSource(seed), zerolog.Nop())
	s.now = func() time.Time { return time.Date(2024, 1, 10, 14, 5, 9, 0, time.UTC) }
	return s
}

func TestGet_BeforeFirstRefresh(t *testing.T) {
	s := newTestSnapshot(1)

	assert.Equal(t, 74.25, s.Get(Brent, 74.25))
	assert.Equal(t, 1.5, s.Get("coal", 1.5))

	_, ok := s.Current()
	assert.False(t, ok)

	_, ok = s.Age()
	assert.False(t, ok)
}

func TestRefresh_WithinJitterBounds(t *testing.T) {
	s := newTestSnapshot(2)

	for i := 0; i < 200; i++ {
		require.NoError(t, s.Refresh())
		for _, a := range Anchors {
			price := s.Get(a.Commodity, -1)
			// quotes are rounded to cents, so the bound is half a cent wider
			assert.InDelta(t, a.Price, price, a.Jitter+0.005, a.Commodity)
		}
	}

	assert.Equal(t, "14:05:09", s.LastUpdate())
	assert.Equal(t, -1.0, s.Get("coal", -1), "untracked commodity falls back to default")
}

func TestRefresh_PanicKeepsPreviousSnapshot(t *testing.T) {
	s := newTestSnapshot(3)
	require.NoError(t, s.Refresh())
	before, _ := s.Current()

	s.quote = func(Anchor) float64 { panic("feed exploded") }
	err := s.Refresh()

	require.Error(t, err)
	after, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	s := newTestSnapshot(4)
	require.NoError(t, s.Refresh())

	snap, ok := s.Current()
	require.True(t, ok)
	snap.Prices[Brent] = 0

	assert.NotEqual(t, 0.0, s.Get(Brent, 0))
}

func TestLastUpdate_NeverRefreshed(t *testing.T) {
	s := newTestSnapshot(5)
	assert.Equal(t, "14:05:09", s.LastUpdate())
}

func TestDefaultPrice(t *testing.T) {
	assert.Equal(t, 74.25, DefaultPrice(Brent))
	assert.Equal(t, 70.80, DefaultPrice(WTI))
	assert.Equal(t, 2.65, DefaultPrice(Gas))
	assert.Equal(t, 0.0, DefaultPrice("coal"))
}

func TestConcurrentReadsDuringRefresh(t *testing.T) {
	s := newTestSnapshot(6)
	require.NoError(t, s.Refresh())

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap, ok := s.Current()
				if ok {
					// A published snapshot is always complete
					assert.Len(t, snap.Prices, len(Anchors))
				}
			}
		}()
	}

	for i := 0; i < 100; i++ {
		require.NoError(t, s.Refresh())
	}
	close(stop)
	wg.Wait()
}

func TestRefreshJob(t *testing.T) {
	s := newTestSnapshot(7)
	job := NewRefreshJob(s, zerolog.Nop())

	assert.Equal(t, "market_snapshot_refresh", job.Name())
	require.NoError(t, job.Run())

	_, ok := s.Current()
	assert.True(t, ok)

	s.quote = func(Anchor) float64 { panic("boom") }
	assert.Error(t, job.Run())
}
