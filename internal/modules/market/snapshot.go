// Package market keeps the process-wide snapshot of current commodity quotes.
package market

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Tracked commodities
const (
	Brent = "brent"
	WTI   = "wti"
	Gas   = "gas"
)

// Anchor is the reference quote a commodity jitters around
type Anchor struct {
	Commodity string
	Price     float64
	Jitter    float64
}

// Anchors lists the tracked commodities and their reference quotes
var Anchors = []Anchor{
	{Commodity: Brent, Price: 74.25, Jitter: 2},
	{Commodity: WTI, Price: 70.80, Jitter: 2},
	{Commodity: Gas, Price: 2.65, Jitter: 0.3},
}

// DefaultPrice returns the anchor price of a commodity, or 0 for unknown ones
func DefaultPrice(commodity string) float64 {
	for _, a := range Anchors {
		if a.Commodity == commodity {
			return a.Price
		}
	}
	return 0
}

// MarketSnapshot is an immutable set of quotes. Never modify a published one.
type MarketSnapshot struct {
	Prices    map[string]float64
	UpdatedAt time.Time
}

// Snapshot publishes MarketSnapshots by pointer swap. Refresh is the only writer.
type Snapshot struct {
	current atomic.Pointer[MarketSnapshot]

	mu  sync.Mutex // guards rng
	rng *rand.Rand

	quote func(a Anchor) float64
	now   func() time.Time
	log   zerolog.Logger
}

// NewSnapshot creates an empty snapshot. src seeds the jitter; nil uses the clock.
func NewSnapshot(src rand.Source, log zerolog.Logger) *Snapshot {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}

	s := &Snapshot{
		rng: rand.New(src),
		now: time.Now,
		log: log.With().Str("component", "market_snapshot").Logger(),
	}
	s.quote = s.jitteredQuote
	return s
}

func (s *Snapshot) jitteredQuote(a Anchor) float64 {
	s.mu.Lock()
	offset := (s.rng.Float64()*2 - 1) * a.Jitter
	s.mu.Unlock()

	return decimal.NewFromFloat(a.Price + offset).Round(2).InexactFloat64()
}

// Refresh recomputes every quote and publishes the new snapshot. On failure
// the previous snapshot stays visible.
func (s *Snapshot) Refresh() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("snapshot refresh panicked: %v", r)
			s.log.Error().Err(err).Msg("Market snapshot refresh failed")
		}
	}()

	prices := make(map[string]float64, len(Anchors))
	for _, a := range Anchors {
		prices[a.Commodity] = s.quote(a)
	}

	next := &MarketSnapshot{Prices: prices, UpdatedAt: s.now()}
	s.current.Store(next)

	s.log.Debug().
		Float64("brent", prices[Brent]).
		Float64("wti", prices[WTI]).
		Float64("gas", prices[Gas]).
		Msg("Market snapshot refreshed")

	return nil
}

// Get returns the current quote, or def when none has been published
func (s *Snapshot) Get(commodity string, def float64) float64 {
	snap := s.current.Load()
	if snap == nil {
		return def
	}
	if price, ok := snap.Prices[commodity]; ok {
		return price
	}
	return def
}

// Current returns a copy of the latest snapshot
func (s *Snapshot) Current() (MarketSnapshot, bool) {
	snap := s.current.Load()
	if snap == nil {
		return MarketSnapshot{}, false
	}

	prices := make(map[string]float64, len(snap.Prices))
	for k, v := range snap.Prices {
		prices[k] = v
	}
	return MarketSnapshot{Prices: prices, UpdatedAt: snap.UpdatedAt}, true
}

// LastUpdate returns the last refresh time as HH:MM:SS, or the current time
// when nothing has been published yet
func (s *Snapshot) LastUpdate() string {
	if snap := s.current.Load(); snap != nil {
		return snap.UpdatedAt.Format("15:04:05")
	}
	return s.now().Format("15:04:05")
}

// Age reports how old the snapshot is
func (s *Snapshot) Age() (time.Duration, bool) {
	snap := s.current.Load()
	if snap == nil {
		return 0, false
	}
	return s.now().Sub(snap.UpdatedAt), true
}
