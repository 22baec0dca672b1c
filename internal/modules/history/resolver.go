package history

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aristath/energyintel/internal/gateway"
	"github.com/rs/zerolog"
)

const (
	// fetchWindowDays covers 30 trading days plus weekends and holidays
	fetchWindowDays = 45
	periodLayout    = "2006-01-02"
	labelLayout     = "Jan 02"
)

// Resolver turns an instrument name into a chart series. It prefers the
// upstream feed and degrades to a synthetic walk; it never returns an error.
type Resolver struct {
	fetcher gateway.PriceHistoryFetcher

	mu  sync.Mutex // guards rng
	rng *rand.Rand

	log zerolog.Logger
}

// NewResolver creates a resolver. src seeds the synthetic generator; nil uses the clock.
func NewResolver(fetcher gateway.PriceHistoryFetcher, src rand.Source, log zerolog.Logger) *Resolver {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Resolver{
		fetcher: fetcher,
		rng:     rand.New(src),
		log:     log.With().Str("service", "history").Logger(),
	}
}

// Resolve returns at most 30 points ending at now, oldest first
func (r *Resolver) Resolve(ctx context.Context, instrument string, now time.Time) PriceSeries {
	inst, err := Lookup(instrument)
	if err != nil {
		r.log.Info().Str("instrument", instrument).Msg("Unknown instrument, generating sample series")
		return withIndicators(r.synthetic(unknownInstrument(instrument), now))
	}

	start := now.AddDate(0, 0, -fetchWindowDays)
	result := r.fetcher.FetchPriceHistory(ctx, inst.SeriesKey, start, now)

	switch result.Status {
	case gateway.StatusOK:
		if series, ok := r.official(inst, result.Records); ok {
			return withIndicators(series)
		}
		r.log.Warn().Str("instrument", inst.Key).Msg("No valid records in upstream response, using sample series")
	case gateway.StatusEmpty:
		r.log.Info().Str("instrument", inst.Key).Msg("Upstream returned no records, using sample series")
	default:
		r.log.Warn().Err(result.Reason).Str("instrument", inst.Key).Msg("Upstream unavailable, using sample series")
	}

	return withIndicators(r.synthetic(inst, now))
}

func (r *Resolver) synthetic(inst Instrument, now time.Time) PriceSeries {
	r.mu.Lock()
	defer r.mu.Unlock()
	return generateSynthetic(inst, now, r.rng)
}

type observation struct {
	date  time.Time
	price float64
}

// official builds a series from raw records, skipping malformed ones
func (r *Resolver) official(inst Instrument, records []gateway.PriceRecord) (PriceSeries, bool) {
	points := make([]observation, 0, len(records))

	for _, rec := range records {
		obs, ok := parseRecord(rec)
		if !ok {
			r.log.Debug().
				Str("instrument", inst.Key).
				Str("period", rec.Period).
				Msg("Skipping malformed price record")
			continue
		}
		points = append(points, obs)
	}

	if len(points) == 0 {
		return PriceSeries{}, false
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].date.Before(points[j].date) })
	if len(points) > MaxPoints {
		points = points[len(points)-MaxPoints:]
	}

	series := PriceSeries{
		Instrument: inst.Name,
		Labels:     make([]string, len(points)),
		Prices:     make([]float64, len(points)),
		Source:     SourceOfficial,
		Provenance: ProvenanceOfficial,
		RangeStart: points[0].date,
		RangeEnd:   points[len(points)-1].date,
	}
	for i, p := range points {
		series.Labels[i] = p.date.Format(labelLayout)
		series.Prices[i] = round2(p.price)
	}

	return series, true
}

func parseRecord(rec gateway.PriceRecord) (observation, bool) {
	if rec.Period == "" || rec.Value == nil {
		return observation{}, false
	}

	date, err := time.Parse(periodLayout, rec.Period)
	if err != nil {
		return observation{}, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(*rec.Value), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return observation{}, false
	}

	return observation{date: date, price: price}, true
}
