package history

import (
	"math/rand"
	"time"
)

const (
	syntheticDays  = 30
	syntheticRange = 10.0
	dailyNoise     = 2.0
)

// trendFor returns the drift for a day i days before now: falling in the
// oldest third, sideways in the middle third, rising in the newest third.
func trendFor(i int, rng *rand.Rand) float64 {
	switch {
	case i > 20:
		return -0.15
	case i > 10:
		if rng.Intn(2) == 0 {
			return -0.1
		}
		return 0.1
	default:
		return 0.1
	}
}

// generateSynthetic walks a bounded random price path over the weekdays of
// the last 30 calendar days ending at now.
func generateSynthetic(inst Instrument, now time.Time, rng *rand.Rand) PriceSeries {
	base := inst.BasePrice
	lo, hi := base-syntheticRange, base+syntheticRange

	labels := make([]string, 0, syntheticDays)
	prices := make([]float64, 0, syntheticDays)

	current := base
	for i := syntheticDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}

		current += trendFor(i, rng) + (rng.Float64()*2-1)*dailyNoise
		if current < lo {
			current = lo
		} else if current > hi {
			current = hi
		}

		labels = append(labels, day.Format(labelLayout))
		prices = append(prices, round2(current))
	}

	return PriceSeries{
		Instrument: inst.Name,
		Labels:     labels,
		Prices:     prices,
		Source:     SourceSynthetic,
		Provenance: ProvenanceSynthetic,
		RangeStart: dateOnly(now.AddDate(0, 0, -(syntheticDays - 1))),
		RangeEnd:   dateOnly(now),
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
