package history

import (
	"github.com/markcheno/go-talib"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const smaPeriod = 5

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// computeStats summarizes prices; the zero value is returned for an empty slice
func computeStats(prices []float64) Stats {
	if len(prices) == 0 {
		return Stats{}
	}

	s := Stats{
		Min:  floats.Min(prices),
		Max:  floats.Max(prices),
		Mean: round2(stat.Mean(prices, nil)),
	}

	first, last := prices[0], prices[len(prices)-1]
	if first != 0 {
		s.ChangePct = round2((last - first) / first * 100)
	}

	return s
}

// movingAverage returns the 5-point SMA without its lookback prefix
func movingAverage(prices []float64) []float64 {
	if len(prices) < smaPeriod {
		return nil
	}

	sma := talib.Sma(prices, smaPeriod)[smaPeriod-1:]
	out := make([]float64, len(sma))
	for i, v := range sma {
		out[i] = round2(v)
	}
	return out
}

// withIndicators fills in the derived fields of a series
func withIndicators(s PriceSeries) PriceSeries {
	s.Stats = computeStats(s.Prices)
	s.SMA5 = movingAverage(s.Prices)
	return s
}
