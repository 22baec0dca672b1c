// Package history resolves recent daily price series for oil benchmarks.
package history

import "time"

// Source tells whether a series came from the official feed or was generated
type Source string

const (
	SourceOfficial  Source = "OFFICIAL"
	SourceSynthetic Source = "SYNTHETIC"
)

// Provenance strings shown alongside the chart
const (
	ProvenanceOfficial  = "U.S. Energy Information Administration (EIA)"
	ProvenanceSynthetic = "Sample Data (EIA API temporarily unavailable)"
)

// MaxPoints is the most points a series carries
const MaxPoints = 30

// Stats summarizes a series
type Stats struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Mean      float64 `json:"mean"`
	ChangePct float64 `json:"change_pct"`
}

// PriceSeries is a resolved chart series. Labels and Prices are parallel,
// oldest first. SMA5 is aligned with Labels[4:] and is nil for short series.
type PriceSeries struct {
	Instrument string
	Labels     []string
	Prices     []float64
	Source     Source
	Provenance string
	RangeStart time.Time
	RangeEnd   time.Time
	Stats      Stats
	SMA5       []float64
}

// Len returns the number of points
func (s PriceSeries) Len() int {
	return len(s.Prices)
}
