package sectors

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	trendMonths = 12
	carbonDays  = 30
)

type anchor struct {
	name   string
	price  float64
	jitter float64
}

var (
	fossilAnchors = []anchor{
		{"oil", 74.25, 2},
		{"natural_gas", 2.65, 0.3},
		{"coal", 135.50, 5},
	}
	renewableAnchors = []anchor{
		{"solar", 42.30, 2},
		{"wind", 38.50, 2},
		{"hydro", 45.20, 1},
	}
	electricityAnchors = []anchor{
		{"us_avg", 0.168, 0.01},
		{"industrial", 0.082, 0.005},
		{"residential", 0.165, 0.01},
	}
)

var regionalPrices = RegionalPrices{
	Regions:           []string{"US", "Europe", "Asia", "Middle East", "Latin America"},
	OilPrices:         []float64{70.80, 74.25, 73.50, 68.90, 71.20},
	GasPrices:         []float64{2.65, 8.45, 9.20, 3.10, 4.85},
	ElectricityPrices: []float64{0.168, 0.285, 0.195, 0.095, 0.145},
}

// Generator builds the sector views around fixed anchors with random jitter
type Generator struct {
	mu  sync.Mutex // guards rng
	rng *rand.Rand
	log zerolog.Logger
}

// NewGenerator creates a generator. src seeds the jitter; nil uses the clock.
func NewGenerator(src rand.Source, log zerolog.Logger) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{
		rng: rand.New(src),
		log: log.With().Str("component", "sectors").Logger(),
	}
}

// uniform returns a value in [-spread, spread]
func (g *Generator) uniform(spread float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return (g.rng.Float64()*2 - 1) * spread
}

func (g *Generator) jittered(anchors []anchor, places int32) map[string]float64 {
	out := make(map[string]float64, len(anchors))
	for _, a := range anchors {
		out[a.name] = round(a.price+g.uniform(a.jitter), places)
	}
	return out
}

// SectorComparison returns current fossil, renewable and electricity prices
func (g *Generator) SectorComparison(now time.Time) SectorComparison {
	return SectorComparison{
		FossilFuels:       g.jittered(fossilAnchors, 2),
		Renewables:        g.jittered(renewableAnchors, 2),
		ElectricityPrices: g.jittered(electricityAnchors, 4),
		Timestamp:         now.Format(time.RFC3339),
	}
}

// RenewableTrends returns twelve monthly points, oldest first, with the
// renewable share rising 0.8 points a month
func (g *Generator) RenewableTrends(now time.Time) RenewableTrends {
	labels := make([]string, 0, trendMonths)
	fossil := make([]float64, 0, trendMonths)
	renewable := make([]float64, 0, trendMonths)

	for i := trendMonths; i > 0; i-- {
		labels = append(labels, now.AddDate(0, 0, -i*30).Format("Jan"))

		step := float64(trendMonths-i) * 0.8
		fossil = append(fossil, round(65-step+g.uniform(2), 2))
		renewable = append(renewable, round(35+step+g.uniform(2), 2))
	}

	return RenewableTrends{
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Fossil Fuels", Data: fossil, Color: "#ef4444"},
			{Label: "Renewables", Data: renewable, Color: "#22c55e"},
		},
	}
}

// RegionalPrices returns the reference prices per region
func (g *Generator) RegionalPrices() RegionalPrices {
	return RegionalPrices{
		Regions:           append([]string(nil), regionalPrices.Regions...),
		OilPrices:         append([]float64(nil), regionalPrices.OilPrices...),
		GasPrices:         append([]float64(nil), regionalPrices.GasPrices...),
		ElectricityPrices: append([]float64(nil), regionalPrices.ElectricityPrices...),
	}
}

// CarbonPricing returns thirty days of carbon prices and emissions ending
// yesterday, with a summary of the price series
func (g *Generator) CarbonPricing(now time.Time) CarbonPricing {
	labels := make([]string, 0, carbonDays)
	prices := make([]float64, 0, carbonDays)
	emissions := make([]float64, 0, carbonDays)

	for i := carbonDays; i > 0; i-- {
		labels = append(labels, now.AddDate(0, 0, -i).Format("01/02"))

		elapsed := float64(carbonDays - i)
		prices = append(prices, round(85+elapsed*0.3+g.uniform(3), 2))
		emissions = append(emissions, round(100-elapsed*0.05+g.uniform(2), 2))
	}

	current := prices[len(prices)-1]
	previous := prices[len(prices)-2]

	return CarbonPricing{
		Labels:       labels,
		CarbonPrices: prices,
		Emissions:    emissions,
		CurrentPrice: current,
		PriceChange:  round((current-previous)/previous*100, 2),
		AveragePrice: round(stat.Mean(prices, nil), 2),
		HighPrice:    floats.Max(prices),
		LowPrice:     floats.Min(prices),
	}
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
