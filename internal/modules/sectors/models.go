// Package sectors produces the cross-sector comparison views of the dashboard.
package sectors

// SectorComparison compares fossil, renewable and electricity prices
type SectorComparison struct {
	FossilFuels       map[string]float64 `json:"fossil_fuels"`
	Renewables        map[string]float64 `json:"renewables"`
	ElectricityPrices map[string]float64 `json:"electricity_prices"`
	Timestamp         string             `json:"timestamp"`
}

// Dataset is one line of a chart
type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
	Color string    `json:"color"`
}

// RenewableTrends is the monthly generation share of fossil and renewable sources
type RenewableTrends struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// RegionalPrices lists reference prices per region
type RegionalPrices struct {
	Regions           []string  `json:"regions"`
	OilPrices         []float64 `json:"oil_prices"`
	GasPrices         []float64 `json:"gas_prices"`
	ElectricityPrices []float64 `json:"electricity_prices"`
}

// CarbonPricing is the daily carbon price and emissions history
type CarbonPricing struct {
	Labels       []string  `json:"labels"`
	CarbonPrices []float64 `json:"carbon_prices"`
	Emissions    []float64 `json:"emissions"`
	CurrentPrice float64   `json:"current_price"`
	PriceChange  float64   `json:"price_change"`
	AveragePrice float64   `json:"average_price"`
	HighPrice    float64   `json:"high_price"`
	LowPrice     float64   `json:"low_price"`
}
