package news

// Relevance filter vocabularies. An article must hit all three.
var (
	businessTerms = []string{
		"investment", "spending", "billion", "million", "market",
		"company", "deal", "agreement", "partnership",
	}
	aiTechTerms = []string{
		"ai", "artificial intelligence", "data center", "datacenter", "microsoft",
		"amazon", "google", "meta", "nvidia", "tesla", "chatgpt", "machine learning", "cloud",
	}
	energyTerms = []string{
		"energy", "power", "electricity", "nuclear", "renewable", "grid",
		"consumption", "demand",
	}
)

// Scoring vocabularies
var (
	financialTerms = []string{
		"billion", "million", "investment", "spending", "capex", "funding", "deal", "partnership",
	}
	majorCompanies = []string{
		"microsoft", "amazon", "google", "meta", "nvidia", "tesla", "apple",
	}
	aiEnergyPhrases = []string{
		"data center investment", "ai energy consumption", "nuclear power deal",
	}
)

type categoryRule struct {
	category Category
	keywords []string
}

// categoryRules are evaluated in order; the first rule with a hit wins
var categoryRules = []categoryRule{
	{CategoryAIInvestment, []string{
		"investment", "spending", "funding", "billion", "million", "capex", "capital expenditure",
	}},
	{CategoryDatacenterInvestment, []string{
		"data center construction", "datacenter expansion", "server farm", "cloud infrastructure investment",
	}},
	{CategoryEnergyInfrastructure, []string{
		"energy infrastructure", "power grid investment", "renewable energy deal", "nuclear power agreement",
	}},
	{CategoryTechEnergyStrategy, []string{
		"microsoft", "amazon", "google", "meta", "nvidia", "tesla", "apple", "openai",
	}},
	{CategoryAIMarketTrends, []string{
		"artificial intelligence market", "ai chip demand", "machine learning infrastructure", "chatgpt", "ai training",
	}},
	{CategoryEnergyEconomics, []string{
		"electricity costs", "power consumption", "energy demand", "grid capacity", "energy efficiency",
	}},
}

const imageParams = "?w=400&h=250&fit=crop&auto=format"

var categoryImages = map[Category]string{
	CategoryAIInvestment:         "https://images.unsplash.com/photo-1559526324-4b87b5e36e44" + imageParams,
	CategoryDatacenterInvestment: "https://images.unsplash.com/photo-1558494949-ef010cbdcc31" + imageParams,
	CategoryEnergyInfrastructure: "https://images.unsplash.com/photo-1473341304170-971dccb5ac1e" + imageParams,
	CategoryTechEnergyStrategy:   "https://images.unsplash.com/photo-1451187580459-43490279c0fa" + imageParams,
	CategoryAIMarketTrends:       "https://images.unsplash.com/photo-1518709268805-4e9042af2176" + imageParams,
	CategoryEnergyEconomics:      "https://images.unsplash.com/photo-1466611653911-95081537e5b7" + imageParams,
}

// Canonical source names
const (
	SourceWSJ            = "WSJ"
	SourceBloomberg      = "Bloomberg"
	SourceReuters        = "Reuters"
	SourceCNBC           = "CNBC"
	SourceMarketWatch    = "MarketWatch"
	SourceFinancialTimes = "Financial Times"
	SourceGeneric        = "Financial News"
)

type sourceRule struct {
	needles   []string
	canonical string
}

var sourceRules = []sourceRule{
	{[]string{"reuters"}, SourceReuters},
	{[]string{"bloomberg"}, SourceBloomberg},
	{[]string{"wall street", "wsj"}, SourceWSJ},
	{[]string{"cnbc"}, SourceCNBC},
	{[]string{"marketwatch"}, SourceMarketWatch},
	{[]string{"financial times"}, SourceFinancialTimes},
}

// Prestige bonuses by canonical source
var sourceBonus = map[string]int{
	SourceWSJ:            15,
	SourceBloomberg:      12,
	SourceReuters:        12,
	SourceCNBC:           12,
	SourceMarketWatch:    12,
	SourceFinancialTimes: 10,
}
