package chat

import (
	"math/rand"
	"testing"

	"github.com/aristath/energyintel/internal/modules/market"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		message  string
		expected Topic
	}{
		{"What's the oil price?", TopicOil},
		{"Brent vs WTI", TopicOil},
		{"How is natural gas doing", TopicGas},
		{"gasoline costs", TopicGas},
		{"Tell me about solar", TopicRenewable},
		{"How do renewables compare to fossil fuels?", TopicRenewable},
		{"CO2 levels", TopicCarbon},
		{"compare coal and hydro", TopicComparison},
		{"coal vs hydro", TopicComparison},
		{"any forecast?", TopicTrends},
		{"Hi there", TopicGreeting},
		{"hey", TopicGreeting},
		{"help", TopicHelp},
		{"What can you do", TopicHelp},
		{"Which is cheaper", TopicDefault},
		{"they said so", TopicDefault},
		{"water will boil", TopicDefault},
		{"windows update", TopicRenewable},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.message))
		})
	}
}

func TestRespond_OilUsesContext(t *testing.T) {
	resp := Respond("crude prices please", MarketContext{Brent: 75.5, WTI: 71.234, Gas: 2.7})

	assert.Contains(t, resp, "**Brent Crude:** $75.50/barrel")
	assert.Contains(t, resp, "**WTI Crude:** $71.23/barrel")
	assert.NotContains(t, resp, `\n`)
}

func TestRespond_GasUsesContext(t *testing.T) {
	resp := Respond("natural gas?", MarketContext{Brent: 75, WTI: 71, Gas: 2.789})

	assert.Contains(t, resp, "**Henry Hub:** $2.79/MMBtu")
}

func TestRespond_FirstRuleWins(t *testing.T) {
	// Mentions both oil and solar; oil comes first
	resp := Respond("oil or solar?", MarketContext{Brent: 74.25, WTI: 70.8, Gas: 2.65})
	assert.Contains(t, resp, "Current Oil Prices")
}

func TestRespond_Default(t *testing.T) {
	assert.Equal(t, defaultText, Respond("tell me a joke", MarketContext{}))
}

func TestContextFrom(t *testing.T) {
	snapshot := market.NewSnapshot(rand.NewSource(1), zerolog.Nop())

	ctx := ContextFrom(snapshot)
	assert.Equal(t, 74.25, ctx.Brent)
	assert.Equal(t, 70.80, ctx.WTI)
	assert.Equal(t, 2.65, ctx.Gas)
	assert.NotEmpty(t, ctx.LastUpdate)

	require.NoError(t, snapshot.Refresh())
	ctx = ContextFrom(snapshot)
	assert.Equal(t, snapshot.Get(market.Brent, 0), ctx.Brent)
	assert.Equal(t, snapshot.Get(market.Gas, 0), ctx.Gas)
}

func TestMentions(t *testing.T) {
	tests := []struct {
		message  string
		keyword  string
		expected bool
	}{
		{"hi", "hi", true},
		{"which", "hi", false},
		{"history", "hi", false},
		{"coal vs. oil", "vs", true},
		{"renewables", "renewable", true},
		{"nonrenewable", "renewable", false},
		{"what can you do?", "what can you do", true},
		{"", "oil", false},
	}

	for _, tt := range tests {
		t.Run(tt.message+"/"+tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.expected, mentions(tt.message, tt.keyword))
		})
	}
}
