// Package chat answers free-text questions about the energy markets with
// canned, keyword-routed responses.
package chat

import (
	"fmt"
	"strings"

	"github.com/aristath/energyintel/internal/modules/market"
)

// MarketContext carries the live quotes a response may quote
type MarketContext struct {
	Brent      float64
	WTI        float64
	Gas        float64
	LastUpdate string
}

// ContextFrom reads the current quotes, falling back to anchor prices
func ContextFrom(snapshot *market.Snapshot) MarketContext {
	return MarketContext{
		Brent:      snapshot.Get(market.Brent, market.DefaultPrice(market.Brent)),
		WTI:        snapshot.Get(market.WTI, market.DefaultPrice(market.WTI)),
		Gas:        snapshot.Get(market.Gas, market.DefaultPrice(market.Gas)),
		LastUpdate: snapshot.LastUpdate(),
	}
}

// Topic identifies which rule answered a message
type Topic string

const (
	TopicOil        Topic = "oil"
	TopicGas        Topic = "gas"
	TopicRenewable  Topic = "renewable"
	TopicCarbon     Topic = "carbon"
	TopicComparison Topic = "comparison"
	TopicTrends     Topic = "trends"
	TopicGreeting   Topic = "greeting"
	TopicHelp       Topic = "help"
	TopicDefault    Topic = "default"
)

type rule struct {
	topic    Topic
	keywords []string
	build    func(MarketContext) string
}

// rules are evaluated in order; the first match answers
var rules = []rule{
	{TopicOil, []string{"oil", "crude", "brent", "wti"}, oilResponse},
	{TopicGas, []string{"gas", "natural gas"}, gasResponse},
	{TopicRenewable, []string{"renewable", "solar", "wind", "clean energy"}, static(renewableText)},
	{TopicCarbon, []string{"carbon", "emissions", "co2"}, static(carbonText)},
	{TopicComparison, []string{"compare", "comparison", "vs", "versus"}, static(comparisonText)},
	{TopicTrends, []string{"trend", "trends", "forecast", "prediction"}, static(trendsText)},
	{TopicGreeting, []string{"hello", "hi", "hey"}, static(greetingText)},
	{TopicHelp, []string{"help", "what can you do"}, static(helpText)},
}

// Classify returns the topic that answers message
func Classify(message string) Topic {
	topic, _ := match(strings.ToLower(message))
	return topic
}

// Respond answers message using ctx for live figures
func Respond(message string, ctx MarketContext) string {
	_, build := match(strings.ToLower(message))
	return build(ctx)
}

func match(message string) (Topic, func(MarketContext) string) {
	for _, r := range rules {
		if mentionsAny(message, r.keywords) {
			return r.topic, r.build
		}
	}
	return TopicDefault, static(defaultText)
}

func static(text string) func(MarketContext) string {
	return func(MarketContext) string { return text }
}

func oilResponse(ctx MarketContext) string {
	return fmt.Sprintf("📊 **Current Oil Prices:**\n\n"+
		"🛢️ **Brent Crude:** $%.2f/barrel\n"+
		"🛢️ **WTI Crude:** $%.2f/barrel\n\n"+
		"Prices are updated every minute from live market data. "+
		"Click on the oil price cards in the dashboard to see detailed historical charts with official EIA data.\n\n"+
		"Would you like me to explain what's driving these price movements?", ctx.Brent, ctx.WTI)
}

func gasResponse(ctx MarketContext) string {
	return fmt.Sprintf("⛽ **Natural Gas Price:**\n\n"+
		"💨 **Henry Hub:** $%.2f/MMBtu\n\n"+
		"Natural gas is a key energy source for power generation and heating. "+
		"The price is influenced by weather patterns, storage levels, and production capacity.\n\n"+
		"Want to see how gas prices compare to renewable energy costs?", ctx.Gas)
}
