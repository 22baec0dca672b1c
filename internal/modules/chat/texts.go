package chat

const renewableText = "🌱 **Renewable Energy Insights:**\n\n" +
	"☀️ **Solar LCOE:** ~$42.30/MWh\n" +
	"💨 **Wind LCOE:** ~$38.50/MWh\n" +
	"⚡ **US Electricity:** $0.168/kWh\n\n" +
	"Renewable energy costs have dropped dramatically over the past decade. " +
	"Solar and wind are now the cheapest forms of electricity in most regions.\n\n" +
	"Check out the 'Sector Comparison' tab to see detailed renewable vs fossil fuel trends!"

const carbonText = "🌍 **Carbon Market Update:**\n\n" +
	"💨 **EU Carbon Price:** ~€94.50/tonne CO2\n" +
	"📉 **Emissions Trend:** Declining in developed markets\n" +
	"🎯 **Net Zero Goals:** Driving policy changes\n\n" +
	"Carbon pricing is becoming a major factor in energy investment decisions. " +
	"The EU ETS is the world's largest carbon market.\n\n" +
	"Want to see the carbon pricing chart?"

const comparisonText = "⚖️ **Energy Sector Comparison:**\n\n" +
	"**Fossil Fuels:**\n" +
	"• Oil: ~$74/barrel\n" +
	"• Natural Gas: ~$2.65/MMBtu\n" +
	"• Coal: ~$135/ton\n\n" +
	"**Renewables:**\n" +
	"• Solar: ~$42/MWh\n" +
	"• Wind: ~$38/MWh\n" +
	"• Hydro: ~$45/MWh\n\n" +
	"Renewables are now cost-competitive with fossil fuels in most markets. " +
	"Switch to the 'Sector Comparison' tab for interactive charts!"

const trendsText = "📈 **Energy Market Trends:**\n\n" +
	"🔄 **Key Trends:**\n" +
	"• Renewable energy share growing ~8% annually\n" +
	"• Oil demand plateauing in developed markets\n" +
	"• Natural gas serving as 'transition fuel'\n" +
	"• Carbon pricing expanding globally\n" +
	"• AI/datacenter energy demand surging\n\n" +
	"The energy transition is accelerating, with renewables becoming the dominant new capacity additions worldwide."

const greetingText = "👋 **Hello! I'm your Energy Intelligence Assistant.**\n\n" +
	"I can help you with:\n" +
	"• Current oil, gas, and renewable energy prices\n" +
	"• Market trends and analysis\n" +
	"• Sector comparisons\n" +
	"• Carbon market updates\n" +
	"• Historical data insights\n\n" +
	"What would you like to know about energy markets today?"

const helpText = "🤖 **I can help you with:**\n\n" +
	"**📊 Market Data:**\n" +
	"• Current oil & gas prices\n" +
	"• Renewable energy costs\n" +
	"• Regional price variations\n\n" +
	"**📈 Analysis:**\n" +
	"• Market trends & forecasts\n" +
	"• Sector comparisons\n" +
	"• Carbon market updates\n\n" +
	"**💡 Try asking:**\n" +
	"• 'What's the oil price?'\n" +
	"• 'Compare solar vs oil costs'\n" +
	"• 'Show me renewable trends'\n" +
	"• 'What's driving energy markets?'\n\n" +
	"Just type your question naturally!"

const defaultText = "🤔 I'd be happy to help with energy market information!\n\n" +
	"I specialize in:\n" +
	"• Oil & gas prices\n" +
	"• Renewable energy data\n" +
	"• Market trends & analysis\n" +
	"• Sector comparisons\n\n" +
	"Try asking something like:\n" +
	"• 'What's the current oil price?'\n" +
	"• 'How do renewables compare to fossil fuels?'\n" +
	"• 'Show me energy trends'\n\n" +
	"What would you like to know?"
