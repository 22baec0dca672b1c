package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aristath/energyintel/internal/modules/history"
	"github.com/aristath/energyintel/internal/modules/market"
	"github.com/aristath/energyintel/internal/modules/news"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#00E5FF")
	colorMuted  = lipgloss.Color("#6C7086")
	colorWarn   = lipgloss.Color("#FAB387")

	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)

func renderSeries(s history.PriceSeries) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s price history", s.Instrument)))
	b.WriteString("\n")

	provenance := labelStyle.Render(s.Provenance)
	if s.Source == history.SourceSynthetic {
		provenance = warnStyle.Render(s.Provenance)
	}
	b.WriteString(provenance)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%s to %s, %d points",
		s.RangeStart.Format("2006-01-02"), s.RangeEnd.Format("2006-01-02"), s.Len())))
	b.WriteString("\n\n")

	for i, label := range s.Labels {
		fmt.Fprintf(&b, "  %s  %8.2f\n", label, s.Prices[i])
	}

	if s.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(fmt.Sprintf("min %.2f  max %.2f  mean %.2f  change %+.2f%%",
			s.Stats.Min, s.Stats.Max, s.Stats.Mean, s.Stats.ChangePct)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderInstruments(instruments []history.Instrument) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Instruments"))
	b.WriteString("\n")
	for _, inst := range instruments {
		fmt.Fprintf(&b, "  %-6s %-6s %s\n", inst.Key, inst.SeriesKey, labelStyle.Render(inst.Name))
	}
	return b.String()
}

func renderNews(r news.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Trending energy news"))
	b.WriteString(" ")
	if r.Provenance == news.ProvenanceCurated {
		b.WriteString(warnStyle.Render("(curated)"))
	} else {
		b.WriteString(labelStyle.Render("(live)"))
	}
	b.WriteString("\n\n")

	for i, a := range r.Articles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, a.Title)
		b.WriteString("   ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%s · %s · %s · score %d", a.Source, a.Category, a.TimeAgo, a.Score)))
		b.WriteString("\n")
		if a.URL != "" {
			b.WriteString("   ")
			b.WriteString(labelStyle.Render(a.URL))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderSnapshot(s market.MarketSnapshot) string {
	commodities := make([]string, 0, len(s.Prices))
	for c := range s.Prices {
		commodities = append(commodities, c)
	}
	sort.Strings(commodities)

	var rows []string
	for _, c := range commodities {
		rows = append(rows, fmt.Sprintf("%-6s %8.2f", c, s.Prices[c]))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Market snapshot"))
	b.WriteString(" ")
	b.WriteString(labelStyle.Render(s.UpdatedAt.Format("15:04:05")))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")
	return b.String()
}
