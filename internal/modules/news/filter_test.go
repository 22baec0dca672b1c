package news

import (
	"testing"

	"github.com/aristath/energyintel/internal/gateway"
	"github.com/stretchr/testify/assert"
)

func TestRelevantContent(t *testing.T) {
	tests := []struct {
		name    string
		article gateway.Article
		want    bool
	}{
		{
			name: "all three signals",
			article: gateway.Article{
				Title:       "Microsoft invests billion in nuclear power for AI data centers",
				Description: "The deal secures electricity for new facilities.",
				URL:         "https://example.com/ok",
			},
			want: true,
		},
		{
			name: "missing business term",
			article: gateway.Article{
				Title:       "Nvidia chips boost power grid load",
				Description: "Nvidia AI chips draw electricity at record levels.",
				URL:         "https://example.com/no-business",
			},
			want: false,
		},
		{
			name: "missing AI or tech term",
			article: gateway.Article{
				Title:       "Utility signs billion dollar deal for grid upgrade",
				Description: "New renewable power lines for the region.",
				URL:         "https://example.com/no-tech",
			},
			want: false,
		},
		{
			name: "missing energy term",
			article: gateway.Article{
				Title:       "Microsoft signs billion dollar cloud deal",
				Description: "The company expands its AI services.",
				URL:         "https://example.com/no-energy",
			},
			want: false,
		},
		{
			name: "ai inside another word does not count",
			article: gateway.Article{
				Title:       "Company said the billion dollar power plant will maintain output",
				Description: "Energy supply chain agreement signed.",
				URL:         "https://example.com/said",
			},
			want: false,
		},
		{
			name: "removed placeholder",
			article: gateway.Article{
				Title:       "[Removed]",
				Description: "Microsoft billion nuclear power",
				URL:         "https://example.com/removed",
			},
			want: false,
		},
		{
			name: "missing description",
			article: gateway.Article{
				Title: "Microsoft invests billion in nuclear power",
				URL:   "https://example.com/nodesc",
			},
			want: false,
		},
		{
			name: "missing url",
			article: gateway.Article{
				Title:       "Microsoft invests billion in nuclear power",
				Description: "AI energy deal",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := relevantContent(tt.article)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestCountTerm(t *testing.T) {
	tests := []struct {
		text string
		term string
		want int
	}{
		{"ai and ai-driven ai's", "ai", 3},
		{"said chain maintain", "ai", 0},
		{"billion billion million", "billion", 2},
		{"datacenters", "datacenter", 1},
		{"", "deal", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, countTerm(tt.text, tt.term))
		})
	}
}
