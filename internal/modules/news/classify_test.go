package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		content string
		want    Category
	}{
		{"microsoft pours billion into ai power", CategoryAIInvestment},
		{"new server farm for ai draws power", CategoryDatacenterInvestment},
		{"utility plans energy infrastructure upgrade", CategoryEnergyInfrastructure},
		{"microsoft expands nuclear power deal for ai", CategoryTechEnergyStrategy},
		{"ai chip demand strains the grid", CategoryAIMarketTrends},
		{"electricity costs climb as ai grows", CategoryEnergyEconomics},
		{"ai grid deal", DefaultCategory},
		// Priority order: investment beats company names
		{"nvidia funding round", CategoryAIInvestment},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			got := classify(tt.content)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsCategory(got))
		})
	}
}

func TestChooseImage(t *testing.T) {
	own := "https://cdn.example.com/photo.jpg"

	assert.Equal(t, own, chooseImage(own, CategoryAIMarketTrends))
	assert.Equal(t, categoryImages[CategoryAIMarketTrends], chooseImage("", CategoryAIMarketTrends))
	assert.Equal(t, categoryImages[CategoryEnergyEconomics], chooseImage("https://x/placeholder.png", CategoryEnergyEconomics))
	assert.Equal(t, categoryImages[CategoryTechEnergyStrategy], chooseImage("https://x/logo.SVG", CategoryTechEnergyStrategy))
	assert.Equal(t, categoryImages[DefaultCategory], categoryImage(Category("Sports")))
	assert.False(t, IsCategory(Category("Sports")))
}
