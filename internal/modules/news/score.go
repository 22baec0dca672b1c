package news

import "strings"

const (
	baseScore          = 85
	financialTermBonus = 2
	majorCompanyBonus  = 4
	aiEnergyBonus      = 6
)

// normalizeSource maps a provider's source name onto the canonical set
func normalizeSource(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range sourceRules {
		for _, needle := range rule.needles {
			if strings.Contains(lower, needle) {
				return rule.canonical
			}
		}
	}
	if strings.TrimSpace(name) == "" {
		return SourceGeneric
	}
	return name
}

// score rates an article by source prestige and keyword density, clamped to [0, 99]
func score(source, content string) int {
	s := baseScore + sourceBonus[source]

	for _, term := range financialTerms {
		s += financialTermBonus * countTerm(content, term)
	}
	if containsAny(content, majorCompanies) {
		s += majorCompanyBonus
	}
	if containsAny(content, aiEnergyPhrases) {
		s += aiEnergyBonus
	}

	if s > MaxScore {
		return MaxScore
	}
	if s < MinScore {
		return MinScore
	}
	return s
}
