package news

import (
	"strings"

	"github.com/aristath/energyintel/internal/gateway"
)

const removedMarker = "[Removed]"

// relevantContent returns the lower-cased title+description of an article that
// passes the relevance filter. The filter needs a title, url and description,
// rejects removed-source placeholders, and requires a business term, an AI/tech
// term and an energy term together.
func relevantContent(a gateway.Article) (string, bool) {
	if strings.TrimSpace(a.Title) == "" || strings.TrimSpace(a.URL) == "" {
		return "", false
	}
	if strings.TrimSpace(a.Description) == "" {
		return "", false
	}
	if strings.Contains(a.Title, removedMarker) {
		return "", false
	}

	content := strings.ToLower(a.Title + " " + a.Description)

	if !containsAny(content, businessTerms) ||
		!containsAny(content, aiTechTerms) ||
		!containsAny(content, energyTerms) {
		return "", false
	}

	return content, true
}
