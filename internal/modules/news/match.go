package news

import (
	"strings"
	"unicode"
)

// shortTermLength is the length below which a term must match a whole word,
// so that "ai" does not match inside "said" or "chain".
const shortTermLength = 3

// containsTerm reports whether the lower-cased text contains term
func containsTerm(text, term string) bool {
	return countTerm(text, term) > 0
}

// countTerm counts non-overlapping occurrences of term in text
func countTerm(text, term string) int {
	if len(term) >= shortTermLength {
		return strings.Count(text, term)
	}

	n := 0
	for i := 0; i+len(term) <= len(text); {
		idx := strings.Index(text[i:], term)
		if idx < 0 {
			break
		}
		start := i + idx
		end := start + len(term)
		if isBoundary(text, start-1) && isBoundary(text, end) {
			n++
		}
		i = end
	}
	return n
}

func isBoundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	r := rune(text[i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if containsTerm(text, t) {
			return true
		}
	}
	return false
}
