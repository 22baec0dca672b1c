package chat

import (
	"strings"
	"unicode"
)

// shortKeywordLength is the length below which a keyword has to be a whole
// word. Longer keywords only need to start a word, so "renewable" matches
// "renewables" while "oil" does not match "boil".
const shortKeywordLength = 3

// mentions reports whether the lower-cased message contains keyword
func mentions(message, keyword string) bool {
	for i := 0; i+len(keyword) <= len(message); {
		idx := strings.Index(message[i:], keyword)
		if idx < 0 {
			return false
		}
		start := i + idx
		end := start + len(keyword)
		if isBoundary(message, start-1) && (len(keyword) >= shortKeywordLength || isBoundary(message, end)) {
			return true
		}
		i = start + 1
	}
	return false
}

func isBoundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	r := rune(s[i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func mentionsAny(message string, keywords []string) bool {
	for _, k := range keywords {
		if mentions(message, k) {
			return true
		}
	}
	return false
}
