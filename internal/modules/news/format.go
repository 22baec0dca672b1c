package news

import (
	"fmt"
	"time"
)

const (
	titleBound   = 85
	summaryBound = 130
	ellipsis     = "..."
	recentLabel  = "Recent"
)

// truncate cuts s to bound runes and appends an ellipsis when it was longer
func truncate(s string, bound int) string {
	runes := []rune(s)
	if len(runes) <= bound {
		return s
	}
	return string(runes[:bound]) + ellipsis
}

var publishedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.RFC1123Z,
	time.RFC1123,
}

// timeAgo renders the age of a timestamp relative to now
func timeAgo(published string, now time.Time) string {
	var (
		t   time.Time
		err error
	)
	for _, layout := range publishedLayouts {
		if t, err = time.Parse(layout, published); err == nil {
			break
		}
	}
	if err != nil {
		return recentLabel
	}

	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff >= 24*time.Hour:
		return plural(int(diff/(24*time.Hour)), "day")
	case diff >= time.Hour:
		return plural(int(diff/time.Hour), "hour")
	default:
		return plural(int(diff/time.Minute), "minute")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
