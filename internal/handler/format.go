package handler

import (
	"strings"
	"time"
)

const noDatePlaceholder = "No date"

var publishedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// FormatPublishedAt renders a NewsAPI timestamp for display, e.g.
// "15 January 2024, 10:30". Unparseable input falls back to the part before
// the first 'T', which is the whole string when no 'T' is present.
func FormatPublishedAt(raw string) string {
	if raw == "" {
		return noDatePlaceholder
	}

	for _, layout := range publishedAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02 January 2006, 15:04")
		}
	}

	date, _, _ := strings.Cut(raw, "T")
	return date
}
