package utils

import (
	"fmt"
	"strings"
	"time"
)

// publishedAtLayouts covers the timestamp shapes the news providers emit:
// NewsAPI (RFC3339), NewsData.io ("2006-01-02 15:04:05", UTC) and RSS pubDate.
var publishedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02",
}

// ParsePublishedAt parses a provider timestamp. Timestamps without a zone are
// taken as UTC.
func ParsePublishedAt(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty timestamp")
	}

	for _, layout := range publishedAtLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized timestamp format: %q", raw)
}
