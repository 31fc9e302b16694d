package domain

import (
	"strings"
	"time"
)

// NoDateLabel is shown wherever a date field is missing or unparseable.
const NoDateLabel = "no date data"

const displayDateLayout = "02/01/2006"

// dateLayouts are the two shapes the backend actually emits: full RFC 3339
// timestamps and bare calendar dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate parses a raw date string from the backend. Malformed input of
// any kind collapses to the zero time; callers branch on IsZero rather than
// on an error, so a bad date can never abort a listing.
func ParseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}

	return time.Time{}
}

// FormatDate renders a raw date string as dd/mm/yyyy, or NoDateLabel when
// the input does not parse.
func FormatDate(raw string) string {
	parsed := ParseDate(raw)
	if parsed.IsZero() {
		return NoDateLabel
	}

	return parsed.Format(displayDateLayout)
}
