package normalize

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order for full date-time parsing. SumUp
// reports RFC3339 with a Z suffix, GoodTill a space-separated local form.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp normalizes a provider timestamp into a calendar-date
// bucket key and an hour of day.
//
// The date key is taken from the first 10 characters whenever the raw
// string is already YYYY-MM-DD prefixed, which tolerates trailing
// garbage without a full date-time parse. The hour is only available
// when the whole string parses; malformed timestamps return ok=false
// and must never abort aggregation of the remaining records.
func ParseTimestamp(raw string) (dateKey string, hour int, ok bool) {
	if raw == "" {
		return "", -1, false
	}

	if isDatePrefixed(raw) {
		dateKey = raw[:10]
	}

	// A trailing Z is an alias for the +00:00 UTC offset.
	candidate := raw
	if strings.HasSuffix(candidate, "Z") {
		candidate = strings.TrimSuffix(candidate, "Z") + "+00:00"
		if t, err := time.Parse("2006-01-02T15:04:05-07:00", candidate); err == nil {
			return dateKey, t.Hour(), true
		}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return dateKey, t.Hour(), true
		}
	}
	return dateKey, -1, false
}

// isDatePrefixed reports whether s starts with a YYYY-MM-DD shape.
func isDatePrefixed(s string) bool {
	if len(s) < 10 {
		return false
	}
	for i, c := range s[:10] {
		switch i {
		case 4, 7:
			if c != '-' {
				return false
			}
		default:
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}
