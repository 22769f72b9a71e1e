package utils

import "time"

const DayFormat = "2006-01-02"

// ResolveRange computes the upstream query window for a "last N days"
// view. The from instant is daysBack days before now with the time
// component forced to 00:00:00; to is now at 23:59:59.
func ResolveRange(daysBack int, now time.Time) (from, to time.Time) {
	start := now.AddDate(0, 0, -daysBack)
	from = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
	to = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	return from, to
}

// DayBounds expands a bare YYYY-MM-DD date into the start or end instant
// of that day. Returns the zero time when dateStr does not parse.
func DayBounds(dateStr string, endOfDay bool) time.Time {
	t, err := time.Parse(DayFormat, dateStr)
	if err != nil {
		return time.Time{}
	}
	if endOfDay {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
	}
	return t
}
