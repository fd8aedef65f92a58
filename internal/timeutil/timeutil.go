package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MonthLayout defines the archive month format used by the chess.com API (YYYY/MM).
const MonthLayout = "2006/01"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseMonth parses a YYYY/MM month string.
func ParseMonth(value string) (time.Time, error) {
	return time.Parse(MonthLayout, value)
}

// FormatMonth formats a time as YYYY/MM in its current location.
func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}

// MonthsBetween returns every month from start to end inclusive, in YYYY/MM
// format. Start and end may be equal. Returns an error when either bound is
// malformed or end precedes start.
func MonthsBetween(start, end string) ([]string, error) {
	from, err := ParseMonth(start)
	if err != nil {
		return nil, fmt.Errorf("invalid start month %q: %w", start, err)
	}
	to, err := ParseMonth(end)
	if err != nil {
		return nil, fmt.Errorf("invalid end month %q: %w", end, err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("end month %s precedes start month %s", end, start)
	}

	var months []string
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 1, 0) {
		months = append(months, FormatMonth(cur))
	}
	return months, nil
}
