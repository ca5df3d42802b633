package core

import (
	"strings"
	"time"
)

// DateLayout is the wire format for civil dates.
const DateLayout = "2006-01-02"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// DateOf returns the civil date of t in loc, normalized to midnight UTC.
// All accrual date arithmetic happens in this normalized space so that a
// "day" is always exactly 24 hours from its neighbours (no DST surprises).
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a normalized civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t, time.UTC), nil
}

func NextDay(d time.Time) time.Time { return d.AddDate(0, 0, 1) }

func PrevDay(d time.Time) time.Time { return d.AddDate(0, 0, -1) }

// DaysBetween returns the whole number of days from `from` to `to`.
// Both arguments must be normalized civil dates.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// MinDate returns the earlier of two dates.
func MinDate(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
