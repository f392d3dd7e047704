package utils

import "time"

// DateLayout is the calendar-date format used everywhere: ISO YYYY-MM-DD.
const DateLayout = "2006-01-02"

// TodayString returns the current calendar date in UTC.
func TodayString() string {
	return time.Now().UTC().Format(DateLayout)
}

// ParseDate validates a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DaysBetween returns the whole-day difference to - from. Both dates are
// YYYY-MM-DD strings compared in UTC, so the result never drifts with the
// wall clock.
func DaysBetween(from, to string) (int, error) {
	a, err := time.Parse(DateLayout, from)
	if err != nil {
		return 0, err
	}
	b, err := time.Parse(DateLayout, to)
	if err != nil {
		return 0, err
	}
	return int(b.Sub(a).Hours() / 24), nil
}
