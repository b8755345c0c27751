package timetricks

import (
	"fmt"
	"time"
)

const (
	dayFormat = "2006-01-02"
	secPerDay = 24 * 60 * 60
)

// SameDay reports whether t and t2 fall on the same calendar day in their own
// locations.
func SameDay(t time.Time, t2 time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// TrimClock returns midnight of t's calendar day in t's location.
func TrimClock(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Noon returns local noon of t's calendar day. Computations that only care
// about the calendar day use it to stay clear of DST transitions.
func Noon(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days, keeping the wall clock.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DayKey returns the UTC calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayFormat)
}

// EpochDay returns the number of whole days between 1970-01-01 and the UTC
// calendar day of t. Days before the epoch are negative.
func EpochDay(t time.Time) int {
	sec := t.Unix()
	day := sec / secPerDay
	if sec%secPerDay < 0 {
		day--
	}
	return int(day)
}

// DaysInYear is 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// ParseDay reads a date either as YYYY-MM-DD in loc or as RFC3339.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(dayFormat, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is neither %s nor RFC3339: %w", s, dayFormat, err)
	}
	return t.In(loc), nil
}
