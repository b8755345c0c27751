package lunar

import (
	"sort"
	"time"

	"github.com/spencer-p/tidedash/pkg/timetricks"
)

const secPerDay = 24 * 60 * 60

// IsDateFullMoon reports whether the UTC calendar day of t holds a full moon.
// Only the exact day matches; the days either side do not. Days outside the
// table's years are never full moons.
func IsDateFullMoon(t time.Time) bool {
	return contains(fullMoonDays, timetricks.EpochDay(t))
}

// IsDateNewMoon is IsDateFullMoon for new moons.
func IsDateNewMoon(t time.Time) bool {
	return contains(newMoonDays, timetricks.EpochDay(t))
}

// NextFullMoon returns the first full moon day on or after the UTC calendar
// day of t. ok is false once t is past the end of the table.
func NextFullMoon(t time.Time) (day time.Time, ok bool) {
	return next(fullMoonDays, timetricks.EpochDay(t))
}

// NextNewMoon is NextFullMoon for new moons.
func NextNewMoon(t time.Time) (day time.Time, ok bool) {
	return next(newMoonDays, timetricks.EpochDay(t))
}

// TableRange returns the first and last UTC days covered by the event tables.
func TableRange() (first, last time.Time) {
	lo, hi := fullMoonDays[0], fullMoonDays[len(fullMoonDays)-1]
	if newMoonDays[0] < lo {
		lo = newMoonDays[0]
	}
	if n := newMoonDays[len(newMoonDays)-1]; n > hi {
		hi = n
	}
	return fromEpochDay(lo), fromEpochDay(hi)
}

func contains(days []int32, day int) bool {
	i := search(days, day)
	return i < len(days) && int(days[i]) == day
}

func next(days []int32, day int) (time.Time, bool) {
	i := search(days, day)
	if i == len(days) {
		return time.Time{}, false
	}
	return fromEpochDay(days[i]), true
}

// search finds the index of the first entry not before day.
func search(days []int32, day int) int {
	return sort.Search(len(days), func(i int) bool {
		return int(days[i]) >= day
	})
}

func fromEpochDay(day int32) time.Time {
	return time.Unix(int64(day)*secPerDay, 0).UTC()
}
