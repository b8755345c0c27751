// Package solar computes sunrise, sunset and daylight length for a calendar
// day at a coordinate.
//
// Rise and set come from github.com/nathan-osman/go-sunrise, which solves the
// sunrise equation for the sun's center 0.83 degrees below the horizon. The
// library reports whole seconds, so minute counts carry that resolution.
//
// Latitudes where the sun never rises or never sets on a day have no hour
// angle. Those results are not special-cased: times are zero and every minute
// count is NaN. Use SolarTimes.Finite to tell them apart.
package solar

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/spencer-p/tidedash/pkg/timetricks"
)

const minutesPerDay = 24 * 60

// riseSet returns sunrise and sunset on date's calendar day in date's
// location. ok is false when the sun does not cross the horizon that day.
func riseSet(date time.Time, lat, lng float64) (rise, set time.Time, ok bool) {
	rise, set = sunrise.SunriseSunset(lat, lng, date.Year(), date.Month(), date.Day())
	if rise.IsZero() || set.IsZero() || !set.After(rise) {
		return time.Time{}, time.Time{}, false
	}
	loc := date.Location()
	return rise.In(loc), set.In(loc), true
}

// daylight is the unrounded minutes between rise and set, or NaN.
func daylight(rise, set time.Time, ok bool) float64 {
	if !ok {
		return math.NaN()
	}
	return set.Sub(rise).Minutes()
}

// Daylight returns the unrounded minutes between sunrise and sunset on date's
// calendar day.
func Daylight(date time.Time, lat, lng float64) float64 {
	return daylight(riseSet(date, lat, lng))
}

// CalculateSolarTimes computes sunrise, sunset and the daylight comparisons
// for the calendar day of date in date's location.
func CalculateSolarTimes(date time.Time, lat, lng float64) SolarTimes {
	rise, set, ok := riseSet(date, lat, lng)
	today := daylight(rise, set, ok)

	yesterday := Daylight(timetricks.AddDays(date, -1), lat, lng)
	ref := SolsticeReference(date)
	atSolstice := Daylight(ref, lat, lng)

	rounded := math.Round(today)
	return SolarTimes{
		Date:                       timetricks.TrimClock(date),
		Sunrise:                    rise,
		Sunset:                     set,
		DaylightMinutes:            rounded,
		DarknessMinutes:            minutesPerDay - rounded,
		ChangeFromPreviousMinutes:  today - yesterday,
		ChangeSinceSolsticeMinutes: today - atSolstice,
		SolsticeReference:          ref,
	}
}

// SolsticeReference picks the solstice a date is compared against. On or
// after June 21 it is June 21 of the same year; before that it is December 21
// of the previous year.
func SolsticeReference(date time.Time) time.Time {
	loc := date.Location()
	june := time.Date(date.Year(), time.June, 21, 0, 0, 0, 0, loc)
	if !timetricks.TrimClock(date).Before(june) {
		return june
	}
	return time.Date(date.Year()-1, time.December, 21, 0, 0, 0, 0, loc)
}
