package solar

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const (
	clockFmt = "3:04 PM"
	dayFmt   = "2006-01-02"

	// unknown stands in for any value that could not be computed.
	unknown = "--"
)

// SolarTimes describes the sun on one calendar day at one place. All minute
// counts are NaN when the sun does not rise or set that day.
type SolarTimes struct {
	// Date is midnight of the calendar day the times belong to.
	Date time.Time

	// Sunrise and Sunset are zero when they do not happen.
	Sunrise, Sunset time.Time

	// DaylightMinutes is the rounded time between sunrise and sunset.
	DaylightMinutes float64
	// DarknessMinutes completes DaylightMinutes to a full day.
	DarknessMinutes float64

	// ChangeFromPreviousMinutes is today's daylight less yesterday's.
	ChangeFromPreviousMinutes float64
	// ChangeSinceSolsticeMinutes is today's daylight less the daylight on
	// SolsticeReference.
	ChangeSinceSolsticeMinutes float64
	SolsticeReference          time.Time
}

// Finite reports whether the sun both rose and set.
func (s SolarTimes) Finite() bool {
	return isFinite(s.DaylightMinutes)
}

// SunriseText is the local clock time of sunrise, like "5:13 AM".
func (s SolarTimes) SunriseText() string {
	return clock(s.Sunrise)
}

// SunsetText is the local clock time of sunset.
func (s SolarTimes) SunsetText() string {
	return clock(s.Sunset)
}

// Daylight is DaylightMinutes as "Xh Ym".
func (s SolarTimes) Daylight() string {
	return FormatDuration(s.DaylightMinutes)
}

// Darkness is DarknessMinutes as "Xh Ym".
func (s SolarTimes) Darkness() string {
	return FormatDuration(s.DarknessMinutes)
}

// ChangeFromPrevious describes the day-over-day change in daylight.
func (s SolarTimes) ChangeFromPrevious() string {
	return FormatDailyChange(s.ChangeFromPreviousMinutes)
}

// ChangeSinceSolstice is the signed change since the reference solstice, like
// "+6h 0m" or "-1h 12m".
func (s SolarTimes) ChangeSinceSolstice() string {
	return FormatSignedDuration(s.ChangeSinceSolsticeMinutes)
}

func (s SolarTimes) String() string {
	return fmt.Sprintf("%s: sunrise %s, sunset %s, %s of daylight (%s)",
		s.Date.Format(dayFmt),
		s.SunriseText(),
		s.SunsetText(),
		s.Daylight(),
		s.ChangeFromPrevious())
}

// solarTimesJSON is the wire form of SolarTimes.
type solarTimesJSON struct {
	Date                       string     `json:"date"`
	Sunrise                    string     `json:"sunrise"`
	Sunset                     string     `json:"sunset"`
	SunriseTime                *time.Time `json:"sunriseTime"`
	SunsetTime                 *time.Time `json:"sunsetTime"`
	DaylightMinutes            *float64   `json:"daylightMinutes"`
	DarknessMinutes            *float64   `json:"darknessMinutes"`
	Daylight                   string     `json:"daylight"`
	Darkness                   string     `json:"darkness"`
	ChangeFromPrevious         string     `json:"changeFromPrevious"`
	ChangeFromPreviousMinutes  *float64   `json:"changeFromPreviousMinutes"`
	ChangeSinceSolstice        string     `json:"changeSinceSolstice"`
	ChangeSinceSolsticeMinutes *float64   `json:"changeSinceSolsticeMinutes"`
	SolsticeReference          string     `json:"solsticeReference"`
}

// MarshalJSON writes the formatted strings next to the raw values. NaN minute
// counts and missing times become null, which encoding/json cannot do on its
// own.
func (s SolarTimes) MarshalJSON() ([]byte, error) {
	return json.Marshal(solarTimesJSON{
		Date:                       s.Date.Format(dayFmt),
		Sunrise:                    s.SunriseText(),
		Sunset:                     s.SunsetText(),
		SunriseTime:                timeOrNil(s.Sunrise),
		SunsetTime:                 timeOrNil(s.Sunset),
		DaylightMinutes:            finiteOrNil(s.DaylightMinutes),
		DarknessMinutes:            finiteOrNil(s.DarknessMinutes),
		Daylight:                   s.Daylight(),
		Darkness:                   s.Darkness(),
		ChangeFromPrevious:         s.ChangeFromPrevious(),
		ChangeFromPreviousMinutes:  finiteOrNil(s.ChangeFromPreviousMinutes),
		ChangeSinceSolstice:        s.ChangeSinceSolstice(),
		ChangeSinceSolsticeMinutes: finiteOrNil(s.ChangeSinceSolsticeMinutes),
		SolsticeReference:          s.SolsticeReference.Format(dayFmt),
	})
}

// FormatDuration renders minutes as "Xh Ym".
func FormatDuration(minutes float64) string {
	if !isFinite(minutes) {
		return unknown
	}
	total := int(math.Round(minutes))
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// FormatSignedDuration renders minutes as "+Xh Ym" or "-Xh Ym".
func FormatSignedDuration(minutes float64) string {
	if !isFinite(minutes) {
		return unknown
	}
	sign := "+"
	if minutes < 0 {
		sign = "-"
	}
	return sign + FormatDuration(math.Abs(minutes))
}

// FormatDailyChange renders a day-over-day daylight delta. Changes under a
// minute either way read as the same.
func FormatDailyChange(minutes float64) string {
	switch {
	case !isFinite(minutes):
		return unknown
	case math.Abs(minutes) < 1:
		return "same as yesterday"
	case minutes > 0:
		return fmt.Sprintf("+%dm longer", int(math.Round(minutes)))
	default:
		return fmt.Sprintf("%dm shorter", int(math.Round(-minutes)))
	}
}

func clock(t time.Time) string {
	if t.IsZero() {
		return unknown
	}
	return t.Format(clockFmt)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteOrNil(f float64) *float64 {
	if !isFinite(f) {
		return nil
	}
	return &f
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
