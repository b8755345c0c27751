// Package series builds a year of daily daylight lengths for a place and
// locates the solstices and equinoxes in it.
//
// The days are re-indexed to start at the summer solstice so a chart of the
// year is one hump instead of a curve cut in half at New Year.
package series

import (
	"encoding/json"
	"math"
	"time"

	"github.com/spencer-p/tidedash/pkg/solar"
	"github.com/spencer-p/tidedash/pkg/timetricks"
)

// equinoxHours is the day length an equinox crossing is detected at.
const equinoxHours = 12.0

// SolarDay is the daylight on one calendar day.
type SolarDay struct {
	Date       time.Time
	DaylightHr float64
}

func (d SolarDay) MarshalJSON() ([]byte, error) {
	var hr *float64
	if !math.IsNaN(d.DaylightHr) && !math.IsInf(d.DaylightHr, 0) {
		hr = &d.DaylightHr
	}
	return json.Marshal(struct {
		Date       string   `json:"date"`
		DaylightHr *float64 `json:"daylightHr"`
	}{d.Date.Format("2006-01-02"), hr})
}

// Indices locate the solstices and equinoxes in JuneShiftedDays. Equinoxes
// are fractional, interpolated between the two days that straddle 12 hours.
//
// Summer is always 0. An equinox whose crossing was not found in its months
// is also 0, which can not be told apart from the summer solstice by value.
type Indices struct {
	Summer float64 `json:"summer"`
	Winter float64 `json:"winter"`
	Spring float64 `json:"spring"`
	Autumn float64 `json:"autumn"`
}

// SolarSeries is a year of daylight at one place. It must not be modified
// after it is built; the builder hands the same value to every caller.
type SolarSeries struct {
	Year int     `json:"year"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`

	// Days holds every day of Year from January 1.
	Days []SolarDay `json:"days"`
	// JuneShiftedDays holds the same days starting at the summer solstice
	// and wrapping around past December 31.
	JuneShiftedDays []SolarDay `json:"juneShiftedDays"`
	Indices         Indices    `json:"indices"`

	// SpringFound and AutumnFound report whether each equinox crossing was
	// seen.
	SpringFound bool `json:"springFound"`
	AutumnFound bool `json:"autumnFound"`
}

// Build computes the series for year at lat, lng without caching. Days are
// sampled at local noon in loc.
func Build(lat, lng float64, year int, loc *time.Location) *SolarSeries {
	if loc == nil {
		loc = time.UTC
	}
	total := timetricks.DaysInYear(year)
	days := make([]SolarDay, total)
	jan1 := time.Date(year, time.January, 1, 12, 0, 0, 0, loc)
	for i := range days {
		d := jan1.AddDate(0, 0, i)
		days[i] = SolarDay{
			Date:       d,
			DaylightHr: solar.Daylight(d, lat, lng) / 60,
		}
	}

	s := &SolarSeries{
		Year: year,
		Lat:  lat,
		Lng:  lng,
		Days: days,
	}
	raw := s.scan()

	summer := int(raw.Summer)
	s.JuneShiftedDays = make([]SolarDay, total)
	for i := range s.JuneShiftedDays {
		s.JuneShiftedDays[i] = days[(i+summer)%total]
	}

	shift := func(i float64) float64 {
		return math.Mod(i-raw.Summer+float64(total), float64(total))
	}
	s.Indices = Indices{
		Summer: 0,
		Winter: shift(raw.Winter),
	}
	if s.SpringFound {
		s.Indices.Spring = shift(raw.Spring)
	}
	if s.AutumnFound {
		s.Indices.Autumn = shift(raw.Autumn)
	}
	return s
}

// scan makes one pass over Days and returns the unshifted indices of the
// longest day, the shortest day and both equinox crossings.
func (s *SolarSeries) scan() Indices {
	var idx Indices
	maxHr, minHr := math.Inf(-1), math.Inf(1)

	for i, day := range s.Days {
		hr := day.DaylightHr
		if hr > maxHr {
			maxHr = hr
			idx.Summer = float64(i)
		}
		if hr < minHr {
			minHr = hr
			idx.Winter = float64(i)
		}
		if i == 0 {
			continue
		}

		prev := s.Days[i-1].DaylightHr
		switch day.Date.Month() {
		case time.March, time.April:
			if !s.SpringFound && prev < equinoxHours && hr >= equinoxHours {
				idx.Spring = float64(i-1) + (equinoxHours-prev)/(hr-prev)
				s.SpringFound = true
			}
		case time.September, time.October:
			if !s.AutumnFound && prev > equinoxHours && hr <= equinoxHours {
				idx.Autumn = float64(i-1) + (prev-equinoxHours)/(prev-hr)
				s.AutumnFound = true
			}
		}
	}
	return idx
}

// Day returns the June-shifted day at a possibly fractional index, rounding
// to the nearest day and wrapping around the year.
func (s *SolarSeries) Day(index float64) SolarDay {
	n := len(s.JuneShiftedDays)
	i := int(math.Round(index)) % n
	if i < 0 {
		i += n
	}
	return s.JuneShiftedDays[i]
}
