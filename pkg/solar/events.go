package solar

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/keep94/sunrise"

	"github.com/spencer-p/tidedash/pkg/timetricks"
)

// Place is a lat/long coordinate on the Earth matched with its time zone.
type Place struct {
	Lat, Long float64
	Location  *time.Location
}

// SunEvents is a time series of SunEvent.
type SunEvents []SunEvent

// SunEvent is a sunrise or sunset event.
type SunEvent struct {
	Time  time.Time `json:"time"`
	Event Event     `json:"event"`
}

func (s *SunEvent) String() string {
	return fmt.Sprintf("%s %s", s.Time.Format(time.RFC822), s.Event)
}

// Event encodes a sunrise or sunset event.
type Event bool

const (
	Sunrise Event = true
	Sunset  Event = false
)

func (e Event) String() string {
	if e == Sunrise {
		return "Sunrise"
	}
	return "Sunset"
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// GetSunEvents returns a list of ordered sun events from the starting time to
// the end time in the given place. The first result will always be a sunrise
// on start's calendar day. Days without a sunrise or sunset are skipped.
func GetSunEvents(start time.Time, duration time.Duration, place Place) SunEvents {
	if place.Location == nil {
		place.Location = time.UTC
	}
	start = start.In(place.Location)

	var s sunrise.Sunrise
	s.Around(place.Lat, place.Long, timetricks.Noon(start))

	// Around picks the nearest solar day, which is not always the calendar
	// day we asked for. Nudge it by at most a day either way.
	day := timetricks.TrimClock(start)
	for i := 0; i < 2 && !timetricks.SameDay(start, s.Sunrise().In(place.Location)); i++ {
		if s.Sunrise().Before(day) {
			s.AddDays(1)
		} else {
			s.AddDays(-1)
		}
	}

	numDays := int(math.Ceil(duration.Hours() / 24))
	ret := make(SunEvents, 0, numDays*2)
	for i := 0; i < numDays; i++ {
		rise, set := s.Sunrise(), s.Sunset()
		s.AddDays(1)
		if rise.IsZero() || set.IsZero() {
			continue
		}
		ret = append(ret,
			SunEvent{rise.In(place.Location), Sunrise},
			SunEvent{set.In(place.Location), Sunset})
	}
	return ret
}
