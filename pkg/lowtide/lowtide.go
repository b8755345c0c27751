// Package lowtide finds low tides a person can actually get to: low enough,
// and in daylight or close to it.
package lowtide

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spencer-p/tidedash/pkg/lunar"
	"github.com/spencer-p/tidedash/pkg/noaa"
	"github.com/spencer-p/tidedash/pkg/solar"
)

const (
	DefaultMaxHeight = 2.0 // feet
	DefaultTwilight  = 30 * time.Minute

	timeFmt = "3:04 PM"
	dayFmt  = "Mon Jan 2"
)

// Conditions is what windows are found in. Both series must be in time order.
type Conditions struct {
	Tides     noaa.Predictions
	SunEvents solar.SunEvents
}

// Options tune which low tides count. Zero values use the defaults.
type Options struct {
	// MaxHeight is the highest low tide, in feet, worth reporting.
	MaxHeight *float64
	// Twilight is how far before sunrise or after sunset a tide still counts.
	Twilight time.Duration
}

func (o Options) maxHeight() float64 {
	if o.MaxHeight == nil {
		return DefaultMaxHeight
	}
	return *o.MaxHeight
}

func (o Options) twilight() time.Duration {
	if o.Twilight <= 0 {
		return DefaultTwilight
	}
	return o.Twilight
}

// Window is one reachable low tide.
type Window struct {
	Time    time.Time `json:"time"`
	Height  float64   `json:"height"`
	Reasons []string  `json:"reasons"`
	// SpringTide is set when the tide falls within a day of a full or new
	// moon, when lows run lowest.
	SpringTide bool `json:"springTide"`
}

func (w Window) String() string {
	return fmt.Sprintf("%s at %s, %s",
		w.Time.Format(dayFmt),
		w.Time.Format(timeFmt),
		strings.Join(w.Reasons, " and "))
}

// Find returns the low tides in c that pass o, in time order.
func Find(c Conditions, o Options) []Window {
	result := []Window{}
	for _, tide := range c.Tides {
		if tide.Type != noaa.LowTide || float64(tide.Height) > o.maxHeight() {
			continue
		}

		w, ok := daylight(tide, c.SunEvents, o.twilight())
		if !ok {
			continue
		}
		if moon := nearSyzygy(w.Time); moon != "" {
			w.SpringTide = true
			w.Reasons = append(w.Reasons, "spring tide near the "+moon)
		}
		result = append(result, w)
	}
	return result
}

// daylight decides whether tide happens with enough light to see.
func daylight(tide noaa.Prediction, events solar.SunEvents, twilight time.Duration) (Window, bool) {
	t := tide.T()
	w := Window{
		Time:    t,
		Height:  float64(tide.Height),
		Reasons: []string{fmt.Sprintf("tide is low at %.1f ft", float64(tide.Height))},
	}

	i := lastEventBefore(t, events)
	if i < 0 {
		// Before the first event. Only a sunrise soon after helps.
		if len(events) > 0 && events[0].Event == solar.Sunrise {
			return beforeSunrise(w, events[0], twilight)
		}
		return Window{}, false
	}

	if events[i].Event == solar.Sunrise {
		w.Reasons = append(w.Reasons, "the sun is up")
		return w, true
	}

	if diff := t.Sub(events[i].Time); diff <= twilight {
		w.Reasons = append(w.Reasons, fmt.Sprintf("%.0f minutes after sunset", diff.Minutes()))
		return w, true
	}
	if i+1 < len(events) {
		return beforeSunrise(w, events[i+1], twilight)
	}
	return Window{}, false
}

func beforeSunrise(w Window, sunrise solar.SunEvent, twilight time.Duration) (Window, bool) {
	diff := sunrise.Time.Sub(w.Time)
	if diff > twilight {
		return Window{}, false
	}
	w.Reasons = append(w.Reasons, fmt.Sprintf("only %.0f minutes before sunrise", diff.Minutes()))
	return w, true
}

// lastEventBefore returns the index of the last event before t, or -1.
func lastEventBefore(t time.Time, events solar.SunEvents) int {
	i := sort.Search(len(events), func(i int) bool {
		return !events[i].Time.Before(t)
	})
	return i - 1
}

// nearSyzygy names the full or new moon within a day of t, if any.
func nearSyzygy(t time.Time) string {
	for _, d := range []int{0, -1, 1} {
		day := t.AddDate(0, 0, d)
		if lunar.IsDateFullMoon(day) {
			return "full moon"
		}
		if lunar.IsDateNewMoon(day) {
			return "new moon"
		}
	}
	return ""
}
