// Package nature evaluates seasonal rules, like "lilacs bloom once days pass
// 14 hours", against a solar series to produce chart bands and markers.
//
// The rule engine does not exist yet. EvaluateRules accepts rules and returns
// an empty result so callers can be written against the final shape.
package nature

import (
	"github.com/spencer-p/tidedash/pkg/series"
)

// Rule describes a seasonal event in terms of daylight.
type Rule struct {
	Name string `json:"name"`
	// Kind is "band" for a span of days or "marker" for a single day.
	Kind string `json:"kind"`
	// MinDaylightHr and MaxDaylightHr bound the daylight the event needs.
	// Zero means unbounded.
	MinDaylightHr float64 `json:"minDaylightHr,omitempty"`
	MaxDaylightHr float64 `json:"maxDaylightHr,omitempty"`
	// Waxing restricts the rule to lengthening days, waning to shortening
	// ones. Both false matches either.
	Waxing bool `json:"waxing,omitempty"`
	Waning bool `json:"waning,omitempty"`
}

// Band is a span of the June-shifted series.
type Band struct {
	Rule  string  `json:"rule"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Marker is a single point of the June-shifted series.
type Marker struct {
	Rule  string  `json:"rule"`
	Index float64 `json:"index"`
}

// Result holds what EvaluateRules found.
type Result struct {
	Bands   []Band   `json:"bands"`
	Markers []Marker `json:"markers"`
}

// EvaluateRules matches rules against s. It currently always returns an empty
// result.
func EvaluateRules(s *series.SolarSeries, rules []Rule) Result {
	return Result{
		Bands:   []Band{},
		Markers: []Marker{},
	}
}
