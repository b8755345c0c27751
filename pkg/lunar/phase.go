// Package lunar answers two different questions about the moon.
//
// CalculateMoonPhase gives the approximate phase of any instant from a mean
// synodic month anchored at a known new moon. IsDateFullMoon and
// IsDateNewMoon say whether a calendar day holds the true full or new moon,
// using a precomputed table. The two do not always agree near a phase
// boundary, and the table wins for "is today the full moon".
package lunar

import (
	"math"
	"time"
)

// SynodicMonth is the mean length of a lunar cycle in days.
const SynodicMonth = 29.53058867

// referenceNewMoon is the new moon of 2000-01-06 18:14 UTC.
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// Phase names one eighth of the lunar cycle.
type Phase string

const (
	NewMoon        Phase = "New Moon"
	WaxingCrescent Phase = "Waxing Crescent"
	FirstQuarter   Phase = "First Quarter"
	WaxingGibbous  Phase = "Waxing Gibbous"
	FullMoon       Phase = "Full Moon"
	WaningGibbous  Phase = "Waning Gibbous"
	LastQuarter    Phase = "Last Quarter"
	WaningCrescent Phase = "Waning Crescent"
)

// phaseBounds are the exclusive upper bounds, in days into the cycle, of every
// phase but the last. Waning Crescent runs to the end of the cycle.
var phaseBounds = []struct {
	upTo  float64
	phase Phase
}{
	{1.84566, NewMoon},
	{5.53699, WaxingCrescent},
	{9.22831, FirstQuarter},
	{12.91963, WaxingGibbous},
	{16.61096, FullMoon},
	{20.30228, WaningGibbous},
	{23.99361, LastQuarter},
}

// Phases lists every phase in cycle order starting from the new moon.
func Phases() []Phase {
	return []Phase{
		NewMoon, WaxingCrescent, FirstQuarter, WaxingGibbous,
		FullMoon, WaningGibbous, LastQuarter, WaningCrescent,
	}
}

// MoonPhase is the state of the moon at an instant.
type MoonPhase struct {
	Phase Phase `json:"phase"`
	// Illumination is the lit percentage of the disc, 0 to 100.
	Illumination int `json:"illumination"`
	// Age is the number of days since the last mean new moon, in
	// [0, SynodicMonth).
	Age float64 `json:"age"`
}

// CalculateMoonPhase returns the phase and illumination of the moon at t.
func CalculateMoonPhase(t time.Time) MoonPhase {
	age := CyclePosition(t)
	return MoonPhase{
		Phase:        phaseAt(age),
		Illumination: illumination(age),
		Age:          age,
	}
}

// CyclePosition is the number of days since the last mean new moon before t.
// It is never negative, including for instants before the reference.
func CyclePosition(t time.Time) float64 {
	days := t.Sub(referenceNewMoon).Hours() / 24
	return math.Mod(math.Mod(days, SynodicMonth)+SynodicMonth, SynodicMonth)
}

func illumination(age float64) int {
	return int(math.Round((1 - math.Cos(age/SynodicMonth*2*math.Pi)) * 50))
}

func phaseAt(age float64) Phase {
	for _, b := range phaseBounds {
		if age < b.upTo {
			return b.phase
		}
	}
	return WaningCrescent
}
