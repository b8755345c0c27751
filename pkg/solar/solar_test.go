package solar

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/nathan-osman/go-sunrise"
)

var (
	edt     = time.FixedZone("EDT", -4*60*60)
	newport = Place{41.4353, -71.4616, edt}
)

func ExampleCalculateSolarTimes() {
	st := CalculateSolarTimes(time.Date(2025, time.June, 21, 9, 30, 0, 0, edt), newport.Lat, newport.Long)
	fmt.Println(st.SunriseText(), st.SunsetText())
	fmt.Println(st.Daylight(), st.Darkness())
	fmt.Println(st.ChangeFromPrevious(), st.ChangeSinceSolstice())
	// Output:
	// 5:13 AM 8:24 PM
	// 15h 11m 8h 49m
	// same as yesterday +0h 0m
}

func TestSolsticeIsLongest(t *testing.T) {
	solstice := CalculateSolarTimes(time.Date(2025, time.June, 21, 0, 0, 0, 0, edt), newport.Lat, newport.Long)
	if solstice.DaylightMinutes < 900 || solstice.DaylightMinutes > 935 {
		t.Errorf("solstice daylight = %v minutes, want about 15h10m", solstice.DaylightMinutes)
	}
	for _, d := range []time.Time{
		time.Date(2025, time.March, 20, 0, 0, 0, 0, edt),
		time.Date(2025, time.September, 22, 0, 0, 0, 0, edt),
		time.Date(2025, time.December, 21, 0, 0, 0, 0, edt),
	} {
		other := CalculateSolarTimes(d, newport.Lat, newport.Long)
		if other.DaylightMinutes >= solstice.DaylightMinutes {
			t.Errorf("%s has %v minutes of daylight, not less than the solstice's %v",
				d.Format(dayFmt), other.DaylightMinutes, solstice.DaylightMinutes)
		}
	}
}

func TestChanges(t *testing.T) {
	table := []struct {
		date         time.Time
		wantPrevious string
		wantSolstice string
		wantRef      string
	}{{
		date:         time.Date(2025, time.March, 20, 0, 0, 0, 0, edt),
		wantPrevious: "+3m longer",
		wantSolstice: "+2h 58m",
		wantRef:      "2024-12-21",
	}, {
		date:         time.Date(2025, time.June, 20, 0, 0, 0, 0, edt),
		wantPrevious: "same as yesterday",
		wantSolstice: "+6h 0m",
		wantRef:      "2024-12-21",
	}, {
		date:         time.Date(2025, time.September, 22, 0, 0, 0, 0, edt),
		wantPrevious: "3m shorter",
		wantSolstice: "-3h 0m",
		wantRef:      "2025-06-21",
	}}

	for _, tc := range table {
		t.Run(tc.date.Format(dayFmt), func(t *testing.T) {
			st := CalculateSolarTimes(tc.date, newport.Lat, newport.Long)
			got := []string{st.ChangeFromPrevious(), st.ChangeSinceSolstice(), st.SolsticeReference.Format(dayFmt)}
			want := []string{tc.wantPrevious, tc.wantSolstice, tc.wantRef}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("changes (-want,+got):\n%s", diff)
			}
		})
	}
}

func TestSolsticeReference(t *testing.T) {
	table := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, edt), "2024-12-21"},
		{time.Date(2025, time.June, 20, 23, 59, 0, 0, edt), "2024-12-21"},
		{time.Date(2025, time.June, 21, 0, 0, 0, 0, edt), "2025-06-21"},
		{time.Date(2025, time.June, 21, 23, 59, 0, 0, edt), "2025-06-21"},
		{time.Date(2025, time.December, 25, 12, 0, 0, 0, edt), "2025-06-21"},
	}
	for _, tc := range table {
		if got := SolsticeReference(tc.date).Format(dayFmt); got != tc.want {
			t.Errorf("SolsticeReference(%s) = %s, want %s", tc.date, got, tc.want)
		}
	}
}

func TestDaylightDarknessComplement(t *testing.T) {
	places := []Place{
		newport,
		{-33.8688, 151.2093, time.FixedZone("AEST", 10*60*60)},
		{64.1466, -21.9426, time.UTC},
		{0, 0, time.UTC},
	}
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, p := range places {
		for i := 0; i < 365; i += 7 {
			st := CalculateSolarTimes(start.AddDate(0, 0, i).In(p.Location), p.Lat, p.Long)
			if !st.Finite() {
				t.Fatalf("%v on day %d: unexpected non-finite result", p, i)
			}
			if sum := st.DaylightMinutes + st.DarknessMinutes; math.Abs(sum-1440) > 1 {
				t.Errorf("%v on day %d: daylight+darkness = %v", p, i, sum)
			}
			if st.DaylightMinutes < 0 || st.DaylightMinutes > 1440 {
				t.Errorf("%v on day %d: daylight = %v out of range", p, i, st.DaylightMinutes)
			}
			if !st.Sunrise.Before(st.Sunset) {
				t.Errorf("%v on day %d: sunrise %s not before sunset %s", p, i, st.Sunrise, st.Sunset)
			}
		}
	}
}

func TestMatchesSunriseEquation(t *testing.T) {
	for _, d := range []time.Time{
		time.Date(2025, time.January, 14, 8, 0, 0, 0, edt),
		time.Date(2025, time.June, 11, 23, 0, 0, 0, edt),
		time.Date(2025, time.October, 2, 0, 0, 0, 0, edt),
	} {
		t.Run(d.Format(dayFmt), func(t *testing.T) {
			rise, set := sunrise.SunriseSunset(newport.Lat, newport.Long, d.Year(), d.Month(), d.Day())
			st := CalculateSolarTimes(d, newport.Lat, newport.Long)
			if !st.Sunrise.Equal(rise) || !st.Sunset.Equal(set) {
				t.Errorf("got %s to %s, want %s to %s", st.Sunrise, st.Sunset, rise, set)
			}
			if st.Sunrise.Location() != edt {
				t.Errorf("sunrise in %s, want the date's location", st.Sunrise.Location())
			}
			if want := math.Round(set.Sub(rise).Minutes()); st.DaylightMinutes != want {
				t.Errorf("daylight = %v, want %v", st.DaylightMinutes, want)
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	d := time.Date(2025, time.August, 3, 17, 0, 0, 0, edt)
	a := CalculateSolarTimes(d, newport.Lat, newport.Long)
	b := CalculateSolarTimes(d, newport.Lat, newport.Long)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("two runs differ (-a,+b):\n%s", diff)
	}
	// Only the calendar day matters.
	c := CalculateSolarTimes(time.Date(2025, time.August, 3, 1, 0, 0, 0, edt), newport.Lat, newport.Long)
	if diff := cmp.Diff(a, c); diff != "" {
		t.Errorf("time of day changed the result (-a,+c):\n%s", diff)
	}
}

func TestPolarNight(t *testing.T) {
	longyearbyen := time.FixedZone("CET", 60*60)
	st := CalculateSolarTimes(time.Date(2025, time.December, 21, 0, 0, 0, 0, longyearbyen), 78.2232, 15.6267)
	if st.Finite() {
		t.Fatalf("expected polar night to be non-finite, got %s", st)
	}
	if !math.IsNaN(st.DaylightMinutes) || !st.Sunrise.IsZero() || !st.Sunset.IsZero() {
		t.Errorf("polar night should have NaN minutes and zero times, got %+v", st)
	}
	if got := st.Daylight(); got != unknown {
		t.Errorf("Daylight() = %q, want %q", got, unknown)
	}

	blob, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("polar result should still encode: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(blob, &decoded); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if decoded["daylightMinutes"] != nil || decoded["sunriseTime"] != nil {
		t.Errorf("expected nulls for missing values, got %s", blob)
	}
}

func TestFormatting(t *testing.T) {
	table := []struct {
		name string
		got  string
		want string
	}{
		{"duration", FormatDuration(911), "15h 11m"},
		{"duration zero", FormatDuration(0), "0h 0m"},
		{"duration nan", FormatDuration(math.NaN()), "--"},
		{"signed positive", FormatSignedDuration(83.4), "+1h 23m"},
		{"signed negative", FormatSignedDuration(-45), "-0h 45m"},
		{"daily longer", FormatDailyChange(2.4), "+2m longer"},
		{"daily shorter", FormatDailyChange(-1.6), "2m shorter"},
		{"daily same", FormatDailyChange(0.99), "same as yesterday"},
		{"daily same negative", FormatDailyChange(-0.5), "same as yesterday"},
	}
	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}
