package visualize

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/spencer-p/tidedash/pkg/noaa"
	"github.com/spencer-p/tidedash/pkg/noaa/splines"
	"github.com/spencer-p/tidedash/pkg/solar"
)

var tideStart = time.Date(2025, time.June, 11, 4, 0, 0, 0, time.UTC)

var testPreds = noaa.Predictions{
	{Time: noaa.Time(tideStart), Height: 4.3, Type: noaa.HighTide},
	{Time: noaa.Time(tideStart.Add(6 * time.Hour)), Height: -0.2, Type: noaa.LowTide},
	{Time: noaa.Time(tideStart.Add(12 * time.Hour)), Height: 3.9, Type: noaa.HighTide},
}

func TestSunLines(t *testing.T) {
	points := splines.CurvesBetween(testPreds).Sample(TideStep)
	sun := solar.SunEvents{
		{Time: tideStart.Add(-2 * time.Hour), Event: solar.Sunset},
		{Time: tideStart.Add(time.Hour + 10*time.Minute), Event: solar.Sunrise},
		{Time: tideStart.Add(11 * time.Hour), Event: solar.Sunset},
		{Time: tideStart.Add(20 * time.Hour), Event: solar.Sunrise},
	}

	var got []string
	var idx []int
	for _, item := range sunLines(points, sun) {
		got = append(got, item.Name)
		idx = append(idx, item.XAxis.(int))
	}
	if diff := cmp.Diff([]string{"Sunrise", "Sunset"}, got); diff != "" {
		t.Errorf("unexpected lines (-want,+got): %s", diff)
	}
	if diff := cmp.Diff([]int{2, 22}, idx); diff != "" {
		t.Errorf("unexpected positions (-want,+got): %s", diff)
	}
}

func TestRenderTides(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTides(&buf, testPreds, nil, "Tides at 8452660"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Tides at 8452660") {
		t.Errorf("page is missing its title")
	}

	if err := RenderTides(&buf, testPreds[:1], nil, "too few"); err == nil {
		t.Errorf("expected an error for a single prediction")
	}
}
