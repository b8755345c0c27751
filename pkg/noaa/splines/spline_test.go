package splines

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/spencer-p/tidedash/pkg/noaa"
)

func ExampleDiscrete() {
	tstart := time.Date(2021, time.April, 3, 10, 30, 0, 0, time.UTC)
	preds := noaa.Predictions{{
		Time:   noaa.Time(tstart),
		Height: 10,
	}, {
		Time:   noaa.Time(tstart.Add(1000 * time.Hour)),
		Height: 1,
	}}
	discrete := Discrete(CurvesBetween(preds), 10)
	for i := range discrete {
		fmt.Println(math.Round(discrete[i]))
	}
	// Output:
	// 10
	// 10
	// 9
	// 8
	// 6
	// 5
	// 3
	// 2
	// 1
	// 1
}

func TestSplineEval(t *testing.T) {
	t0 := time.Date(2025, time.June, 11, 4, 12, 0, 0, time.UTC)
	preds := noaa.Predictions{
		{Time: noaa.Time(t0), Height: 4, Type: noaa.HighTide},
		{Time: noaa.Time(t0.Add(6 * time.Hour)), Height: 0, Type: noaa.LowTide},
		{Time: noaa.Time(t0.Add(12 * time.Hour)), Height: 5, Type: noaa.HighTide},
	}
	s := CurvesBetween(preds)
	if len(s) != 2 {
		t.Fatalf("got %d curves, want 2", len(s))
	}

	table := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"first high", t0, 4},
		{"halfway down", t0.Add(3 * time.Hour), 2},
		{"low", t0.Add(6 * time.Hour), 0},
		{"halfway up", t0.Add(9 * time.Hour), 2.5},
		{"second high", t0.Add(12 * time.Hour), 5},
	}
	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			if got := s.Eval(test.at); math.Abs(got-test.want) > 1e-9 {
				t.Errorf("got %f, want %f", got, test.want)
			}
		})
	}

	for _, outside := range []time.Time{t0.Add(-time.Minute), t0.Add(12*time.Hour + time.Minute)} {
		if got := s.Eval(outside); !math.IsNaN(got) {
			t.Errorf("Eval(%s) = %f, want NaN", outside, got)
		}
	}
}

func TestSample(t *testing.T) {
	t0 := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)
	s := CurvesBetween(noaa.Predictions{
		{Time: noaa.Time(t0), Height: -1},
		{Time: noaa.Time(t0.Add(5 * time.Hour)), Height: 3},
	})

	points := s.Sample(time.Hour)
	if len(points) != 6 {
		t.Fatalf("got %d points, want 6", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Height < points[i-1].Height {
			t.Errorf("a rising tide fell between %s and %s", points[i-1].Time, points[i].Time)
		}
	}
	if points[5].Height != 3 {
		t.Errorf("last point %f, want 3", points[5].Height)
	}

	if got := Spline(nil).Sample(time.Hour); got != nil {
		t.Errorf("empty spline sampled %v", got)
	}
	if got := CurvesBetween(noaa.Predictions{{Time: noaa.Time(t0)}}); got != nil {
		t.Errorf("one prediction made %v", got)
	}
}
