// Package splines joins hi/lo tide predictions into a continuous tide curve.
package splines

import (
	"encoding/json"
	"math"
	"time"

	"github.com/spencer-p/tidedash/pkg/noaa"
)

// Curve eases from one tide event to the next. Its slope is zero at Start and
// End, where the tide turns, and it is undefined outside them.
type Curve struct {
	Start, End time.Time
	From, To   float64
}

// A Spline is a run of curves, each starting where the previous one ends.
type Spline []Curve

// Point is a sampled tide height.
type Point struct {
	Time   time.Time `json:"time"`
	Height float64   `json:"height"`
}

// CurvesBetween links consecutive predictions. Fewer than two predictions
// make an empty spline.
func CurvesBetween(preds noaa.Predictions) Spline {
	if len(preds) < 2 {
		return nil
	}

	curves := make(Spline, len(preds)-1)
	for i := range curves {
		curves[i] = Curve{
			Start: preds[i].T(),
			End:   preds[i+1].T(),
			From:  float64(preds[i].Height),
			To:    float64(preds[i+1].Height),
		}
	}
	return curves
}

// Eval is the tide height at t, or NaN outside the spline.
func (s Spline) Eval(t time.Time) float64 {
	left, right := 0, len(s)
	for right > left {
		mid := left + (right-left)/2
		if t.Before(s[mid].Start) {
			right = mid
		} else if t.After(s[mid].End) {
			left = mid + 1
		} else {
			return s[mid].Eval(t)
		}
	}
	return math.NaN()
}

// Sample evaluates the spline every step from its start through its end.
func (s Spline) Sample(step time.Duration) []Point {
	if len(s) == 0 || step <= 0 {
		return nil
	}
	start, end := s[0].Start, s[len(s)-1].End
	points := make([]Point, 0, int(end.Sub(start)/step)+1)
	for t := start; !t.After(end); t = t.Add(step) {
		points = append(points, Point{Time: t, Height: s.Eval(t)})
	}
	return points
}

// Discrete evaluates n evenly spaced heights across the spline.
func Discrete(s Spline, n int) []float64 {
	if len(s) < 1 || n < 2 {
		return nil
	}
	start, end := s[0].Start, s[len(s)-1].End
	step := time.Duration(float64(end.Sub(start)) / float64(n-1))

	result := make([]float64, n)
	for i := range result {
		t := start.Add(step * time.Duration(i))
		if i == n-1 {
			t = end
		}
		result[i] = s.Eval(t)
	}
	return result
}

func (c Curve) Eval(t time.Time) float64 {
	if t.Before(c.Start) || t.After(c.End) {
		return math.NaN()
	}
	span := c.End.Sub(c.Start)
	if span <= 0 {
		return c.From
	}
	u := float64(t.Sub(c.Start)) / float64(span)
	return c.From + (c.To-c.From)*u*u*(3-2*u)
}

func (c Curve) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start int64   `json:"start"`
		End   int64   `json:"end"`
		From  float64 `json:"from"`
		To    float64 `json:"to"`
	}{c.Start.Unix(), c.End.Unix(), c.From, c.To})
}
