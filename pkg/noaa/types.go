package noaa

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const predTimeFormat = "2006-01-02 15:04"

// Prediction holds a single tide event prediction.
type Prediction struct {
	// Local time of tide prediction
	Time Time `json:"t"`
	// Height in feet
	Height Height `json:"v"`
	// High or Low tide, "H" or "L" when encoded
	Type Tide `json:"type"`
}

// Verify the custom types round trip.
var (
	_ json.Unmarshaler = new(Time)
	_ json.Unmarshaler = new(Height)
	_ json.Unmarshaler = new(Tide)
	_ json.Marshaler   = Time{}
	_ json.Marshaler   = Tide(0)
)

// Predictions is a time series of Prediction.
type Predictions []Prediction

// Result is the body NOAA answers a prediction query with. A failed query
// carries an error message instead of predictions.
type Result struct {
	Predictions Predictions `json:"predictions"`
	Error       *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// PredictionQuery asks for tide predictions at Station from the calendar day
// of Start through the calendar day of Start+Duration.
type PredictionQuery struct {
	Start    time.Time
	Duration time.Duration
	Station  Station
}

// End is the last instant the query covers.
func (q *PredictionQuery) End() time.Time {
	return q.Start.Add(q.Duration)
}

// Station is a NOAA CO-OPS station id.
type Station int

const (
	SantaCruz Station = 9413745
	Newport   Station = 8452660
)

func (s Station) String() string {
	return strconv.Itoa(int(s))
}

// ParseStation reads a station id.
func ParseStation(s string) (Station, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("station %q is not a positive number", s)
	}
	return Station(id), nil
}

// Time is a prediction time. Predictions are decoded in the location set by
// the query, time.Local if none.
type Time time.Time

// T returns the prediction time.
func (p Prediction) T() time.Time {
	return time.Time(p.Time)
}

func (t *Time) UnmarshalJSON(buf []byte) error {
	return t.unmarshalIn(buf, time.Local)
}

func (t *Time) unmarshalIn(buf []byte, loc *time.Location) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("prediction time %q not string: %w", buf, err)
	}
	parsed, err := time.ParseInLocation(predTimeFormat, s, loc)
	if err != nil {
		return fmt.Errorf("prediction time %q not in fmt %q: %w", s, predTimeFormat, err)
	}
	*t = Time(parsed)
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(time.RFC3339))
}

type Height float64

func (h *Height) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("water height %q not string: %w", buf, err)
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("water height %q not a float: %w", s, err)
	}
	*h = Height(parsed)
	return nil
}

type Tide uint

const (
	HighTide Tide = iota
	LowTide
)

func (t Tide) Valid() bool {
	return t == HighTide || t == LowTide
}

func (t *Tide) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("tide %q not a string: %w", buf, err)
	}
	switch s {
	case "H":
		*t = HighTide
	case "L":
		*t = LowTide
	default:
		return fmt.Errorf("invalid tide type %q", s)
	}
	return nil
}

func (t Tide) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t Tide) String() string {
	switch t {
	case HighTide:
		return "H"
	case LowTide:
		return "L"
	default:
		return "invalid"
	}
}

func (p Prediction) String() string {
	return fmt.Sprintf("{t: %s, v: %f, type: %s}",
		time.Time(p.Time).Format(time.RFC822),
		p.Height,
		p.Type.String())
}

// In moves every prediction to loc without changing its wall clock. NOAA
// answers in station local time, which the decoder can not know.
func (ps Predictions) In(loc *time.Location) Predictions {
	out := make(Predictions, len(ps))
	for i, p := range ps {
		t := p.T()
		p.Time = Time(time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc))
		out[i] = p
	}
	return out
}
