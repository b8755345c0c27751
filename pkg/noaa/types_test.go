package noaa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParsePrediction(t *testing.T) {
	table := []struct {
		input string
		want  Prediction
	}{{
		input: `{"t":"2020-10-20 02:17", "v":"4.080", "type":"H"}`,
		want: Prediction{
			Time:   Time(time.Date(2020, time.October, 20, 2, 17, 0, 0, time.Local)),
			Height: 4.08,
			Type:   HighTide,
		},
	}, {
		input: `{"t":"2019-09-21 06:56", "v":"2.559", "type":"L"}`,
		want: Prediction{
			Time:   Time(time.Date(2019, time.September, 21, 6, 56, 0, 0, time.Local)),
			Height: 2.559,
			Type:   LowTide,
		},
	}}

	for _, test := range table {
		t.Run(test.input, func(t *testing.T) {
			var got Prediction

			dec := json.NewDecoder(bytes.NewBufferString(test.input))
			if err := dec.Decode(&got); err != nil {
				t.Errorf("unexpected error: %+v", err)
			}

			gotstr := fmt.Sprintf("%s", got)
			wantstr := fmt.Sprintf("%s", test.want)
			if diff := cmp.Diff(gotstr, wantstr); diff != "" {
				t.Errorf("incorrect parse (-got,+want): %s", diff)
			}
		})
	}
}

func TestParsePredictionErrors(t *testing.T) {
	table := []string{
		`{"t":"2020-10-20T02:17", "v":"4.080", "type":"H"}`,
		`{"t":"2020-10-20 02:17", "v":4.080, "type":"H"}`,
		`{"t":"2020-10-20 02:17", "v":"high", "type":"H"}`,
		`{"t":"2020-10-20 02:17", "v":"4.080", "type":"M"}`,
	}
	for _, input := range table {
		t.Run(input, func(t *testing.T) {
			var got Prediction
			if err := json.Unmarshal([]byte(input), &got); err == nil {
				t.Errorf("expected error, got %s", got)
			}
		})
	}
}

func TestPredictionsIn(t *testing.T) {
	pst := time.FixedZone("PST", -8*60*60)
	in := Predictions{{
		Time:   Time(time.Date(2020, time.October, 20, 2, 17, 0, 0, time.UTC)),
		Height: 4.08,
		Type:   HighTide,
	}}

	got := in.In(pst)
	want := time.Date(2020, time.October, 20, 2, 17, 0, 0, pst)
	if !got[0].T().Equal(want) {
		t.Errorf("got %s, want %s", got[0].T(), want)
	}
	if !in[0].T().Equal(time.Date(2020, time.October, 20, 2, 17, 0, 0, time.UTC)) {
		t.Errorf("In modified its receiver")
	}

	blob, err := json.Marshal(got[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(`{"t":"2020-10-20T02:17:00-08:00","v":4.08,"type":"H"}`, string(blob)); diff != "" {
		t.Errorf("unexpected encoding (-want,+got): %s", diff)
	}
}
