package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/spencer-p/tidedash/pkg/lowtide"
	"github.com/spencer-p/tidedash/pkg/metrics"
	"github.com/spencer-p/tidedash/pkg/noaa"
	"github.com/spencer-p/tidedash/pkg/noaa/splines"
	"github.com/spencer-p/tidedash/pkg/solar"
	"github.com/spencer-p/tidedash/pkg/timetricks"
	"github.com/spencer-p/tidedash/pkg/visualize"
)

const (
	defaultTideDays = 7
	minCurveStep    = 10 * time.Minute
)

// tideRequest is a station and a window of calendar days.
type tideRequest struct {
	station noaa.Station
	start   time.Time
	days    int
}

func (t tideRequest) key() string {
	return fmt.Sprintf("%s %s %d", t.station, t.start.Format("2006-01-02"), t.days)
}

func (h *Handlers) tideRequest(r *http.Request) (tideRequest, error) {
	station, err := h.station(r)
	if err != nil {
		return tideRequest{}, err
	}
	date, err := h.date(r)
	if err != nil {
		return tideRequest{}, err
	}
	days, err := intParam(r, "days", defaultTideDays, 1, maxDays)
	if err != nil {
		return tideRequest{}, err
	}
	return tideRequest{station: station, start: timetricks.TrimClock(date), days: days}, nil
}

// predictions answers req from the cache or from NOAA.
func (h *Handlers) predictions(ctx context.Context, req tideRequest) (noaa.Predictions, error) {
	// The station and calendar window fully determine the answer.
	if preds, ok := h.tideCache.Get(req.key()); ok {
		metrics.ObserveTideFetch("cache")
		return preds, nil
	}

	preds, err := h.tides.GetPredictions(ctx, &noaa.PredictionQuery{
		Start:    req.start,
		Duration: timetricks.AddDays(req.start, req.days-1).Sub(req.start),
		Station:  req.station,
	})
	if err != nil {
		metrics.ObserveTideFetch("error")
		return nil, fmt.Errorf("failed to fetch from NOAA: %w", err)
	}
	metrics.ObserveTideFetch("noaa")
	h.logger.Debug("Fetched tide predictions", "station", req.station.String(), "count", len(preds))
	if preds == nil {
		preds = noaa.Predictions{}
	}
	h.tideCache.Set(req.key(), preds)
	return preds, nil
}

type tidesResponse struct {
	Station     string           `json:"station"`
	Start       string           `json:"start"`
	Days        int              `json:"days"`
	Predictions noaa.Predictions `json:"predictions"`
	Curve       []splines.Point  `json:"curve,omitempty"`
}

func (h *Handlers) serveTides(w http.ResponseWriter, r *http.Request) {
	req, err := h.tideRequest(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	var step time.Duration
	if s := r.URL.Query().Get("step"); s != "" {
		if step, err = time.ParseDuration(s); err != nil || step < minCurveStep {
			h.writeError(w, http.StatusBadRequest, fmt.Errorf("step %q must be a duration of at least %s", s, minCurveStep))
			return
		}
	}

	preds, err := h.predictions(r.Context(), req)
	if err != nil {
		h.writeError(w, http.StatusBadGateway, err)
		return
	}

	resp := tidesResponse{
		Station:     req.station.String(),
		Start:       req.start.Format("2006-01-02"),
		Days:        req.days,
		Predictions: preds,
	}
	if step > 0 {
		resp.Curve = splines.CurvesBetween(preds).Sample(step)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) serveTideChart(w http.ResponseWriter, r *http.Request) {
	req, err := h.tideRequest(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	// Sun lines are drawn only when a place is known.
	sun, err := h.sunEventsFor(r, req)
	if err != nil && !errors.Is(err, errNoLocation) {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	preds, err := h.predictions(r.Context(), req)
	if err != nil {
		h.writeError(w, http.StatusBadGateway, err)
		return
	}

	var page bytes.Buffer
	title := fmt.Sprintf("Tides at %s", req.station)
	if err := visualize.RenderTides(&page, preds, sun, title); err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}

func (h *Handlers) serveTideWindows(w http.ResponseWriter, r *http.Request) {
	req, err := h.tideRequest(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	sun, err := h.sunEventsFor(r, req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	opts, err := windowOptions(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	preds, err := h.predictions(r.Context(), req)
	if err != nil {
		h.writeError(w, http.StatusBadGateway, err)
		return
	}
	h.writeJSON(w, http.StatusOK, lowtide.Find(lowtide.Conditions{Tides: preds, SunEvents: sun}, opts))
}

func (h *Handlers) sunEventsFor(r *http.Request, req tideRequest) (solar.SunEvents, error) {
	lat, lng, err := h.coordinates(r)
	if err != nil {
		return nil, err
	}
	return solar.GetSunEvents(req.start, time.Duration(req.days)*day, solar.Place{
		Lat:      lat,
		Long:     lng,
		Location: req.start.Location(),
	}), nil
}

func windowOptions(r *http.Request) (lowtide.Options, error) {
	var o lowtide.Options
	q := r.URL.Query()
	if s := q.Get("maxHeight"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return o, fmt.Errorf("maxHeight %q is not a number", s)
		}
		o.MaxHeight = &f
	}
	if s := q.Get("twilight"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d < 0 {
			return o, fmt.Errorf("twilight %q is not a duration", s)
		}
		o.Twilight = d
	}
	return o, nil
}

// station reads the station parameter, falling back to the saved location.
func (h *Handlers) station(r *http.Request) (noaa.Station, error) {
	if s := r.URL.Query().Get("station"); s != "" {
		return noaa.ParseStation(s)
	}
	if loc, ok := h.sessionLocation(r); ok && loc.Station > 0 {
		return noaa.Station(loc.Station), nil
	}
	return 0, fmt.Errorf("station is required when the saved location has none")
}
