// Package handlers serves the almanac over HTTP.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/spencer-p/tidedash/pkg/cache"
	"github.com/spencer-p/tidedash/pkg/data"
	"github.com/spencer-p/tidedash/pkg/lunar"
	"github.com/spencer-p/tidedash/pkg/nature"
	"github.com/spencer-p/tidedash/pkg/noaa"
	"github.com/spencer-p/tidedash/pkg/series"
	"github.com/spencer-p/tidedash/pkg/solar"
	"github.com/spencer-p/tidedash/pkg/timetricks"
	"github.com/spencer-p/tidedash/pkg/visualize"
)

const (
	day     = 24 * time.Hour
	maxDays = 31

	// cache for slightly less than one day so daily clients don't see stale
	// data
	defaultTideTTL = 23 * time.Hour

	defaultLocationsLimit = 50
)

var errNoLocation = errors.New("lat and lng are required when no location is saved")

// Options wires Handlers to its dependencies. Nil fields get working
// defaults.
type Options struct {
	Builder  *series.Builder
	Tides    *noaa.Client
	Store    data.Store
	Sessions sessions.Store
	// Location is the zone plain dates are read in.
	Location *time.Location
	TideTTL  time.Duration
	Logger   *slog.Logger
}

// Handlers holds the state shared by every endpoint.
type Handlers struct {
	builder   *series.Builder
	tides     *noaa.Client
	store     data.Store
	sessions  sessions.Store
	loc       *time.Location
	logger    *slog.Logger
	tideCache *cache.Timed[noaa.Predictions]
	now       func() time.Time
}

func New(o Options) *Handlers {
	h := &Handlers{
		builder:  o.Builder,
		tides:    o.Tides,
		store:    o.Store,
		sessions: o.Sessions,
		loc:      o.Location,
		logger:   o.Logger,
		now:      time.Now,
	}
	if h.loc == nil {
		h.loc = time.UTC
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if h.builder == nil {
		h.builder = series.NewBuilder(series.WithLocation(h.loc), series.WithLogger(h.logger))
	}
	if h.tides == nil {
		h.tides = &noaa.Client{}
	}
	if h.store == nil {
		h.store = data.NewMemory()
	}
	if h.sessions == nil {
		h.sessions = NewSessionStore("", "")
	}
	ttl := o.TideTTL
	if ttl == 0 {
		ttl = defaultTideTTL
	}
	h.tideCache = cache.NewTimed[noaa.Predictions](ttl)
	return h
}

// Register adds every endpoint to r.
func (h *Handlers) Register(r *mux.Router) {
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/sun", h.serveSun).Methods(http.MethodGet)
	api.HandleFunc("/sun/events", h.serveSunEvents).Methods(http.MethodGet)
	api.HandleFunc("/moon", h.serveMoon).Methods(http.MethodGet)
	api.HandleFunc("/series", h.serveSeries).Methods(http.MethodGet)
	api.HandleFunc("/series/chart", h.serveSeriesChart).Methods(http.MethodGet)
	api.HandleFunc("/nature", h.serveNature).Methods(http.MethodPost)
	api.HandleFunc("/tides", h.serveTides).Methods(http.MethodGet)
	api.HandleFunc("/tides/chart", h.serveTideChart).Methods(http.MethodGet)
	api.HandleFunc("/tides/windows", h.serveTideWindows).Methods(http.MethodGet)
	api.HandleFunc("/location", h.serveGetLocation).Methods(http.MethodGet)
	api.HandleFunc("/location", h.servePostLocation).Methods(http.MethodPost)
	api.HandleFunc("/locations", h.serveLocations).Methods(http.MethodGet)
}

func (h *Handlers) serveSun(w http.ResponseWriter, r *http.Request) {
	lat, lng, err := h.coordinates(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	date, err := h.date(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	h.writeJSON(w, http.StatusOK, solar.CalculateSolarTimes(date, lat, lng))
}

func (h *Handlers) serveSunEvents(w http.ResponseWriter, r *http.Request) {
	lat, lng, err := h.coordinates(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	loc := h.loc
	if tz := r.URL.Query().Get("tz"); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, fmt.Errorf("unknown time zone %q: %w", tz, err))
			return
		}
	}
	date, err := h.dateIn(r, loc)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	days, err := intParam(r, "days", 1, 1, maxDays)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	events := solar.GetSunEvents(date, time.Duration(days)*day, solar.Place{
		Lat:      lat,
		Long:     lng,
		Location: loc,
	})
	if events == nil {
		events = solar.SunEvents{}
	}
	h.writeJSON(w, http.StatusOK, events)
}

type moonResponse struct {
	lunar.MoonPhase
	Date         string `json:"date"`
	FullMoon     bool   `json:"fullMoon"`
	NewMoon      bool   `json:"newMoon"`
	NextFullMoon string `json:"nextFullMoon,omitempty"`
	NextNewMoon  string `json:"nextNewMoon,omitempty"`
}

func (h *Handlers) serveMoon(w http.ResponseWriter, r *http.Request) {
	date, err := h.date(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	// Event tables are keyed by UTC day; local noon lands on the same day for
	// every zone within twelve hours of UTC.
	noon := timetricks.Noon(date)
	resp := moonResponse{
		MoonPhase: lunar.CalculateMoonPhase(date),
		Date:      date.Format("2006-01-02"),
		FullMoon:  lunar.IsDateFullMoon(noon),
		NewMoon:   lunar.IsDateNewMoon(noon),
	}
	if t, ok := lunar.NextFullMoon(noon); ok {
		resp.NextFullMoon = timetricks.DayKey(t)
	}
	if t, ok := lunar.NextNewMoon(noon); ok {
		resp.NextNewMoon = timetricks.DayKey(t)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) solarSeries(r *http.Request) (*series.SolarSeries, error) {
	lat, lng, err := h.coordinates(r)
	if err != nil {
		return nil, err
	}
	year, err := intParam(r, "year", h.now().In(h.loc).Year(), 1, 9999)
	if err != nil {
		return nil, err
	}
	return h.builder.GetSolarSeries(lat, lng, year), nil
}

func (h *Handlers) serveSeries(w http.ResponseWriter, r *http.Request) {
	s, err := h.solarSeries(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handlers) serveSeriesChart(w http.ResponseWriter, r *http.Request) {
	s, err := h.solarSeries(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	var page bytes.Buffer
	if err := visualize.RenderDaylight(&page, s); err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}

type natureRequest struct {
	Rules []nature.Rule `json:"rules"`
}

func (h *Handlers) serveNature(w http.ResponseWriter, r *http.Request) {
	var req natureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read rules: %w", err))
		return
	}
	s, err := h.solarSeries(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nature.EvaluateRules(s, req.Rules))
}

// coordinates reads lat and lng from the query, or from the saved location
// when the query has neither.
func (h *Handlers) coordinates(r *http.Request) (lat, lng float64, err error) {
	q := r.URL.Query()
	latStr, lngStr := q.Get("lat"), q.Get("lng")
	if latStr == "" && lngStr == "" {
		if loc, ok := h.sessionLocation(r); ok {
			return loc.Lat, loc.Lng, nil
		}
		return 0, 0, errNoLocation
	}
	if lat, err = parseCoordinate("lat", latStr, 90); err != nil {
		return 0, 0, err
	}
	if lng, err = parseCoordinate("lng", lngStr, 180); err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}

func parseCoordinate(name, s string, limit float64) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, fmt.Errorf("%s %q is not a number", name, s)
	}
	if f < -limit || f > limit {
		return 0, fmt.Errorf("%s %g is outside [-%g, %g]", name, f, limit, limit)
	}
	return f, nil
}

// date reads the date parameter, defaulting to now.
func (h *Handlers) date(r *http.Request) (time.Time, error) {
	return h.dateIn(r, h.loc)
}

func (h *Handlers) dateIn(r *http.Request, loc *time.Location) (time.Time, error) {
	s := r.URL.Query().Get("date")
	if s == "" {
		return h.now().In(loc), nil
	}
	return timetricks.ParseDay(s, loc)
}

func intParam(r *http.Request, name string, def, min, max int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number", name, s)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%s %d is outside [%d, %d]", name, n, min, max)
	}
	return n, nil
}

func (h *Handlers) writeJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.logger.Error("Failed to encode JSON result", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

func (h *Handlers) writeError(w http.ResponseWriter, code int, err error) {
	if code >= http.StatusInternalServerError {
		h.logger.Error("Request failed", "code", code, "err", err)
	}
	h.writeJSON(w, code, map[string]string{"error": err.Error()})
}
