package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const subsystem = "tidedash"

var (
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "request_latency",
			Subsystem: subsystem,
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0, 8.0, 16.0, 32.0},
		},
		[]string{"verb", "path", "code"},
	)

	seriesCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "series_cache_lookups_total",
			Subsystem: subsystem,
			Help:      "Solar series cache lookups by result (hit or miss).",
		},
		[]string{"result"},
	)

	seriesBuilds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:      "series_build_seconds",
			Subsystem: subsystem,
			Help:      "Time spent building a year of daylight.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	equinoxMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "series_equinox_misses_total",
			Subsystem: subsystem,
			Help:      "Series built without finding a 12 hour crossing, by season.",
		},
		[]string{"season"},
	)

	tideFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "tide_fetches_total",
			Subsystem: subsystem,
			Help:      "Tide prediction requests by source (cache, noaa or error).",
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(
		requestLatency,
		seriesCacheLookups,
		seriesBuilds,
		equinoxMisses,
		tideFetches,
	)
}

// Handler serves the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveRequestLatency(verb, path, code string, latency float64) {
	requestLatency.With(prometheus.Labels{
		"code": code,
		"verb": verb,
		"path": path,
	}).Observe(latency)
}

func ObserveSeriesCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	seriesCacheLookups.WithLabelValues(result).Inc()
}

func ObserveSeriesBuild(d time.Duration) {
	seriesBuilds.Observe(d.Seconds())
}

func ObserveEquinoxMiss(season string) {
	equinoxMisses.WithLabelValues(season).Inc()
}

func ObserveTideFetch(source string) {
	tideFetches.WithLabelValues(source).Inc()
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func LatencyHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()
		verb := r.Method
		path := ""
		if r.URL != nil {
			path = r.URL.Path
		}
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		// Defer metric observing. Any panics in next are reported as 500 errors
		// and then re-thrown.
		defer func() {
			if err := recover(); err != nil {
				ObserveRequestLatency(verb, path, "500", time.Since(t).Seconds())
				panic(err)
			}
			ObserveRequestLatency(verb, path, strconv.Itoa(rec.code), time.Since(t).Seconds())
		}()

		next.ServeHTTP(rec, r)
	})
}
