package series

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/spencer-p/tidedash/pkg/cache"
	"github.com/spencer-p/tidedash/pkg/metrics"
)

// Builder builds and memoizes solar series. Coordinates are rounded to two
// decimals for the cache key, so nearby points share one series. It is safe
// for concurrent use, and concurrent requests for one key build it once.
type Builder struct {
	loc    *time.Location
	ttl    time.Duration
	logger *slog.Logger

	cache  *cache.Timed[*SolarSeries]
	flight singleflight.Group
}

// Option configures a Builder.
type Option func(*Builder)

// WithLocation sets the time zone whose local noon each day is sampled at.
// The default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(b *Builder) {
		b.loc = loc
	}
}

// WithTTL expires cached series after ttl. Zero, the default, keeps them until
// ClearCache.
func WithTTL(ttl time.Duration) Option {
	return func(b *Builder) {
		b.ttl = ttl
	}
}

// WithLogger sets the logger used to report equinox misses.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		loc:    time.UTC,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(b)
	}
	b.cache = cache.NewTimed[*SolarSeries](b.ttl)
	return b
}

// Key is the cache key for a series.
func Key(lat, lng float64, year int) string {
	return fmt.Sprintf("%d:%.2f:%.2f", year, lat, lng)
}

// GetSolarSeries returns the series for year at lat, lng, building it on the
// first request for its key.
func (b *Builder) GetSolarSeries(lat, lng float64, year int) *SolarSeries {
	key := Key(lat, lng, year)
	if s, ok := b.cache.Get(key); ok {
		metrics.ObserveSeriesCache(true)
		return s
	}
	metrics.ObserveSeriesCache(false)

	v, _, _ := b.flight.Do(key, func() (any, error) {
		// Another caller may have finished between our miss and Do.
		if s, ok := b.cache.Get(key); ok {
			return s, nil
		}
		start := time.Now()
		s := Build(lat, lng, year, b.loc)
		metrics.ObserveSeriesBuild(time.Since(start))
		b.reportMisses(s)
		b.cache.Set(key, s)
		return s, nil
	})
	return v.(*SolarSeries)
}

// ClearCache forgets every series built so far.
func (b *Builder) ClearCache() {
	b.cache.Clear()
}

// Cached counts the series held in the cache.
func (b *Builder) Cached() int {
	return b.cache.Len()
}

func (b *Builder) reportMisses(s *SolarSeries) {
	for season, found := range map[string]bool{"spring": s.SpringFound, "autumn": s.AutumnFound} {
		if found {
			continue
		}
		metrics.ObserveEquinoxMiss(season)
		b.logger.Warn("no equinox crossing found, index left at 0",
			"season", season,
			"year", s.Year,
			"lat", s.Lat,
			"lng", s.Lng)
	}
}
