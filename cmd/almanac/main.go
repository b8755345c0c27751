// Command almanac prints the sun, the moon and the year's solar indices for a
// place. Given a NOAA station it also prints the coming tides and the low
// tides that fall in daylight.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spencer-p/tidedash/pkg/lowtide"
	"github.com/spencer-p/tidedash/pkg/lunar"
	"github.com/spencer-p/tidedash/pkg/noaa"
	"github.com/spencer-p/tidedash/pkg/noaa/splines"
	"github.com/spencer-p/tidedash/pkg/series"
	"github.com/spencer-p/tidedash/pkg/solar"
	"github.com/spencer-p/tidedash/pkg/timetricks"
)

type options struct {
	lat, lng float64
	date     time.Time
	loc      *time.Location
	station  noaa.Station
	tideDays int
	step     time.Duration
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		lat      = flag.Float64("lat", 41.4353, "latitude in degrees, north positive")
		lng      = flag.Float64("lng", -71.4616, "longitude in degrees, east positive")
		date     = flag.String("date", "", "day as YYYY-MM-DD or RFC3339, default today")
		tz       = flag.String("tz", "Local", "IANA time zone the date and times are in")
		station  = flag.String("station", "", "NOAA station id to print tides for")
		tideDays = flag.Int("days", 7, "days of tides to print")
		step     = flag.Duration("step", 0, "also print the tide curve sampled at this step, e.g. 2h")
	)
	flag.Parse()

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		logger.Error("Bad time zone", "tz", *tz, "err", err)
		os.Exit(2)
	}
	o := options{lat: *lat, lng: *lng, loc: loc, tideDays: *tideDays, step: *step, date: time.Now().In(loc)}
	if *date != "" {
		if o.date, err = timetricks.ParseDay(*date, loc); err != nil {
			logger.Error("Bad date", "err", err)
			os.Exit(2)
		}
	}
	if *station != "" {
		if o.station, err = noaa.ParseStation(*station); err != nil {
			logger.Error("Bad station", "err", err)
			os.Exit(2)
		}
	}

	b := series.NewBuilder(series.WithLocation(loc), series.WithLogger(logger))
	printAlmanac(os.Stdout, o, b)

	if o.station != 0 {
		if err := printTides(context.Background(), os.Stdout, o, &noaa.Client{}); err != nil {
			logger.Error("Failed to fetch from NOAA", "err", err)
			os.Exit(1)
		}
	}
}

func printAlmanac(w io.Writer, o options, b *series.Builder) {
	times := solar.CalculateSolarTimes(o.date, o.lat, o.lng)
	fmt.Fprintf(w, "%s at %.4f, %.4f\n", times.Date.Format("Mon Jan 2 2006"), o.lat, o.lng)
	fmt.Fprintf(w, "  sunrise %s, sunset %s\n", times.SunriseText(), times.SunsetText())
	fmt.Fprintf(w, "  daylight %s, darkness %s\n", times.Daylight(), times.Darkness())
	fmt.Fprintf(w, "  %s, %s since %s\n",
		times.ChangeFromPrevious(),
		times.ChangeSinceSolstice(),
		times.SolsticeReference.Format("Jan 2 2006"))

	moon := lunar.CalculateMoonPhase(o.date)
	fmt.Fprintf(w, "  moon %s, %d%% lit, %.1f days old\n", moon.Phase, moon.Illumination, moon.Age)
	noon := timetricks.Noon(o.date)
	if full, ok := lunar.NextFullMoon(noon); ok {
		fmt.Fprintf(w, "  next full moon %s\n", full.Format("Jan 2 2006"))
	}
	if newMoon, ok := lunar.NextNewMoon(noon); ok {
		fmt.Fprintf(w, "  next new moon %s\n", newMoon.Format("Jan 2 2006"))
	}

	s := b.GetSolarSeries(o.lat, o.lng, o.date.Year())
	fmt.Fprintf(w, "%d from the summer solstice (%s)\n", s.Year, s.Day(s.Indices.Summer).Date.Format("Jan 2"))
	fmt.Fprintf(w, "  winter solstice day %.0f (%s)\n", s.Indices.Winter, s.Day(s.Indices.Winter).Date.Format("Jan 2"))
	printEquinox(w, "autumn", s.AutumnFound, s.Indices.Autumn, s)
	printEquinox(w, "spring", s.SpringFound, s.Indices.Spring, s)
}

func printEquinox(w io.Writer, season string, found bool, index float64, s *series.SolarSeries) {
	if !found {
		fmt.Fprintf(w, "  %s equinox not found\n", season)
		return
	}
	fmt.Fprintf(w, "  %s equinox day %.2f (%s)\n", season, index, s.Day(index).Date.Format("Jan 2"))
}

func printTides(ctx context.Context, w io.Writer, o options, c *noaa.Client) error {
	start := timetricks.TrimClock(o.date)
	preds, err := c.GetPredictions(ctx, &noaa.PredictionQuery{
		Start:    start,
		Duration: timetricks.AddDays(start, o.tideDays-1).Sub(start),
		Station:  o.station,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "tides at station %s\n", o.station)
	for _, p := range preds {
		fmt.Fprintf(w, "  %s %s %.2f ft\n", p.T().Format("Mon Jan 2 3:04 PM"), p.Type, p.Height)
	}

	sun := solar.GetSunEvents(start, time.Duration(o.tideDays)*24*time.Hour, solar.Place{
		Lat:      o.lat,
		Long:     o.lng,
		Location: start.Location(),
	})
	windows := lowtide.Find(lowtide.Conditions{Tides: preds, SunEvents: sun}, lowtide.Options{})
	if len(windows) > 0 {
		fmt.Fprintln(w, "reachable low tides")
		for _, lt := range windows {
			fmt.Fprintf(w, "  %s\n", lt)
		}
	}

	if o.step > 0 {
		for _, p := range splines.CurvesBetween(preds).Sample(o.step) {
			fmt.Fprintf(w, "%f ", p.Height)
		}
		fmt.Fprintln(w)
	}
	return nil
}
