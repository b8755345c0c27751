package visualize

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/spencer-p/tidedash/pkg/noaa"
	"github.com/spencer-p/tidedash/pkg/noaa/splines"
	"github.com/spencer-p/tidedash/pkg/solar"
)

// TideStep is the spacing of the tide curve samples.
const TideStep = 30 * time.Minute

// TideChart plots the tide curve through preds with a vertical line at each
// sun event that falls inside it.
func TideChart(preds noaa.Predictions, sun solar.SunEvents, title string) *charts.Line {
	points := splines.CurvesBetween(preds).Sample(TideStep)
	labels := make([]string, len(points))
	heights := make([]opts.LineData, len(points))
	for i, p := range points {
		labels[i] = p.Time.Format("Jan 2 15:04")
		heights[i] = opts.LineData{Value: math.Round(p.Height*100) / 100}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1200px",
			Height:    "300px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ft"}),
	)
	line.SetXAxis(labels).AddSeries("Tide", heights,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithMarkLineNameXAxisItemOpts(sunLines(points, sun)...),
	)
	return line
}

// RenderTides writes a standalone HTML page with the tide chart.
func RenderTides(w io.Writer, preds noaa.Predictions, sun solar.SunEvents, title string) error {
	if len(preds) < 2 {
		return fmt.Errorf("need at least two predictions to draw tides, got %d", len(preds))
	}
	if err := TideChart(preds, sun, title).Render(w); err != nil {
		return fmt.Errorf("failed to render tide chart: %w", err)
	}
	return nil
}

// sunLines places each sun event on the nearest sample.
func sunLines(points []splines.Point, sun solar.SunEvents) []opts.MarkLineNameXAxisItem {
	if len(points) == 0 {
		return nil
	}
	start, end := points[0].Time, points[len(points)-1].Time
	var items []opts.MarkLineNameXAxisItem
	for _, e := range sun {
		if e.Time.Before(start) || e.Time.After(end) {
			continue
		}
		i := int(math.Round(float64(e.Time.Sub(start)) / float64(TideStep)))
		items = append(items, opts.MarkLineNameXAxisItem{Name: e.Event.String(), XAxis: i})
	}
	return items
}
