// Package visualize draws daylight and tide charts as echarts pages.
package visualize

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/spencer-p/tidedash/pkg/series"
)

// DaylightChart plots hours of daylight across the June-shifted year, with a
// vertical line at each solstice and each equinox that was found.
func DaylightChart(s *series.SolarSeries, title string) *charts.Line {
	days := make([]string, len(s.JuneShiftedDays))
	hours := make([]opts.LineData, len(s.JuneShiftedDays))
	for i, d := range s.JuneShiftedDays {
		days[i] = d.Date.Format("Jan 2")
		if math.IsNaN(d.DaylightHr) || math.IsInf(d.DaylightHr, 0) {
			// echarts leaves a gap for "-".
			hours[i] = opts.LineData{Value: "-"}
			continue
		}
		hours[i] = opts.LineData{Value: math.Round(d.DaylightHr*100) / 100}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%.2f, %.2f", s.Lat, s.Lng),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "hours",
			Min:  0,
			Max:  24,
		}),
	)

	line.SetXAxis(days).AddSeries("Daylight", hours,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithMarkLineNameXAxisItemOpts(markLines(s)...),
	)
	return line
}

// RenderDaylight writes a standalone HTML page with the daylight chart of s.
func RenderDaylight(w io.Writer, s *series.SolarSeries) error {
	title := fmt.Sprintf("Daylight %d", s.Year)
	if err := DaylightChart(s, title).Render(w); err != nil {
		return fmt.Errorf("failed to render daylight chart: %w", err)
	}
	return nil
}

func markLines(s *series.SolarSeries) []opts.MarkLineNameXAxisItem {
	items := []opts.MarkLineNameXAxisItem{
		{Name: "Summer solstice", XAxis: int(s.Indices.Summer)},
		{Name: "Winter solstice", XAxis: int(s.Indices.Winter)},
	}
	if s.AutumnFound {
		items = append(items, opts.MarkLineNameXAxisItem{Name: "Autumn equinox", XAxis: int(math.Round(s.Indices.Autumn))})
	}
	if s.SpringFound {
		items = append(items, opts.MarkLineNameXAxisItem{Name: "Spring equinox", XAxis: int(math.Round(s.Indices.Spring))})
	}
	return items
}
