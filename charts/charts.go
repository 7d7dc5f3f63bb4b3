// Package charts renders PNG charts of a user's applications.
package charts

import (
	"io"
	"sort"
	"time"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/jobs"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when there is nothing to plot
var ErrNoData = errors.Wrapf(errors.ErrNotFound, "no chart data")

const ContentType = "image/png"

var (
	barColor  = drawing.ColorFromHex("2563EB")
	lineColor = drawing.ColorFromHex("059669")
)

// StatusChart draws a bar chart of the number of jobs in each status.
func StatusChart(w io.Writer, list []*jobs.Job) error {
	counts := map[jobs.Status]int{}
	for _, j := range list {
		if j.Status != "" {
			counts[j.Status]++
		}
	}
	if len(counts) == 0 {
		return ErrNoData
	}

	bars := make([]chart.Value, 0, len(counts))
	maxCount := 0
	for _, st := range statusOrder(counts) {
		n := counts[st]
		if n > maxCount {
			maxCount = n
		}
		bars = append(bars, chart.Value{
			Label: string(st),
			Value: float64(n),
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		})
	}

	graph := chart.BarChart{
		Title:      "Job Status Overview",
		Width:      600,
		Height:     400,
		BarWidth:   60,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		YAxis: chart.YAxis{
			Name:           "Number of Applications",
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(maxCount + 1)},
			ValueFormatter: chart.IntValueFormatter,
		},
		Bars: bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrapf(err, "render status chart")
	}
	return nil
}

// TimeChart draws a line chart of applications per applied date.
func TimeChart(w io.Writer, list []*jobs.Job) error {
	perDay := map[time.Time]int{}
	for _, j := range list {
		if !j.AppliedDate.IsZero() {
			perDay[j.AppliedDate.Time]++
		}
	}
	if len(perDay) == 0 {
		return ErrNoData
	}

	days := make([]time.Time, 0, len(perDay))
	for d := range perDay {
		days = append(days, d)
	}
	sort.Slice(days, func(a, b int) bool { return days[a].Before(days[b]) })

	values := make([]float64, len(days))
	maxCount := 0
	for i, d := range days {
		values[i] = float64(perDay[d])
		if perDay[d] > maxCount {
			maxCount = perDay[d]
		}
	}

	// pad the x range so a single day still has a non-zero width
	first := days[0].Add(-12 * time.Hour)
	last := days[len(days)-1].Add(12 * time.Hour)

	graph := chart.Chart{
		Title:      "Applications Over Time",
		Width:      700,
		Height:     400,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
			Range:          &chart.ContinuousRange{Min: chart.TimeToFloat64(first), Max: chart.TimeToFloat64(last)},
		},
		YAxis: chart.YAxis{
			Name:           "Applications",
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(maxCount + 1)},
			ValueFormatter: chart.IntValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				XValues: days,
				YValues: values,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					DotColor:    lineColor,
					DotWidth:    4,
				},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrapf(err, "render time chart")
	}
	return nil
}

// statusOrder lists known statuses first, then any others alphabetically.
func statusOrder(counts map[jobs.Status]int) []jobs.Status {
	order := make([]jobs.Status, 0, len(counts))
	known := map[jobs.Status]bool{}
	for _, st := range jobs.Statuses {
		known[st] = true
		if counts[st] > 0 {
			order = append(order, st)
		}
	}
	extra := make([]jobs.Status, 0)
	for st := range counts {
		if !known[st] {
			extra = append(extra, st)
		}
	}
	sort.Slice(extra, func(a, b int) bool { return extra[a] < extra[b] })
	return append(order, extra...)
}
