// Package render draws dashboard charts as PNG images.
package render

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vmunix/catalogdash/internal/dashboard"
)

// ErrEmptyChart is returned for a chart with no bars.
var ErrEmptyChart = errors.New("chart has no data")

const (
	defaultWidth   = 1024
	defaultHeight  = 512
	defaultMaxBars = 30
	barSpacing     = 8

	// otherLabel collects the bars beyond MaxBars.
	otherLabel = "Other"
)

// Options controls the image size and density.
type Options struct {
	Width   int
	Height  int
	MaxBars int // bars beyond this are summed into a single "Other" bar
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.MaxBars <= 0 {
		o.MaxBars = defaultMaxBars
	}
	return o
}

// PNG writes c to w as a PNG image.
func PNG(w io.Writer, c dashboard.Chart, opts Options) error {
	if c.Empty() {
		return ErrEmptyChart
	}
	opts = opts.withDefaults()

	var err error
	switch c.Kind {
	case dashboard.KindStackedBar:
		err = stackedChart(c, opts).Render(chart.PNG, w)
	default:
		err = barChart(c, opts).Render(chart.PNG, w)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", c.ID, err)
	}
	return nil
}

func barChart(c dashboard.Chart, opts Options) chart.BarChart {
	points := truncate(c.Series[0].Points, opts.MaxBars)
	fill := fillColor(c.Series[0].Color)

	maxValue := 1
	bars := make([]chart.Value, len(points))
	for i, p := range points {
		maxValue = max(maxValue, p.Value)
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%s (%d)", dashboard.DisplayLabel(p.Label), p.Value),
			Value: float64(p.Value),
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	return chart.BarChart{
		Title:      c.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 64}},
		BarSpacing: barSpacing,
		BarWidth:   barWidth(opts.Width, len(bars)),
		XAxis:      chart.Style{FontSize: 8},
		YAxis: chart.YAxis{
			Name:  c.ValueAxis,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxValue)},
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}
}

// stackedChart draws one bar per point label with a segment per series.
// go-chart normalizes stacked bars, so each bar shows shares and the
// label carries the absolute total.
func stackedChart(c dashboard.Chart, opts Options) chart.StackedBarChart {
	var (
		order  []string
		totals = make(map[string]int)
		values = make(map[string][]chart.Value)
	)
	for _, s := range c.Series {
		fill := fillColor(s.Color)
		for _, p := range s.Points {
			if _, ok := totals[p.Label]; !ok {
				order = append(order, p.Label)
			}
			totals[p.Label] += p.Value
			values[p.Label] = append(values[p.Label], chart.Value{
				Label: dashboard.DisplayLabel(s.Name),
				Value: float64(p.Value),
				Style: chart.Style{FillColor: fill, StrokeColor: drawing.ColorWhite, FontSize: 7},
			})
		}
	}

	bars := make([]chart.StackedBar, len(order))
	width := barWidth(opts.Width, len(order))
	for i, label := range order {
		bars[i] = chart.StackedBar{
			Name:   fmt.Sprintf("%s (%d)", dashboard.DisplayLabel(label), totals[label]),
			Width:  width,
			Values: values[label],
		}
	}

	return chart.StackedBarChart{
		Title:      c.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		BarSpacing: barSpacing,
		XAxis:      chart.Style{FontSize: 8},
		Bars:       bars,
	}
}

// truncate keeps the first n points and sums the rest into one bar.
func truncate(points []dashboard.Point, n int) []dashboard.Point {
	if len(points) <= n {
		return points
	}
	out := make([]dashboard.Point, n, n+1)
	copy(out, points[:n])

	rest := dashboard.Point{Label: otherLabel}
	for _, p := range points[n:] {
		rest.Value += p.Value
	}
	return append(out, rest)
}

func barWidth(chartWidth, bars int) int {
	if bars == 0 {
		return 0
	}
	w := (chartWidth-120)/bars - barSpacing
	return min(max(w, 4), 80)
}

func fillColor(hex string) drawing.Color {
	if hex == "" {
		return chart.ColorBlue
	}
	return drawing.ColorFromHex(hex)
}
