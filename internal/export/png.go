// Package export renders a weight snapshot to an image file.
package export

import (
	"errors"
	"fmt"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/theirongolddev/eatwatch/internal/model"
	"github.com/theirongolddev/eatwatch/internal/pipeline"
)

// Title is the heading drawn above every exported chart.
const Title = "Eat Watch"

// Default image size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 640
)

var (
	goalColor     = drawing.ColorFromHex("C0C0C0")
	measuredColor = drawing.ColorRed
	smoothedColor = drawing.ColorBlue
)

// RenderPNG draws the goal line, the measurements and the smoothed trend
// as a PNG. Width or height <= 0 selects the defaults.
func RenderPNG(w io.Writer, snap *pipeline.Snapshot, width, height int) error {
	if snap == nil {
		return errors.New("export: nil snapshot")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	series := []chart.Series{
		timeSeries("Goal", snap.GoalSeries(), lineStyle(goalColor)),
	}
	if !snap.Empty() {
		series = append(series,
			timeSeries("Measured", snap.Log, pointStyle(measuredColor)),
			timeSeries("Smoothed", snap.Smoothed, lineStyle(smoothedColor)),
		)
	}

	ch := chart.Chart{
		Title:      Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:  "Weight",
			Range: &chart.ContinuousRange{Min: float64(snap.AxisMin), Max: float64(snap.AxisMax)},
		},
		Series: series,
	}
	// Every point on one date leaves no x range to scale against.
	if from, to := snap.DateSpan(); from.Equal(to) {
		ch.XAxis.Range = &chart.ContinuousRange{
			Min: chart.TimeToFloat64(from.Time()),
			Max: chart.TimeToFloat64(from.AddDays(1).Time()),
		}
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// timeSeries converts samples to a chart series. A single point is padded
// with a second one a day later so the x range is never zero.
func timeSeries(name string, samples model.WeightLog, style chart.Style) chart.TimeSeries {
	xs := make([]time.Time, 0, len(samples)+1)
	ys := make([]float64, 0, len(samples)+1)
	for _, s := range samples {
		xs = append(xs, s.Date.Time())
		ys = append(ys, s.Weight)
	}
	if len(xs) == 1 {
		xs = append(xs, samples[0].Date.AddDays(1).Time())
		ys = append(ys, ys[0])
	}
	return chart.TimeSeries{Name: name, XValues: xs, YValues: ys, Style: style}
}

// pointStyle draws markers only, with no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    3,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
	}
}
