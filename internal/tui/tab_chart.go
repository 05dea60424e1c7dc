package tui

import (
	"math"
	"strings"

	"github.com/theirongolddev/eatwatch/internal/cli"
	"github.com/theirongolddev/eatwatch/internal/tui/components"
	"github.com/theirongolddev/eatwatch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	metricRowH     = 5 // border + label + value + delta
	progressRowH   = 5 // border + title + sentence + bar
	chartCardExtra = 4 // border + title + legend
	minChartRows   = 8
)

func (a App) renderChartTab(cw, h int) string {
	snap := a.snap
	var b strings.Builder

	b.WriteString(components.MetricCardRow(a.metricCards(), cw))
	b.WriteString("\n")

	chartH := max(h-metricRowH-progressRowH-chartCardExtra, minChartRows)
	innerW := components.CardInnerWidth(cw)
	chart := components.TrendChart(components.ChartData{
		Goal:     snap.GoalSeries(),
		Measured: snap.Log,
		Smoothed: snap.Smoothed,
		AxisMin:  snap.AxisMin,
		AxisMax:  snap.AxisMax,
	}, innerW, chartH)
	b.WriteString(components.ContentCard("Weight", chart+"\n"+components.ChartLegend(), cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Progress", a.progressBody(innerW), cw))

	return b.String()
}

func (a App) progressBody(w int) string {
	t := theme.Active
	snap := a.snap
	text := lipgloss.NewStyle().Foreground(t.TextPrimary).Render(snap.ProgressText())

	if snap.Progress == nil {
		return text + "\n" + components.EmptyProgressBar(w)
	}
	return text + "\n" + components.GoalProgressBar(snap.Progress.PercentComplete, w)
}

// metricCards summarizes the latest raw value, the trend, the goal and the
// distance left.
func (a App) metricCards() []components.Metric {
	snap := a.snap
	dash := "-"

	latest := components.Metric{Label: "Latest", Value: dash}
	if s, ok := snap.Latest(); ok {
		latest.Value = cli.FormatWeight(s.Weight)
		latest.Delta = cli.FormatDate(s.Date)
	}

	trendCard := components.Metric{Label: "Trend", Value: dash}
	if s, ok := snap.Trend(); ok {
		trendCard.Value = cli.FormatWeight(s.Weight)
	}
	if change, ok := snap.Change(); ok {
		trendCard.Delta = cli.FormatDelta(change) + " since start"
		trendCard.Tone = a.towardGoal(change)
	}

	goal := components.Metric{
		Label: "Goal",
		Value: cli.FormatWeight(snap.Goal.Weight),
		Delta: "by " + cli.FormatDate(snap.Goal.Date),
	}

	toGo := components.Metric{Label: "To go", Value: dash}
	if d, ok := snap.ToGo(); ok {
		toGo.Value = cli.FormatWeight(math.Abs(d))
		switch {
		case math.Abs(d) < 0.05:
			toGo.Delta = "at goal"
			toGo.Tone = 1
		case d > 0:
			toGo.Delta = "above goal"
		default:
			toGo.Delta = "below goal"
		}
	}

	return []components.Metric{latest, trendCard, goal, toGo}
}

// towardGoal reports whether a change moves toward the goal weight (1),
// away from it (-1), or neither (0).
func (a App) towardGoal(change float64) int {
	first, ok := a.snap.Log.First()
	if !ok || math.Abs(change) < 0.05 {
		return 0
	}
	wantDown := a.snap.Goal.Weight < first.Weight
	if (change < 0) == wantDown {
		return 1
	}
	return -1
}
