package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/eatwatch/internal/model"
	"github.com/theirongolddev/eatwatch/internal/tui/theme"
)

func daily(weights ...float64) model.WeightLog {
	start := model.NewDate(2021, 1, 1)
	out := model.WeightLog{}
	for i, w := range weights {
		out = append(out, model.DatedSample{Date: start.AddDays(i), Weight: w})
	}
	return out
}

func TestStyleFor(t *testing.T) {
	theme.SetActive("flexoki-dark")

	goal := StyleFor(RoleGoal)
	assert.True(t, goal.Line)
	assert.False(t, goal.Markers)
	assert.Equal(t, theme.Active.Goal, goal.Color)

	measured := StyleFor(RoleMeasured)
	assert.False(t, measured.Line)
	assert.True(t, measured.Markers)
	assert.Equal(t, theme.Active.Measured, measured.Color)

	smoothed := StyleFor(RoleSmoothed)
	assert.True(t, smoothed.Line)
	assert.False(t, smoothed.Markers)
	assert.Equal(t, theme.Active.Smoothed, smoothed.Color)
}

func TestTrendChart_Height(t *testing.T) {
	theme.SetActive("flexoki-dark")
	log := daily(80, 79.5, 80.2, 79.1, 78.8)
	goal := model.DatedSample{Date: model.NewDate(2021, 2, 10), Weight: 75}

	out := TrendChart(ChartData{
		Goal:     model.WeightLog{log[0], goal},
		Measured: log,
		Smoothed: log,
		AxisMin:  73,
		AxisMax:  82,
	}, 60, 14)

	assert.Len(t, strings.Split(out, "\n"), 14)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
	assert.Contains(t, out, string(StyleFor(RoleMeasured).Glyph))
	assert.Contains(t, out, string(StyleFor(RoleGoal).Glyph))
	assert.Contains(t, out, "2021-01-01")
	assert.Contains(t, out, "2021-02-10")
}

func TestTrendChart_EmptyLog(t *testing.T) {
	theme.SetActive("flexoki-dark")
	goal := model.DatedSample{Date: model.NewDate(2021, 6, 1), Weight: 75}

	var out string
	require.NotPanics(t, func() {
		out = TrendChart(ChartData{
			Goal:     model.WeightLog{goal},
			Measured: model.WeightLog{},
			Smoothed: model.WeightLog{},
			AxisMin:  73,
			AxisMax:  77,
		}, 40, 10)
	})

	assert.Len(t, strings.Split(out, "\n"), 10)
	assert.Contains(t, out, string(StyleFor(RoleGoal).Glyph))
	assert.NotContains(t, out, string(StyleFor(RoleMeasured).Glyph))
}

func TestTrendChart_MeasuredPointsAreNotJoined(t *testing.T) {
	theme.SetActive("flexoki-dark")
	log := daily(80, 70)

	out := TrendChart(ChartData{Measured: log, AxisMin: 68, AxisMax: 82}, 40, 12)

	glyph := string(StyleFor(RoleMeasured).Glyph)
	assert.Equal(t, 2, strings.Count(out, glyph))
}

func TestTrendChart_TooSmall(t *testing.T) {
	out := TrendChart(ChartData{Goal: daily(75)}, 5, 2)
	assert.Contains(t, out, "too small")
}

func TestChartLegend(t *testing.T) {
	out := ChartLegend()
	assert.Contains(t, out, "measured")
	assert.Contains(t, out, "trend")
	assert.Contains(t, out, "goal")
}
