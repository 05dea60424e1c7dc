package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/eatwatch/internal/model"
	"github.com/theirongolddev/eatwatch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// SeriesRole identifies what a plotted series represents.
type SeriesRole int

const (
	RoleGoal SeriesRole = iota
	RoleMeasured
	RoleSmoothed
)

func (r SeriesRole) String() string {
	switch r {
	case RoleGoal:
		return "goal"
	case RoleMeasured:
		return "measured"
	case RoleSmoothed:
		return "trend"
	default:
		return "unknown"
	}
}

// SeriesStyle is how a role is drawn.
type SeriesStyle struct {
	Color   lipgloss.Color
	Glyph   rune
	Line    bool // connect consecutive points
	Markers bool // draw each point
}

// StyleFor returns the drawing style for a role under the active theme.
func StyleFor(role SeriesRole) SeriesStyle {
	t := theme.Active
	switch role {
	case RoleGoal:
		return SeriesStyle{Color: t.Goal, Glyph: '·', Line: true}
	case RoleMeasured:
		return SeriesStyle{Color: t.Measured, Glyph: '○', Markers: true}
	default:
		return SeriesStyle{Color: t.Smoothed, Glyph: '●', Line: true}
	}
}

// ChartData holds the series and y range for TrendChart.
type ChartData struct {
	Goal     model.WeightLog
	Measured model.WeightLog
	Smoothed model.WeightLog
	AxisMin  int
	AxisMax  int
}

const (
	minChartW = 20
	minChartH = 5
)

// TrendChart draws the goal line, raw measurements and smoothed trend on a
// character grid. The x position of a point is proportional to its date.
// Above the minimum size the output is exactly height lines.
func TrendChart(data ChartData, width, height int) string {
	t := theme.Active
	if width < minChartW || height < minChartH {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("(too small)")
	}

	yLabelW := max(len(fmt.Sprint(data.AxisMin)), len(fmt.Sprint(data.AxisMax))) + 1
	plotW := width - yLabelW - 1
	plotH := height - 2 // x axis + date labels

	from, to, ok := dateRange(data)
	if !ok {
		return padLines(lipgloss.NewStyle().Foreground(t.TextDim).Render("no data"), height)
	}

	g := newGrid(plotW, plotH, from, to, float64(data.AxisMin), float64(data.AxisMax))
	// Draw order decides overlap: markers end up on top.
	g.plot(data.Goal, RoleGoal)
	g.plot(data.Smoothed, RoleSmoothed)
	g.plot(data.Measured, RoleMeasured)

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	labels := make(map[int]string)
	for _, row := range []int{0, plotH / 2, plotH - 1} {
		labels[row] = fmt.Sprintf("%.0f", g.valueAt(row))
	}

	var b strings.Builder
	for row := plotH - 1; row >= 0; row-- {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, labels[row])))
		b.WriteString(axisStyle.Render("│"))
		b.WriteString(g.renderRow(row))
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW)))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", plotW)))
	b.WriteString("\n")

	left := from.String()
	right := to.String()
	gap := plotW - len(left) - len(right)
	dates := left
	if gap >= 1 {
		dates += strings.Repeat(" ", gap) + right
	}
	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW+1) + dates))

	return b.String()
}

// ChartLegend renders a one-line key for the three series.
func ChartLegend() string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)

	var parts []string
	for _, role := range []SeriesRole{RoleMeasured, RoleSmoothed, RoleGoal} {
		st := StyleFor(role)
		glyph := lipgloss.NewStyle().Foreground(st.Color).Render(string(st.Glyph))
		parts = append(parts, glyph+" "+label.Render(role.String()))
	}
	return strings.Join(parts, "   ")
}

func dateRange(data ChartData) (from, to model.Date, ok bool) {
	for _, series := range []model.WeightLog{data.Goal, data.Measured, data.Smoothed} {
		for _, s := range series {
			if !ok {
				from, to, ok = s.Date, s.Date, true
				continue
			}
			if s.Date.Before(from) {
				from = s.Date
			}
			if s.Date.After(to) {
				to = s.Date
			}
		}
	}
	return from, to, ok
}

type cell struct {
	role SeriesRole
	set  bool
}

type grid struct {
	w, h   int
	from   model.Date
	span   float64 // days
	lo, hi float64
	cells  [][]cell // [row][col], row 0 at the bottom
}

func newGrid(w, h int, from, to model.Date, lo, hi float64) *grid {
	span := float64(from.DaysUntil(to))
	if span <= 0 {
		span = 1
	}
	if hi <= lo {
		hi = lo + 1
	}
	cells := make([][]cell, h)
	for i := range cells {
		cells[i] = make([]cell, w)
	}
	return &grid{w: w, h: h, from: from, span: span, lo: lo, hi: hi, cells: cells}
}

func (g *grid) col(d model.Date) int {
	x := float64(g.from.DaysUntil(d)) / g.span * float64(g.w-1)
	return clampInt(int(math.Round(x)), 0, g.w-1)
}

func (g *grid) row(w float64) int {
	y := (w - g.lo) / (g.hi - g.lo) * float64(g.h-1)
	return clampInt(int(math.Round(y)), 0, g.h-1)
}

func (g *grid) valueAt(row int) float64 {
	if g.h <= 1 {
		return g.lo
	}
	return g.lo + float64(row)/float64(g.h-1)*(g.hi-g.lo)
}

func (g *grid) set(row, col int, role SeriesRole) {
	g.cells[row][col] = cell{role: role, set: true}
}

func (g *grid) plot(series model.WeightLog, role SeriesRole) {
	st := StyleFor(role)
	if len(series) == 0 {
		return
	}
	if st.Markers || len(series) == 1 {
		for _, s := range series {
			g.set(g.row(s.Weight), g.col(s.Date), role)
		}
	}
	if !st.Line {
		return
	}
	for i := 1; i < len(series); i++ {
		g.segment(series[i-1], series[i], role)
	}
}

// segment draws a line between two samples, filling vertical gaps so steep
// segments stay connected.
func (g *grid) segment(a, b model.DatedSample, role SeriesRole) {
	c0, c1 := g.col(a.Date), g.col(b.Date)
	r0, r1 := g.row(a.Weight), g.row(b.Weight)
	if c0 > c1 {
		c0, c1 = c1, c0
		r0, r1 = r1, r0
	}

	prev := r0
	for c := c0; c <= c1; c++ {
		r := r0
		if c1 != c0 {
			r = int(math.Round(float64(r0) + float64(r1-r0)*float64(c-c0)/float64(c1-c0)))
		}
		lo, hi := min(prev, r), max(prev, r)
		if c == c0 {
			lo, hi = r, r
		}
		for y := lo; y <= hi; y++ {
			g.set(y, c, role)
		}
		prev = r
	}
	if c0 == c1 {
		for y := min(r0, r1); y <= max(r0, r1); y++ {
			g.set(y, c0, role)
		}
	}
}

func (g *grid) renderRow(row int) string {
	var b strings.Builder
	var run strings.Builder
	var runRole SeriesRole
	runSet := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runSet {
			b.WriteString(lipgloss.NewStyle().Foreground(StyleFor(runRole).Color).Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}

	for _, c := range g.cells[row] {
		if c.set != runSet || (c.set && c.role != runRole) {
			flush()
			runSet, runRole = c.set, c.role
		}
		if c.set {
			run.WriteRune(StyleFor(c.role).Glyph)
		} else {
			run.WriteByte(' ')
		}
	}
	flush()
	return b.String()
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func padLines(s string, h int) string {
	n := strings.Count(s, "\n") + 1
	if n >= h {
		return s
	}
	return s + strings.Repeat("\n", h-n)
}
