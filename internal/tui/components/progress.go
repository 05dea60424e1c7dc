package components

import (
	"fmt"

	"github.com/theirongolddev/eatwatch/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns the bar color for a share of the goal period that has
// passed: accent while on schedule, the warning color once the goal date has gone by.
func ColorForPct(pct int) string {
	t := theme.Active
	switch {
	case pct > 100:
		return string(t.Warn)
	case pct >= 80:
		return string(t.AccentBright)
	default:
		return string(t.Accent)
	}
}

// GoalProgressBar renders the time-to-goal bar followed by its percentage.
// The bar is clamped to full; the label shows the real value.
func GoalProgressBar(pct int, width int) string {
	t := theme.Active

	barW := width - 6
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	frac := float64(pct) / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Bold(true)

	return bar.ViewAs(frac) + " " + pctStyle.Render(fmt.Sprintf("%3d%%", pct))
}

// EmptyProgressBar renders the bar for a log with no measurements yet.
func EmptyProgressBar(width int) string {
	t := theme.Active

	barW := width - 6
	if barW < 4 {
		barW = 4
	}
	bar := progress.New(
		progress.WithSolidFill(string(t.TextDim)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	return bar.ViewAs(0) + " " + lipgloss.NewStyle().Foreground(t.TextDim).Render("  -%")
}
