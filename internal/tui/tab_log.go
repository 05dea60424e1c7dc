package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/eatwatch/internal/cli"
	"github.com/theirongolddev/eatwatch/internal/tui/components"
	"github.com/theirongolddev/eatwatch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderLogTab lists entries newest first with their smoothed value.
func (a App) renderLogTab(cw, h int) string {
	t := theme.Active
	snap := a.snap

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	upStyle := lipgloss.NewStyle().Foreground(t.Warn)
	downStyle := lipgloss.NewStyle().Foreground(t.Good)

	title := fmt.Sprintf("Log · %d entries · window %d", len(snap.Log), snap.Window)

	if snap.Empty() {
		body := mutedStyle.Render("No measurements yet. Add lines like ") +
			rowStyle.Render(logLineExample) +
			mutedStyle.Render(" below the goal line.")
		return components.ContentCard(title, body, cw)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-11s %-3s %8s %8s %8s", "Date", "Day", "Weight", "Trend", "Diff")))
	b.WriteString("\n")

	visible := max(h-5, 3) // card border (2) + title + header + hint
	n := len(snap.Log)
	start := min(a.logScroll, a.maxLogScroll())
	end := min(start+visible, n)

	for i := start; i < end; i++ {
		idx := n - 1 - i
		s := snap.Log[idx]
		tr := snap.Smoothed[idx]
		diff := s.Weight - tr.Weight

		line := rowStyle.Render(fmt.Sprintf("%-11s %-3s %8s %8s ",
			cli.FormatDate(s.Date), cli.FormatDayOfWeek(int(s.Date.Time().Weekday())),
			cli.FormatWeight(s.Weight), cli.FormatWeight(tr.Weight)))
		diffStr := fmt.Sprintf("%8s", cli.FormatDelta(diff))
		switch {
		case diff >= 0.05:
			line += upStyle.Render(diffStr)
		case diff <= -0.05:
			line += downStyle.Render(diffStr)
		default:
			line += mutedStyle.Render(diffStr)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d-%d of %d · j/k to scroll", start+1, end, n)))

	return components.ContentCard(title, b.String(), cw)
}

const logLineExample = "2021-01-01 80.5"

func (a App) maxLogScroll() int {
	if a.snap == nil {
		return 0
	}
	return max(len(a.snap.Log)-1, 0)
}
