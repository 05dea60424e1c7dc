package components

import (
	"fmt"
	"time"

	"github.com/theirongolddev/eatwatch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the bottom bar reports about the loaded log.
type StatusInfo struct {
	Path      string
	LoadedAt  time.Time
	Reloading bool
	Watching  bool
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [r]eload  [?]help  [q]uit"
	if info.Watching {
		left += "  ◉ watching"
	}

	right := ""
	switch {
	case info.Reloading:
		right = "reloading… "
	case !info.LoadedAt.IsZero():
		right = fmt.Sprintf("%s · loaded %s ago ", info.Path, FormatAge(time.Since(info.LoadedAt)))
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Drop the path before anything else.
		if !info.Reloading && !info.LoadedAt.IsZero() {
			right = fmt.Sprintf("loaded %s ago ", FormatAge(time.Since(info.LoadedAt)))
		}
		padding = max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}

// FormatAge renders a duration compactly: "12s", "4m", "2h 5m", "3d 1h".
func FormatAge(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h >= 24 {
		return fmt.Sprintf("%dd %dh", h/24, h%24)
	}
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
