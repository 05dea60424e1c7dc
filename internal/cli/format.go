// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/theirongolddev/eatwatch/internal/model"
)

// ProgressPlaceholder is shown instead of the progress sentence when no
// measurements have been logged.
const ProgressPlaceholder = "- days down, - days to go (0%)"

// FormatProgress renders "N days down, M days to go (P%)".
// A nil p yields ProgressPlaceholder.
func FormatProgress(p *model.ProgressStats) string {
	if p == nil {
		return ProgressPlaceholder
	}
	return fmt.Sprintf("%s down, %s to go (%d%%)",
		FormatDays(p.DaysElapsed),
		FormatDays(p.DaysRemaining),
		p.PercentComplete,
	)
}

// FormatDays renders a day count with the right plural: "1 day", "3 days".
func FormatDays(n int) string {
	if n == 1 || n == -1 {
		return strconv.Itoa(n) + " day"
	}
	return strconv.Itoa(n) + " days"
}

// FormatWeight formats a weight with one decimal place.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', 1, 64)
}

// FormatDelta formats a signed weight change, e.g. "+0.4", "-1.2".
// Values that round to zero are shown as "±0.0".
func FormatDelta(d float64) string {
	if math.Abs(d) < 0.05 {
		return "±0.0"
	}
	if d > 0 {
		return "+" + FormatWeight(d)
	}
	return FormatWeight(d)
}

// FormatDate formats a calendar date as YYYY-MM-DD.
func FormatDate(d model.Date) string {
	return d.String()
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
