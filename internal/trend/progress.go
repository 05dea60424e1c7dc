package trend

import (
	"math"

	"github.com/theirongolddev/eatwatch/internal/model"
)

// Progress computes day counts between the first logged date, today, and the goal date.
//
// DaysElapsed counts the first day as day 1. DaysRemaining excludes both today
// and the goal date. When the two sum to zero the percentage is reported as 100.
func Progress(first, today, goal model.Date) model.ProgressStats {
	elapsed := first.DaysUntil(today) + 1
	remaining := today.DaysUntil(goal) - 1

	pct := 100
	if total := elapsed + remaining; total != 0 {
		pct = int(math.Floor(100 * float64(elapsed) / float64(total)))
	}

	return model.ProgressStats{
		DaysElapsed:     elapsed,
		DaysRemaining:   remaining,
		PercentComplete: pct,
	}
}
