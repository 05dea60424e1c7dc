package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/eatwatch/internal/model"
)

func TestProgress(t *testing.T) {
	jan1 := model.NewDate(2021, 1, 1)

	tests := []struct {
		name                 string
		first, today, goal   model.Date
		elapsed, remain, pct int
	}{
		{
			name:    "typical",
			first:   jan1,
			today:   model.NewDate(2021, 1, 11),
			goal:    model.NewDate(2021, 2, 10),
			elapsed: 11, remain: 29, pct: 27,
		},
		{
			name:    "first day, goal tomorrow",
			first:   jan1,
			today:   jan1,
			goal:    jan1.AddDays(1),
			elapsed: 1, remain: 0, pct: 100,
		},
		{
			name:    "goal is today (degenerate window)",
			first:   jan1,
			today:   jan1,
			goal:    jan1,
			elapsed: 1, remain: -1, pct: 100,
		},
		{
			name:    "halfway",
			first:   jan1,
			today:   jan1.AddDays(4),
			goal:    jan1.AddDays(10),
			elapsed: 5, remain: 5, pct: 50,
		},
		{
			name:    "past the goal date",
			first:   jan1,
			today:   jan1.AddDays(9),
			goal:    jan1.AddDays(5),
			elapsed: 10, remain: -5, pct: 200,
		},
		{
			name:    "crosses a leap day",
			first:   model.NewDate(2024, 2, 28),
			today:   model.NewDate(2024, 3, 1),
			goal:    model.NewDate(2024, 3, 5),
			elapsed: 3, remain: 3, pct: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.first, tt.today, tt.goal)
			assert.Equal(t, tt.elapsed, got.DaysElapsed, "DaysElapsed")
			assert.Equal(t, tt.remain, got.DaysRemaining, "DaysRemaining")
			assert.Equal(t, tt.pct, got.PercentComplete, "PercentComplete")
		})
	}
}

func TestProgress_FloorsPercentage(t *testing.T) {
	// 2 / 3 = 66.67% floors to 66.
	first := model.NewDate(2022, 5, 1)
	got := Progress(first, first.AddDays(1), first.AddDays(3))
	assert.Equal(t, 2, got.DaysElapsed)
	assert.Equal(t, 1, got.DaysRemaining)
	assert.Equal(t, 66, got.PercentComplete)
}

func TestProgress_DegenerateIsStable(t *testing.T) {
	d := model.NewDate(2023, 7, 14)
	assert.Equal(t, Progress(d, d, d), Progress(d, d, d))
}

func TestProgress_GoalCenturiesAway(t *testing.T) {
	// A mistyped goal year is still a valid date and must count exactly.
	got := Progress(model.NewDate(2021, 1, 1), model.NewDate(2021, 1, 11), model.NewDate(2921, 2, 10))
	assert.Equal(t, 11, got.DaysElapsed)
	assert.Equal(t, 328747, got.DaysRemaining)
	assert.Equal(t, 0, got.PercentComplete)
}
