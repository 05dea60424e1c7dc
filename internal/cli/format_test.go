package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/eatwatch/internal/model"
)

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		name string
		in   *model.ProgressStats
		want string
	}{
		{"placeholder", nil, "- days down, - days to go (0%)"},
		{"typical", &model.ProgressStats{DaysElapsed: 11, DaysRemaining: 29, PercentComplete: 27}, "11 days down, 29 days to go (27%)"},
		{"singular both", &model.ProgressStats{DaysElapsed: 1, DaysRemaining: 1, PercentComplete: 50}, "1 day down, 1 day to go (50%)"},
		{"zero remaining", &model.ProgressStats{DaysElapsed: 1, DaysRemaining: 0, PercentComplete: 100}, "1 day down, 0 days to go (100%)"},
		{"overdue", &model.ProgressStats{DaysElapsed: 10, DaysRemaining: -1, PercentComplete: 111}, "10 days down, -1 day to go (111%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatProgress(tt.in))
		})
	}
}

func TestFormatWeightAndDelta(t *testing.T) {
	assert.Equal(t, "80.0", FormatWeight(80))
	assert.Equal(t, "79.9", FormatWeight(79.94))
	assert.Equal(t, "+1.5", FormatDelta(1.5))
	assert.Equal(t, "-0.3", FormatDelta(-0.3))
	assert.Equal(t, "±0.0", FormatDelta(0.01))
}

func TestFormatDayOfWeek(t *testing.T) {
	assert.Equal(t, "Sun", FormatDayOfWeek(0))
	assert.Equal(t, "Sat", FormatDayOfWeek(6))
	assert.Equal(t, "???", FormatDayOfWeek(7))
}
