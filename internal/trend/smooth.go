// Package trend computes the smoothed weight trend and progress-to-goal figures.
package trend

import "github.com/theirongolddev/eatwatch/internal/model"

// DefaultWindow is the number of samples averaged by Smooth.
const DefaultWindow = 10

// Smooth returns the trailing moving average of samples over window points.
// The result has the same length and dates as samples. The first window-1
// points average over however many samples exist so far.
func Smooth(samples []model.DatedSample, window int) []model.DatedSample {
	if window < 1 {
		window = 1
	}

	out := make([]model.DatedSample, len(samples))
	sum := 0.0
	for i, s := range samples {
		sum += s.Weight
		if i >= window {
			sum -= samples[i-window].Weight
		}
		out[i] = model.DatedSample{
			Date:   s.Date,
			Weight: sum / float64(min(i+1, window)),
		}
	}
	return out
}
