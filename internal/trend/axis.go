package trend

import (
	"gonum.org/v1/gonum/floats"

	"github.com/theirongolddev/eatwatch/internal/model"
)

// AxisPadding is added above and below the weight extremes on the vertical axis.
const AxisPadding = 2

// AxisRange returns the vertical chart range covering every logged weight and
// the goal weight, each extreme truncated to an integer and padded by AxisPadding.
// An empty log ranges over the goal weight alone.
func AxisRange(log model.WeightLog, goal model.DatedSample) (lo, hi int) {
	weights := append(log.Weights(), goal.Weight)
	lo = int(floats.Min(weights)) - AxisPadding
	hi = int(floats.Max(weights)) + AxisPadding
	return lo, hi
}
