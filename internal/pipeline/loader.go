// Package pipeline turns a weight log file into the values the dashboard displays.
package pipeline

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/eatwatch/internal/cli"
	"github.com/theirongolddev/eatwatch/internal/model"
	"github.com/theirongolddev/eatwatch/internal/source"
	"github.com/theirongolddev/eatwatch/internal/trend"
)

// Options selects the log to load and how to derive the trend.
type Options struct {
	Path   string
	Window int
	// Today overrides the current date; zero means model.Today().
	Today model.Date
}

// Snapshot is everything derived from one successful read of the log.
// A Snapshot is never modified after Load returns it; a reload builds a new one.
type Snapshot struct {
	Path   string
	Window int
	Today  model.Date

	Goal     model.DatedSample
	Log      model.WeightLog
	Smoothed model.WeightLog

	// Progress is nil when the log has no measurements.
	Progress *model.ProgressStats

	AxisMin int
	AxisMax int

	LoadedAt time.Time
	LoadTime time.Duration
}

// Load reads the log at opts.Path and derives the smoothed series, progress
// and axis range from it.
func Load(opts Options) (*Snapshot, error) {
	start := time.Now()

	parsed, err := source.ParseFile(opts.Path)
	if err != nil {
		logrus.WithError(err).WithField("path", opts.Path).Warn("weight log load failed")
		return nil, fmt.Errorf("loading weight log: %w", err)
	}

	snap := Build(parsed, opts.Window, opts.Today)
	snap.Path = opts.Path
	snap.LoadedAt = time.Now()
	snap.LoadTime = time.Since(start)

	logrus.WithFields(logrus.Fields{
		"path":    opts.Path,
		"samples": len(snap.Log),
		"window":  snap.Window,
		"elapsed": snap.LoadTime,
	}).Info("weight log loaded")

	return snap, nil
}

// Build derives a Snapshot from an already parsed log.
func Build(parsed source.Parsed, window int, today model.Date) *Snapshot {
	if window < 1 {
		window = trend.DefaultWindow
	}
	if today.IsZero() {
		today = model.Today()
	}

	snap := &Snapshot{
		Window:   window,
		Today:    today,
		Goal:     parsed.Goal,
		Log:      parsed.Log,
		Smoothed: trend.Smooth(parsed.Log, window),
	}

	if first, ok := parsed.Log.First(); ok {
		p := trend.Progress(first.Date, today, parsed.Goal.Date)
		snap.Progress = &p
	}

	snap.AxisMin, snap.AxisMax = trend.AxisRange(parsed.Log, parsed.Goal)
	return snap
}

// Empty reports whether the log has no measurements.
func (s *Snapshot) Empty() bool {
	return len(s.Log) == 0
}

// ProgressText renders the progress sentence, or the placeholder for an empty log.
func (s *Snapshot) ProgressText() string {
	return cli.FormatProgress(s.Progress)
}

// Latest returns the most recent raw measurement.
func (s *Snapshot) Latest() (model.DatedSample, bool) {
	return s.Log.Last()
}

// Trend returns the most recent smoothed value.
func (s *Snapshot) Trend() (model.DatedSample, bool) {
	return s.Smoothed.Last()
}

// ToGo returns how far the current trend is from the goal weight
// (positive means above the goal).
func (s *Snapshot) ToGo() (float64, bool) {
	tr, ok := s.Trend()
	if !ok {
		return 0, false
	}
	return tr.Weight - s.Goal.Weight, true
}

// Change returns the smoothed change from the first to the latest point.
func (s *Snapshot) Change() (float64, bool) {
	first, ok := s.Smoothed.First()
	if !ok {
		return 0, false
	}
	last, _ := s.Smoothed.Last()
	return last.Weight - first.Weight, true
}

// GoalSeries returns the goal line: from the first measurement to the goal
// sample, or the goal point alone when there are no measurements.
func (s *Snapshot) GoalSeries() model.WeightLog {
	if first, ok := s.Log.First(); ok {
		return model.WeightLog{first, s.Goal}
	}
	return model.WeightLog{s.Goal}
}

// DateSpan returns the earliest and latest dates across the log and the goal.
func (s *Snapshot) DateSpan() (from, to model.Date) {
	from, to = s.Goal.Date, s.Goal.Date
	for _, d := range s.Log {
		if d.Date.Before(from) {
			from = d.Date
		}
		if d.Date.After(to) {
			to = d.Date
		}
	}
	return from, to
}
