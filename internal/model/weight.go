// Package model defines domain types for eatwatch weight logs and progress.
package model

import "time"

// Date is a calendar date with no time-of-day component.
// It is stored as midnight UTC so day arithmetic never crosses a DST change.
type Date struct {
	t time.Time
}

// NewDate returns the calendar date year-month-day.
// Out-of-range values are normalized the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// Year returns the date's year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the date's month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the date's day of month.
func (d Date) Day() int { return d.t.Day() }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time { return d.t }

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the whole number of days from d to other (negative if other is earlier).
// Both are midnight UTC, so Unix seconds divide evenly into days at any distance.
func (d Date) DaysUntil(other Date) int {
	return int((other.t.Unix() - d.t.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DatedSample is one weight measurement (or the goal) on a calendar date.
type DatedSample struct {
	Date   Date    `json:"date"`
	Weight float64 `json:"weight"`
}

// WeightLog is the measurement history in file order.
type WeightLog []DatedSample

// Weights returns the weights of the log in order.
func (l WeightLog) Weights() []float64 {
	out := make([]float64, len(l))
	for i, s := range l {
		out[i] = s.Weight
	}
	return out
}

// First returns the first sample, or false when the log is empty.
func (l WeightLog) First() (DatedSample, bool) {
	if len(l) == 0 {
		return DatedSample{}, false
	}
	return l[0], true
}

// Last returns the last sample, or false when the log is empty.
func (l WeightLog) Last() (DatedSample, bool) {
	if len(l) == 0 {
		return DatedSample{}, false
	}
	return l[len(l)-1], true
}

// ProgressStats holds elapsed/remaining day counts toward the goal date.
type ProgressStats struct {
	DaysElapsed     int `json:"days_elapsed"`
	DaysRemaining   int `json:"days_remaining"`
	PercentComplete int `json:"percent_complete"`
}
