package source

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/eatwatch/internal/model"
)

var (
	// ErrMalformedEntry is wrapped by LineError when a data line does not
	// split into exactly four parseable tokens.
	ErrMalformedEntry = errors.New("malformed log entry")

	// ErrMissingLogFile is returned when the log file cannot be read.
	ErrMissingLogFile = errors.New("cannot read weight log")

	// ErrNoGoal is returned when the log contains no data lines at all.
	ErrNoGoal = errors.New("weight log has no goal entry")
)

// Parsed is the content of a weight log: the goal line and the measurements after it.
type Parsed struct {
	Goal model.DatedSample
	Log  model.WeightLog
}

// LineError reports a malformed entry with its 1-based line number.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap lets errors.Is match ErrMalformedEntry.
func (e *LineError) Unwrap() []error {
	return []error{ErrMalformedEntry, e.Err}
}
