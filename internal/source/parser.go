// Package source reads and parses the flat text weight log.
//
// Each non-blank line not starting with '#' holds four tokens
// "year month day weight" separated by whitespace, '-' or '/'.
// The first such line is the goal, the rest are measurements.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/eatwatch/internal/model"
)

var delimiter = regexp.MustCompile(`-|/|\s+`)

// MaxLineBytes is the longest line the parser accepts. A valid entry is a
// few dozen bytes; anything past this is reported as a malformed line.
const MaxLineBytes = 64 * 1024

var errLineTooLong = fmt.Errorf("line longer than %d bytes", MaxLineBytes)

// ParseFile reads the weight log at path.
func ParseFile(path string) (Parsed, error) {
	f, err := os.Open(path) //nolint:gosec // path is the user's own log file
	if err != nil {
		return Parsed{}, fmt.Errorf("%w %s: %w", ErrMissingLogFile, path, err)
	}
	defer func() { _ = f.Close() }()

	p, err := Parse(f)
	if err != nil {
		return Parsed{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse reads a weight log from r. Measurements keep file order.
func Parse(r io.Reader) (Parsed, error) {
	var (
		p        Parsed
		haveGoal bool
		lineNo   int
	)
	p.Log = model.WeightLog{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineBytes)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sample, err := parseLine(line)
		if err != nil {
			return Parsed{}, &LineError{Line: lineNo, Text: line, Err: err}
		}

		if !haveGoal {
			p.Goal = sample
			haveGoal = true
			continue
		}
		p.Log = append(p.Log, sample)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Parsed{}, &LineError{Line: lineNo + 1, Err: errLineTooLong}
		}
		return Parsed{}, fmt.Errorf("reading weight log: %w", err)
	}

	if !haveGoal {
		return Parsed{}, ErrNoGoal
	}
	return p, nil
}

// splitFields splits a trimmed data line on the log's delimiters.
func splitFields(line string) []string {
	return delimiter.Split(line, -1)
}

// parseLine converts one trimmed data line into a sample.
func parseLine(line string) (model.DatedSample, error) {
	fields := splitFields(line)
	if len(fields) != 4 {
		return model.DatedSample{}, fmt.Errorf("want 4 fields (year month day weight), got %d", len(fields))
	}

	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.DatedSample{}, fmt.Errorf("year: %w", err)
	}
	month, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.DatedSample{}, fmt.Errorf("month: %w", err)
	}
	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return model.DatedSample{}, fmt.Errorf("day: %w", err)
	}
	weight, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return model.DatedSample{}, fmt.Errorf("weight: %w", err)
	}

	date := model.NewDate(year, time.Month(month), day)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return model.DatedSample{}, fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, month, day)
	}
	if weight <= 0 || math.IsInf(weight, 0) || math.IsNaN(weight) {
		return model.DatedSample{}, errors.New("weight must be a positive number")
	}

	return model.DatedSample{Date: date, Weight: weight}, nil
}
