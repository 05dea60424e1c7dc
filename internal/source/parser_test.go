package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/eatwatch/internal/model"
)

// writeLog creates a temp weight log and returns its path.
func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weight.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func TestParseFile_GoalAndMeasurements(t *testing.T) {
	path := writeLog(t,
		"# goal first",
		"2021-03-01 75",
		"",
		"2021-01-01 82.4",
		"2021/01/02 82.1",
		"2021 1 3\t81.9",
	)

	p, err := ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, model.NewDate(2021, 3, 1), p.Goal.Date)
	assert.InDelta(t, 75.0, p.Goal.Weight, 1e-9)

	require.Len(t, p.Log, 3)
	assert.Equal(t, model.NewDate(2021, 1, 1), p.Log[0].Date)
	assert.InDelta(t, 82.4, p.Log[0].Weight, 1e-9)
	assert.Equal(t, model.NewDate(2021, 1, 2), p.Log[1].Date)
	assert.Equal(t, model.NewDate(2021, 1, 3), p.Log[2].Date)
	assert.InDelta(t, 81.9, p.Log[2].Weight, 1e-9)
}

func TestParse_KeepsFileOrder(t *testing.T) {
	p, err := Parse(strings.NewReader("2021-06-01 70\n2021-01-05 80\n2021-01-02 81\n2021-01-05 79.5\n"))
	require.NoError(t, err)

	require.Len(t, p.Log, 3)
	assert.Equal(t, "2021-01-05", p.Log[0].Date.String())
	assert.Equal(t, "2021-01-02", p.Log[1].Date.String())
	assert.Equal(t, "2021-01-05", p.Log[2].Date.String())
}

func TestParse_IndentedComment(t *testing.T) {
	p, err := Parse(strings.NewReader("   # note\n2021-06-01 70\n"))
	require.NoError(t, err)
	assert.Empty(t, p.Log)
}

func TestParse_GoalOnlyIsEmptyLog(t *testing.T) {
	p, err := Parse(strings.NewReader("2021-06-01 70\n"))
	require.NoError(t, err)
	assert.NotNil(t, p.Log)
	assert.Empty(t, p.Log)
	assert.InDelta(t, 70.0, p.Goal.Weight, 1e-9)
}

func TestParse_NoDataLines(t *testing.T) {
	_, err := Parse(strings.NewReader("# nothing here\n\n"))
	assert.ErrorIs(t, err, ErrNoGoal)
}

func TestParse_MalformedLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "2021-01-01"},
		{"too many fields", "2021-01-01 80 kg"},
		{"bad year", "20x1-01-01 80"},
		{"bad month", "2021-ab-01 80"},
		{"bad weight", "2021-01-01 heavy"},
		{"impossible date", "2021-02-30 80"},
		{"month thirteen", "2021-13-01 80"},
		{"zero weight", "2021-01-01 0"},
		{"doubled delimiter", "2021--01-01 80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "2021-06-01 70\n2021-01-01 81\n" + tt.line + "\n"
			_, err := Parse(strings.NewReader(input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedEntry)

			var le *LineError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, 3, le.Line)
			assert.Equal(t, tt.line, le.Text)
		})
	}
}

func TestParse_MalformedGoal(t *testing.T) {
	_, err := Parse(strings.NewReader("goal: 70kg\n"))
	var le *LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 1, le.Line)
}

func TestParse_OverlongLine(t *testing.T) {
	in := "2021-06-01 70\n2021-01-01 80\n" + strings.Repeat("9", MaxLineBytes+1) + "\n"
	_, err := Parse(strings.NewReader(in))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEntry)
	var le *LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.Line)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingLogFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFile_MalformedCarriesPath(t *testing.T) {
	path := writeLog(t, "2021-06-01 70", "oops")
	_, err := ParseFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEntry)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "line 2")
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, DefaultLogName, ResolvePath())
	assert.Equal(t, DefaultLogName, ResolvePath("", ""))
	assert.Equal(t, "a.txt", ResolvePath("", "a.txt", "b.txt"))

	home, err := os.UserHomeDir()
	if err == nil {
		assert.Equal(t, filepath.Join(home, "w.txt"), ResolvePath("~/w.txt"))
	}
}

func TestExists(t *testing.T) {
	path := writeLog(t, "2021-06-01 70")
	assert.True(t, Exists(path))
	assert.False(t, Exists(filepath.Dir(path)))
	assert.False(t, Exists(filepath.Join(filepath.Dir(path), "missing")))
}

// FuzzParseLine checks that arbitrary lines never panic and that every
// accepted line yields a real date and a positive weight.
func FuzzParseLine(f *testing.F) {
	f.Add("2021-01-01 80.5")
	f.Add("2021/1/1 80")
	f.Add("2021 01 01\t79.9")
	f.Add("2021-02-29 80")
	f.Add("----")
	f.Add("")
	f.Add("1 2 3 NaN")
	f.Add("9999999999999999999 1 1 1")

	f.Fuzz(func(t *testing.T, line string) {
		s, err := parseLine(strings.TrimSpace(line))
		if err != nil {
			return
		}
		if !(s.Weight > 0) {
			t.Errorf("accepted non-positive weight %v from %q", s.Weight, line)
		}
		if len(splitFields(strings.TrimSpace(line))) != 4 {
			t.Errorf("accepted %q without exactly four fields", line)
		}
	})
}
