package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"DEBUG":   logrus.DebugLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"trace":   logrus.TraceLevel,
		"info":    logrus.InfoLevel,
		"":        logrus.InfoLevel,
		"bogus":   logrus.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, GetLevel(in), "level %q", in)
	}
}

func TestSetup_WritesToFile(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	path := filepath.Join(t.TempDir(), "logs", "eatwatch.log")
	Setup(Params{File: path, Level: "debug"})

	logrus.WithField("path", "weight.txt").Info("loaded")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "loaded")
	assert.Contains(t, string(data), "path=weight.txt")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestSetup_NoOutputsDiscards(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	Setup(Params{})
	assert.Equal(t, io.Discard, logrus.StandardLogger().Out)
}
