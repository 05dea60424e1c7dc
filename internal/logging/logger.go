// Package logging configures the global logrus logger for eatwatch.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params controls where and how verbosely eatwatch logs.
type Params struct {
	File     string
	Level    string
	ToStderr bool
}

// Setup points logrus at a rotating file. The dashboard owns the terminal, so
// nothing goes to stdout; ToStderr adds stderr for the plain CLI commands.
// With no file and no stderr, logging is discarded.
func Setup(params Params) {
	logrus.SetLevel(GetLevel(params.Level))
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	var writers []io.Writer
	if params.File != "" {
		if err := os.MkdirAll(filepath.Dir(params.File), 0o750); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   params.File,
				MaxSize:    5, // megabytes
				MaxBackups: 3,
				LocalTime:  true,
			})
		}
	}
	if params.ToStderr {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		logrus.SetOutput(io.Discard)
	case 1:
		logrus.SetOutput(writers[0])
	default:
		logrus.SetOutput(io.MultiWriter(writers...))
	}
}

// GetLevel maps a config string to a logrus level, defaulting to info.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
