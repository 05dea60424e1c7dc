// Package cmd implements the eatwatch CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/eatwatch/internal/config"
	"github.com/theirongolddev/eatwatch/internal/logging"
	"github.com/theirongolddev/eatwatch/internal/pipeline"
	"github.com/theirongolddev/eatwatch/internal/source"
	"github.com/theirongolddev/eatwatch/internal/trend"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagFile    string
	flagWindow  int
	flagQuiet   bool
	flagWatch   bool
	flagVerbose bool

	// cfg is loaded once per invocation in PersistentPreRunE.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "eatwatch",
	Short: "Weight trend tracker",
	Long: "Track a daily weight log against a goal: a smoothed trend line, " +
		"days elapsed and remaining, and a chart.",
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
	RunE:              runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Weight log file (default from config, else ./weight.txt)")
	rootCmd.PersistentFlags().IntVarP(&flagWindow, "window", "w", trend.DefaultWindow, "Smoothing window in entries")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload automatically when the log file changes")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Also write diagnostic logs to stderr")
}

// prepare loads the config and configures logging before any command runs.
func prepare(cmd *cobra.Command, _ []string) error {
	var cfgErr error
	cfg, cfgErr = config.Load()

	logging.Setup(logging.Params{
		File:     config.LogFilePath(cfg),
		Level:    cfg.Logging.Level,
		ToStderr: flagVerbose,
	})

	if cfgErr != nil {
		// Corrupt config: continue with defaults.
		logrus.WithError(cfgErr).WithField("path", config.Path()).Warn("using default config")
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", cfgErr)
		}
		cfg = config.DefaultConfig()
	}

	if !cmd.Flags().Changed("window") {
		flagWindow = cfg.General.Window
	}
	logrus.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"file":    logPath(),
		"window":  flagWindow,
	}).Debug("starting")
	return nil
}

// logPath resolves the weight log: --file, then the config, then ./weight.txt.
func logPath() string {
	return source.ResolvePath(flagFile, cfg.General.LogFile)
}

// loadSnapshot is the shared data loading path used by the plain CLI commands.
func loadSnapshot() (*pipeline.Snapshot, error) {
	path := logPath()
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Reading %s...\n", path)
	}

	snap, err := pipeline.Load(pipeline.Options{Path: path, Window: flagWindow})
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loaded %d entries in %s\n", len(snap.Log), snap.LoadTime.Round(time.Microsecond))
	}
	return snap, nil
}
