package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/theirongolddev/eatwatch/internal/cli"
	"github.com/theirongolddev/eatwatch/internal/config"
	"github.com/theirongolddev/eatwatch/internal/source"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	writeConfig(os.Stdout, cfg, logPath(), flagWindow)
	return nil
}

const configLabelW = 12

func writeConfig(w io.Writer, c config.Config, path string, window int) {
	kv := func(label, value string) {
		fmt.Fprintln(w, cli.RenderKeyValue(label, value, configLabelW))
	}

	kv("Config file", config.Path())
	if config.Exists() {
		kv("Status", "loaded")
	} else {
		kv("Status", "using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [General]")
	if c.General.LogFile != "" {
		kv("Log file", c.General.LogFile)
	} else {
		kv("Log file", "not set (./"+source.DefaultLogName+")")
	}
	kv("Window", strconv.Itoa(c.General.Window))
	kv("Effective", fmt.Sprintf("%s, window %d", path, window))
	if !source.Exists(path) {
		fmt.Fprintln(w, cli.RenderWarning("Weight log not found: "+path))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Appearance]")
	kv("Theme", c.Appearance.Theme)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [TUI]")
	kv("Auto reload", strconv.FormatBool(c.TUI.AutoReload))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Logging]")
	kv("Level", c.Logging.Level)
	kv("File", config.LogFilePath(c))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Run `eatwatch setup` to reconfigure.")
}
