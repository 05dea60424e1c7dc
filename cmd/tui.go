package cmd

import (
	"fmt"

	"github.com/theirongolddev/eatwatch/internal/tui"
	"github.com/theirongolddev/eatwatch/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard (default)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Path:         logPath(),
		PathFromFlag: cmd.Flags().Changed("file"),
		Window:       flagWindow,
		Watch:        flagWatch || cfg.TUI.AutoReload,
	})
	defer func() { _ = app.Close() }()

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if a, ok := final.(tui.App); ok && a.Snapshot() != nil {
		logrus.WithField("samples", len(a.Snapshot().Log)).Debug("dashboard closed")
	}

	return nil
}
