package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theirongolddev/eatwatch/internal/config"
	"github.com/theirongolddev/eatwatch/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	LogFile    string
	Window     string
	Theme      string
	AutoReload bool
}

// SetupValuesFrom pre-fills the form from an existing config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		LogFile:    cfg.General.LogFile,
		Window:     strconv.Itoa(cfg.General.Window),
		Theme:      cfg.Appearance.Theme,
		AutoReload: cfg.TUI.AutoReload,
	}
}

// NewSetupForm builds the first-run form. Answers are written into vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}
	if vals.Theme == "" {
		vals.Theme = theme.FlexokiDark.Name
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to eatwatch").
				Description("Track your weight trend against a goal.\nThe first line of the log is the goal, the rest are daily weigh-ins."),
			huh.NewInput().
				Title("Weight log file").
				Description("Lines look like 2021-01-01 80.5. Leave blank for weight.txt in the current directory.").
				Placeholder("weight.txt").
				Value(&vals.LogFile),
			huh.NewInput().
				Title("Smoothing window").
				Description("How many recent entries the trend line averages over.").
				Placeholder("10").
				Value(&vals.Window).
				Validate(validateWindow),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewConfirm().
				Title("Reload automatically when the log changes?").
				Value(&vals.AutoReload),
		),
	).WithShowHelp(true)
}

func validateWindow(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return errors.New("enter a whole number of at least 1")
	}
	return nil
}

// ApplySetup copies form answers onto cfg.
func ApplySetup(cfg config.Config, vals SetupValues) config.Config {
	cfg.General.LogFile = strings.TrimSpace(vals.LogFile)
	if n, err := strconv.Atoi(strings.TrimSpace(vals.Window)); err == nil && n >= 1 {
		cfg.General.Window = n
	}
	if vals.Theme != "" {
		cfg.Appearance.Theme = vals.Theme
	}
	cfg.TUI.AutoReload = vals.AutoReload
	return cfg
}

// saveSetupConfig persists the form answers and applies them to the running app.
func (a *App) saveSetupConfig() error {
	cfg, _ := config.Load()
	cfg = ApplySetup(cfg, *a.setupVals)
	theme.SetActive(cfg.Appearance.Theme)
	a.window = cfg.General.Window
	return config.Save(cfg)
}
