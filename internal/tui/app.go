// Package tui provides the interactive Bubble Tea dashboard for eatwatch.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/eatwatch/internal/config"
	"github.com/theirongolddev/eatwatch/internal/model"
	"github.com/theirongolddev/eatwatch/internal/pipeline"
	"github.com/theirongolddev/eatwatch/internal/source"
	"github.com/theirongolddev/eatwatch/internal/tui/components"
	"github.com/theirongolddev/eatwatch/internal/tui/theme"
	"github.com/theirongolddev/eatwatch/internal/watch"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// ReloadMsg carries the outcome of reading the weight log.
// Exactly one of Snap and Err is set.
type ReloadMsg struct {
	Snap *pipeline.Snapshot
	Err  error
}

// fileChangedMsg is sent when the watcher sees the log change.
type fileChangedMsg struct{}

type tickMsg struct{}

// Options configures a new App.
type Options struct {
	Path string
	// PathFromFlag keeps the setup form from replacing Path.
	PathFromFlag bool
	Window       int
	Watch        bool
	// Today pins the current date; zero means the real date.
	Today model.Date
}

// App is the root Bubble Tea model.
type App struct {
	// Data. snap is replaced wholesale on a successful reload and never mutated.
	snap      *pipeline.Snapshot
	loaded    bool
	reloading bool
	loadErr   error // shown as a modal until dismissed

	// Log source
	logPath      string
	pathFromFlag bool
	window       int
	today        model.Date
	watcher      *watch.FileWatcher

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	logScroll int

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 160
	minContentHeight = 5

	tabChart = 0
	tabLog   = 1
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		logPath:      opts.Path,
		pathFromFlag: opts.PathFromFlag,
		window:       opts.Window,
		today:        opts.Today,
		needSetup:    !config.Exists(),
		spinner:      sp,
	}

	if opts.Watch {
		w, err := watch.NewFileWatcher(opts.Path)
		if err != nil {
			logrus.WithError(err).Warn("auto-reload disabled")
		} else {
			a.watcher = w
		}
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		a.reloadCmd(),
		a.spinner.Tick,
		tickCmd(),
	}
	if a.watcher != nil {
		cmds = append(cmds, waitForChange(a.watcher))
	}
	return tea.Batch(cmds...)
}

// Close releases the file watcher, if any.
func (a App) Close() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// Snapshot returns the currently displayed data, or nil before the first
// successful load.
func (a App) Snapshot() *pipeline.Snapshot {
	return a.snap
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.loadErr != nil || a.setupForm != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabLog && a.logScroll > 0 {
				a.logScroll--
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabLog {
				a.logScroll = min(a.logScroll+1, a.maxLogScroll())
			}
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := components.TabAtX(msg.X, a.activeTab); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case ReloadMsg:
		return a.applyReload(msg)

	case fileChangedMsg:
		cmds := []tea.Cmd{waitForChange(a.watcher)}
		if !a.reloading {
			a.reloading = true
			cmds = append(cmds, a.reloadCmd(), a.spinner.Tick)
		}
		return a, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !a.loaded || a.reloading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		// Keeps the "loaded N ago" age in the status bar current.
		return a, tickCmd()
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// The error modal blocks everything until dismissed.
	if a.loadErr != nil {
		a.loadErr = nil
		return a, nil
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "r":
		if a.reloading {
			return a, nil
		}
		a.reloading = true
		return a, tea.Batch(a.reloadCmd(), a.spinner.Tick)
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case "j", "down":
		if a.activeTab == tabLog {
			a.logScroll = min(a.logScroll+1, a.maxLogScroll())
		}
	case "k", "up":
		if a.activeTab == tabLog && a.logScroll > 0 {
			a.logScroll--
		}
	case "g":
		a.logScroll = 0
	case "G":
		a.logScroll = a.maxLogScroll()
	default:
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

// applyReload installs a freshly loaded snapshot, or keeps the current one
// and raises the error modal.
func (a App) applyReload(msg ReloadMsg) (tea.Model, tea.Cmd) {
	a.reloading = false
	first := !a.loaded
	a.loaded = true

	if msg.Err != nil {
		a.loadErr = msg.Err
		logrus.WithError(msg.Err).Warn("reload failed, keeping previous data")
	} else if msg.Snap != nil {
		a.snap = msg.Snap
		a.loadErr = nil
		a.logScroll = min(a.logScroll, a.maxLogScroll())
	}

	if first && a.needSetup {
		vals := SetupValuesFrom(loadConfigOrDefault())
		if !a.pathFromFlag && vals.LogFile == "" {
			vals.LogFile = a.logPath
		}
		a.setupVals = &vals
		a.setupForm = NewSetupForm(a.setupVals)
		if a.width > 0 {
			a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.setupForm.Init()
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.saveSetupConfig(); err != nil {
			logrus.WithError(err).Warn("saving setup config")
		}
		a.needSetup = false
		a.setupForm = nil
		if !a.pathFromFlag && a.setupVals.LogFile != "" {
			a.logPath = source.ResolvePath(a.setupVals.LogFile)
		}
		a.reloading = true
		return a, a.reloadCmd()

	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.loadErr != nil {
		return a.viewError()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  eatwatch needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ eatwatch"))
	b.WriteString(subtitleStyle.Render(" · weight trend"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Reading " + a.logPath))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// viewError renders the blocking notification for a failed load.
func (a App) viewError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error).
		Background(t.Surface).
		Padding(1, 3).
		Width(min(a.width-4, 72))

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Error).
		Background(t.Surface).
		Bold(true)

	bodyStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Could not load weight log"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.loadErr.Error()))
	b.WriteString("\n\n")
	if a.snap != nil {
		b.WriteString(dimStyle.Render("Still showing data loaded " + a.snap.LoadedAt.Format("15:04:05") + "."))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("Press any key to continue"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Info).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"c l", "Chart / Log tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Scroll the log"},
		{"g G", "Newest / Oldest entry"},
		{"r", "Reload the log file"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	info := components.StatusInfo{
		Path:      a.logPath,
		Reloading: a.reloading,
		Watching:  a.watcher != nil,
	}
	if a.snap != nil {
		info.LoadedAt = a.snap.LoadedAt
	}
	statusBar := components.RenderStatusBar(w, info)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch {
	case a.snap == nil:
		content = a.renderNoData(cw)
	case a.activeTab == tabLog:
		content = a.renderLogTab(cw, contentH)
	default:
		content = a.renderChartTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderNoData(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	body := muted.Render("Nothing loaded from "+a.logPath+".") + "\n" +
		muted.Render("Fix the file and press r to try again.")
	return components.ContentCard("No data", body, cw)
}

// ─── Commands ───────────────────────────────────────────────────

// reloadCmd reads the log off the update loop and reports a ReloadMsg.
func (a App) reloadCmd() tea.Cmd {
	opts := pipeline.Options{Path: a.logPath, Window: a.window, Today: a.today}
	return func() tea.Msg {
		snap, err := pipeline.Load(opts)
		if err != nil {
			return ReloadMsg{Err: err}
		}
		return ReloadMsg{Snap: snap}
	}
}

// waitForChange blocks until the watcher reports a change. A closed watcher
// ends the subscription.
func waitForChange(w *watch.FileWatcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
