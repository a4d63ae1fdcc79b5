// Package demo is the interactive shimmer showcase: a list of items that
// flips between loading and loaded on a timer.
package demo

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/shimmer"
	"github.com/grindlemire/shimmer/internal/config"
	"github.com/grindlemire/shimmer/internal/debug"
	"github.com/grindlemire/shimmer/internal/paint"
)

// Mode is which variant of the loader the demo shows.
type Mode int

const (
	ModeDefault Mode = iota
	ModeRTL
	ModeCustom
)

var modeNames = []string{"Default", "RTL", "Custom Layout"}

// String returns the mode's label.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

type toggleMsg struct{}

// frameMsg reports that pulse produced a frame.
type frameMsg struct {
	pulse *shimmer.Pulse
}

// App is the demo's bubbletea model.
type App struct {
	cfg    config.Config
	item   shimmer.Node
	loader *shimmer.Loader
	logger *slog.Logger

	painter *paint.Painter
	spinner spinner.Model
	help    help.Model
	keys    KeyMap

	loading bool
	mode    Mode
	tree    shimmer.Node
	watched *shimmer.Pulse

	width  int
	height int
}

// NewApp creates the demo model showing item cfg.Items times. It starts in
// the loading state.
func NewApp(cfg config.Config, item shimmer.Node) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	mode := ModeDefault
	switch {
	case cfg.Custom:
		mode = ModeCustom
	case cfg.RightToLeft:
		mode = ModeRTL
	}

	logger := debug.Logger()
	return &App{
		cfg:     cfg,
		item:    item,
		loader:  shimmer.NewLoader(shimmer.WithLoaderLogger(logger)),
		logger:  logger,
		painter: newPainter(cfg, cfg.Width),
		spinner: s,
		help:    help.New(),
		keys:    Keys,
		loading: true,
		mode:    mode,
	}
}

func newPainter(cfg config.Config, width int) *paint.Painter {
	return paint.New(
		paint.WithWidth(width),
		paint.WithBackdrop(cfg.Backdrop),
		paint.WithLogger(debug.Logger()),
	)
}

// Init starts the spinner, the toggle timer and the first render.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.scheduleToggle(), a.sync())
}

// Update handles messages for the demo.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.painter = newPainter(a.cfg, max(msg.Width-appStyle.GetHorizontalFrameSize(), 1))
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.loader.Close()
			return a, tea.Quit
		case key.Matches(msg, a.keys.Toggle):
			a.loading = !a.loading
			return a, a.sync()
		case key.Matches(msg, a.keys.RTL):
			a.mode = a.nextMode(ModeRTL)
			return a, a.sync()
		case key.Matches(msg, a.keys.Custom):
			a.mode = a.nextMode(ModeCustom)
			return a, a.sync()
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		}

	case toggleMsg:
		a.loading = !a.loading
		a.logger.Debug("demo: toggled", "loading", a.loading)
		return a, tea.Batch(a.sync(), a.scheduleToggle())

	case frameMsg:
		if msg.pulse != a.watched {
			return a, nil
		}
		return a, waitForFrame(msg.pulse)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

// nextMode switches to m, or back to the default when m is already shown.
func (a *App) nextMode(m Mode) Mode {
	if a.mode == m {
		return ModeDefault
	}
	return m
}

// sync renders the loader for the current state and, when a new pulse
// started, begins listening for its frames.
func (a *App) sync() tea.Cmd {
	rtl := a.mode == ModeRTL
	props := shimmer.LoaderProps{
		IsLoading:     a.loading,
		PulseDuration: a.cfg.Pulse,
		RightToLeft:   rtl,
		Children:      List(a.item, a.cfg.Items, rtl),
	}
	if a.mode == ModeCustom {
		props.CustomLayout = CustomShimmer()
	}
	a.tree = a.loader.Render(props)

	p := a.loader.Pulse()
	if p == nil || p == a.watched {
		a.watched = p
		return nil
	}
	a.watched = p
	return waitForFrame(p)
}

func (a *App) scheduleToggle() tea.Cmd {
	if a.cfg.Toggle <= 0 {
		return nil
	}
	return tea.Tick(a.cfg.Toggle, func(time.Time) tea.Msg {
		return toggleMsg{}
	})
}

// waitForFrame blocks until p produces a frame or stops.
func waitForFrame(p *shimmer.Pulse) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-p.Frames():
			return frameMsg{pulse: p}
		case <-p.Done():
			return nil
		}
	}
}

// Loading reports whether the demo currently shows placeholders.
func (a *App) Loading() bool {
	return a.loading
}

// Mode returns the variant shown.
func (a *App) Mode() Mode {
	return a.mode
}

// Close stops the loader's pulse.
func (a *App) Close() {
	a.loader.Close()
}

// View renders the demo.
func (a *App) View() string {
	var b strings.Builder

	status := "Loaded"
	if a.loading {
		status = a.spinner.View() + " Loading..."
	}
	b.WriteString(titleStyle.Render("Status: " + status))
	b.WriteString("\n")

	modes := make([]string, len(modeNames))
	for i := range modeNames {
		style := modeStyle
		if Mode(i) == a.mode {
			style = activeModeStyle
		}
		modes[i] = style.Render(Mode(i).String())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, modes...))
	b.WriteString("\n\n")

	body := a.painter.Paint(a.tree)
	if a.height > 0 {
		body = clip(body, a.height-8)
	}
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(a.help.View(a.keys))

	return appStyle.Render(b.String())
}

// clip keeps the first n lines of s.
func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

// RenderStatic paints a single loading frame of the demo without a terminal
// program.
func RenderStatic(cfg config.Config, item shimmer.Node) string {
	a := NewApp(cfg, item)
	defer a.Close()

	a.sync()
	return a.painter.Paint(a.tree)
}

// ShowError renders err for the terminal.
func ShowError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}
