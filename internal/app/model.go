// Package app contains the main application model and TEA implementation.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/questlog/internal/config"
	"github.com/riordanpawley/questlog/internal/services/game"
	"github.com/riordanpawley/questlog/internal/types"
	"github.com/riordanpawley/questlog/internal/ui/banner"
	"github.com/riordanpawley/questlog/internal/ui/styles"
	"github.com/riordanpawley/questlog/internal/ui/tasklist"
)

// maxFrameDelta caps the time a single frame can advance the game, so a
// stalled terminal does not burn through task timers
const maxFrameDelta = time.Second / 3

type tone int

const (
	toneInfo tone = iota
	toneGood
	toneBad
)

// footer is shared with the orchestrator's event handlers, which outlive any
// single copy of the Model
type footer struct {
	text         string
	tone         tone
	allCompleted bool
	levelDone    bool
}

func (f *footer) set(text string, t tone) {
	f.text = text
	f.tone = t
}

func (f *footer) reset() {
	*f = footer{}
}

// Model is the main application state
type Model struct {
	// Game
	session *game.Session
	panel   *tasklist.Panel
	banner  *banner.Renderer
	footer  *footer

	// Input and chrome
	keys     keyMap
	help     help.Model
	showHelp bool
	spinner  spinner.Model
	styles   *styles.Styles

	// Frame clock
	frame     time.Duration
	lastFrame time.Time

	// Terminal size
	width  int
	height int

	// Configuration
	config *config.Config

	// Logger
	logger *slog.Logger
}

// New creates the application model around a session whose level is already
// loaded
func New(cfg *config.Config, session *game.Session) Model {
	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Yellow)

	st := styles.New()
	f := &footer{}

	m := Model{
		session: session,
		panel:   tasklist.New(session.Orch, st),
		banner:  banner.New(st),
		footer:  f,
		keys:    newKeyMap(),
		help:    help.New(),
		spinner: s,
		styles:  st,
		frame:   cfg.FrameInterval(),
		config:  cfg,
		logger:  session.Logger(),
	}
	m.panel.SetTitle(m.levelName())

	orch := session.Orch
	orch.OnAllTasksCompleted(func() {
		f.allCompleted = true
		f.set("All tasks completed!", toneGood)
	})
	orch.OnAllTasksFinished(func() {
		f.levelDone = true
		if !f.allCompleted {
			f.set("Level finished", toneInfo)
		}
	})
	orch.OnSceneTasksFailed(func() {
		f.set("Some tasks failed", toneBad)
	})
	orch.Rebind(m.panel, session.Mood)

	return m
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		frameEvery(m.frame),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case frameMsg:
		m.advance(time.Time(msg))
		return m, frameEvery(m.frame)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// advance runs one frame of game time ending at now
func (m *Model) advance(now time.Time) {
	dt := m.frame
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	m.session.Tick(dt)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("quit", "level", m.levelName())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	// Help swallows everything else
	if m.showHelp {
		return m, nil
	}

	orch := m.session.Orch
	switch {
	case key.Matches(msg, m.keys.Complete):
		if t, ok := orch.CurrentTask(); ok {
			orch.CompleteTask(t.ID)
		}

	case key.Matches(msg, m.keys.CompleteN):
		orch.CompleteTask(int(msg.String()[0] - '0'))

	case key.Matches(msg, m.keys.Next):
		m.focusNext()

	case key.Matches(msg, m.keys.Tasks):
		m.panel.Toggle()

	case key.Matches(msg, m.keys.Dismiss):
		m.session.Presenter.Hide()

	case key.Matches(msg, m.keys.Rearm):
		orch.ResetCompletionEvents()
		m.footer.reset()
		m.footer.set("Level events re-armed", toneInfo)

	case key.Matches(msg, m.keys.Scene):
		m.nextScene()
	}

	return m, nil
}

// focusNext moves focus to the next active task after the current one,
// wrapping around
func (m *Model) focusNext() {
	orch := m.session.Orch
	tasks := orch.Tasks()
	n := len(tasks)
	cur := orch.CurrentTaskIndex()

	for step := 1; step <= n; step++ {
		i := ((cur+step)%n + n) % n
		if i == cur {
			continue
		}
		if tasks[i].IsActive() {
			orch.SetCurrentTask(i)
			return
		}
	}
}

// nextScene swaps in a fresh task panel and loads the following level
func (m *Model) nextScene() {
	panel := tasklist.New(m.session.Orch, m.styles)

	ok, err := m.session.Next(panel)
	if err != nil {
		m.logger.Error("scene transition failed", "error", err)
		m.footer.set(err.Error(), toneBad)
		return
	}
	if !ok {
		m.footer.set("No more levels", toneInfo)
		return
	}

	if m.panel.Visible() {
		panel.Show()
	}
	m.panel = panel
	m.panel.SetTitle(m.levelName())
	m.footer.reset()
	m.logger.Info("scene changed", "level", m.levelName())
}

// Mode reports what the status bar should show
func (m Model) Mode() types.Mode {
	switch {
	case m.showHelp:
		return types.ModeHelp
	case m.footer.levelDone:
		return types.ModeLevelDone
	case m.panel.Visible():
		return types.ModeTasks
	default:
		return types.ModePlay
	}
}

func (m Model) levelName() string {
	if level := m.session.Level(); level != nil {
		return level.Name
	}
	return ""
}

// Messages

type frameMsg time.Time

func frameEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
