package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkazanov/tui-runner/internal/core"
	"github.com/vkazanov/tui-runner/internal/game"
)

// maxFrameDt caps the Δt fed to the simulation so a stalled terminal (or
// a laptop waking from sleep) does not teleport the obstacle across the
// screen in one frame.
const maxFrameDt = 0.25

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	session *game.Session
	screen  *core.Screen
	config  core.RuntimeConfig

	keys KeyMap
	help help.Model

	lastTick time.Time
	quitting bool
}

// NewModel creates a Bubble Tea model around the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig) Model {
	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey forwards keyboard input to the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if action := m.keys.mapKey(msg); action != core.ActionNone {
		m.session.HandleEvent(core.KeyEvent(action))
	}
	if m.session.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse forwards left-button presses as click events. Motion and
// release events are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.session.HandleEvent(core.ClickEvent(msg.X, msg.Y))
	if m.session.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the session and screen buffer to a new terminal
// size, reserving the bottom row for the help bar.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w := core.Max(msg.Width, 1)
	h := core.Max(msg.Height-1, 1)

	m.config.ScreenW = w
	m.config.ScreenH = h
	m.help.Width = msg.Width
	m.screen.Resize(w, h)
	m.session.Resize(w, h)

	return m, nil
}

// handleTick advances the simulation by the real elapsed time and
// schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
		if dt < 0 {
			dt = 0
		}
	}
	m.lastTick = now

	m.session.Step(dt)

	if m.session.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame plus the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program hosting the session.
func Run(session *game.Session, cfg core.RuntimeConfig) error {
	model := NewModel(session, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Menu buttons are clickable
	)

	_, err := p.Run()
	return err
}
