package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// ModelOptions tunes a game model beyond the runtime config.
type ModelOptions struct {
	// Bell receives a BEL character for every cue. Nil keeps the game silent.
	Bell io.Writer

	// AllowBack lets B/Esc leave a paused or finished game. Used by the
	// session model to return to the menu.
	AllowBack bool
}

// Model is the Bubble Tea model running one game. It owns the tick
// scheduler: exactly one timer is outstanding while the game runs, and its
// generation number is bumped whenever the timer is replaced or cancelled.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	bell   io.Writer

	allowBack bool
	state     core.GameState

	gen      uint64
	ticking  bool
	interval time.Duration

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game and resets the
// game so the first timer can be armed by Init.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:      game,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		bell:      opts.Bell,
		allowBack: opts.AllowBack,
	}
	m.help.Width = cfg.ScreenW

	w, h := m.boardArea()
	m.screen = core.NewScreen(w, h)

	gameCfg := cfg
	gameCfg.ScreenH = h
	game.Reset(gameCfg)
	m.state = game.State()
	m.arm()

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if !m.ticking {
		return nil
	}
	return tickCmd(m.interval, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey maps a key press to a single-action frame and applies it at once.
// Key frames never carry ActionTick, so steering takes effect on the next
// scheduled tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.config.ScreenW, m.config.ScreenH)
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.allowBack && (m.state.GameOver || m.state.Paused) {
			m.backToMenu = true
			m.cancel()
		}
		return m, nil
	}

	frame := core.NewInputFrame()
	frame.Set(action)
	m.apply(m.game.Step(frame))

	return m, m.reschedule()
}

// handleResize lays out the board area and tells resizable games about it.
// The game itself keeps running; only the viewport changes.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width

	w, h := m.boardArea()
	m.screen.Resize(w, h)
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(w, h)
	}
	m.state = m.game.State()

	return m, m.reschedule()
}

// handleTick advances the simulation by one step. Ticks from a cancelled or
// replaced timer are dropped.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticking || msg.Gen != m.gen {
		return m, nil
	}
	m.ticking = false

	frame := core.NewInputFrame()
	frame.Set(core.ActionTick)
	m.apply(m.game.Step(frame))

	return m, m.reschedule()
}

// apply records the step result and rings the bell for its cues.
func (m *Model) apply(res core.StepResult) {
	m.state = res.State
	if m.bell == nil {
		return
	}
	for range res.Cues {
		//nolint:errcheck // Best-effort bell
		io.WriteString(m.bell, "\a")
	}
}

// reschedule reconciles the timer with the game state. A running game needs
// a timer at the current interval; a paused or finished game needs none.
func (m *Model) reschedule() tea.Cmd {
	running := !m.state.GameOver && !m.state.Paused
	switch {
	case !running:
		m.cancel()
		return nil
	case m.ticking && m.interval == m.state.Interval:
		return nil
	}
	m.arm()
	return tickCmd(m.interval, m.gen)
}

// arm registers a new timer generation when the game is running.
func (m *Model) arm() {
	if m.state.GameOver || m.state.Paused || m.state.Interval <= 0 {
		return
	}
	m.gen++
	m.ticking = true
	m.interval = m.state.Interval
}

// cancel invalidates the outstanding timer, if any.
func (m *Model) cancel() {
	if m.ticking {
		m.gen++
		m.ticking = false
	}
}

// boardArea returns the screen size left for the game below the help bar.
func (m Model) boardArea() (int, int) {
	helpLines := 1
	if m.help.ShowAll {
		helpLines = len(m.keys.FullHelp()[0])
	}
	return m.config.ScreenW, max(m.config.ScreenH-helpLines, 0)
}

// View renders the game screen followed by the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state observed after the last step.
func (m Model) State() core.GameState {
	return m.state
}

// Ticking reports whether a timer is outstanding.
func (m Model) Ticking() bool {
	return m.ticking
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
