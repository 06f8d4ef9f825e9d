package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// GameFactory builds a fresh game for a variant id and difficulty preset.
// Every call returns an independent game; nothing is shared between them.
type GameFactory func(id string, preset config.DifficultyPreset) (registry.Game, error)

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model for SSH sessions and for `play` without a
// variant.
type SessionModel struct {
	factory  GameFactory
	config   core.RuntimeConfig
	opts     ModelOptions
	menu     MenuModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(factory GameFactory, cfg core.RuntimeConfig, preset config.DifficultyPreset, opts ModelOptions) SessionModel {
	opts.AllowBack = true
	return SessionModel{
		factory: factory,
		config:  cfg,
		opts:    opts,
		menu:    NewMenuModel(cfg, preset),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := m.factory(selected.GameID, selected.Preset)
	if err != nil {
		m.menu = m.menu.WithError(err.Error())
		return m, nil
	}

	cfg := m.config
	cfg.Seed = 0
	gameModel := NewModel(game, cfg, m.opts)
	m.game = &gameModel

	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		preset := m.menu.Preset()
		m.game = nil
		m.menu = NewMenuModel(m.config, preset)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.game != nil {
		return m.game.View()
	}

	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// RunSession runs the menu-driven session on the local terminal.
func RunSession(factory GameFactory, cfg core.RuntimeConfig, preset config.DifficultyPreset, opts ModelOptions) error {
	p := tea.NewProgram(
		NewSessionModel(factory, cfg, preset, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
