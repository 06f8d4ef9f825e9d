package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true)
)

// MenuItem represents a selectable game variant in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuSelection is what the player picked: a variant and a difficulty.
type MenuSelection struct {
	GameID string
	Preset config.DifficultyPreset
}

// MenuModel is the Bubble Tea model for the variant picker.
// Up/Down choose the variant, Left/Right cycle the difficulty preset.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	preset   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     KeyMap
	errMsg   string
	quitting bool
	selected *MenuSelection
}

// NewMenuModel creates a new menu model listing every registered variant.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	m := MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultKeyMap(),
	}
	m.preset = presetIndex(preset)
	return m
}

// presetIndex returns the position of p in config.Presets; unknown and empty
// presets fall back to normal.
func presetIndex(p config.DifficultyPreset) int {
	if p == "" {
		p = config.DifficultyNormal
	}
	for i, candidate := range config.Presets {
		if candidate == p {
			return i
		}
	}
	return 1
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.preset = (m.preset + len(config.Presets) - 1) % len(config.Presets)

	case MenuActionRight:
		m.preset = (m.preset + 1) % len(config.Presets)

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = &MenuSelection{
				GameID: m.items[m.cursor].GameID,
				Preset: m.Preset(),
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a variant", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> ") + menuSelectedStyle.Render(item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", m.Preset()), m.width))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuErrorStyle.Render(m.errMsg), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Variant  |  Left/Right: Difficulty  |  Enter: Play  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Preset returns the difficulty currently shown.
func (m MenuModel) Preset() config.DifficultyPreset {
	return config.Presets[m.preset]
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// WithError returns a copy of the menu showing msg and with the selection
// cleared, so the player can pick again.
func (m MenuModel) WithError(msg string) MenuModel {
	m.errMsg = msg
	m.selected = nil
	return m
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
