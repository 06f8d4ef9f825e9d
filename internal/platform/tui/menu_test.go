package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return nm
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(testConfig(), "")
	view := m.View()
	for _, title := range []string{"Snake", "Snake (Strict Food)"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu should list %q", title)
		}
	}
	if m.Preset() != config.DifficultyNormal {
		t.Errorf("default preset = %q, expected normal", m.Preset())
	}
}

func TestMenuPresetCycling(t *testing.T) {
	tests := []struct {
		name  string
		start config.DifficultyPreset
		key   tea.KeyMsg
		want  config.DifficultyPreset
	}{
		{"right from normal", config.DifficultyNormal, tea.KeyMsg{Type: tea.KeyRight}, config.DifficultyHard},
		{"left from normal", config.DifficultyNormal, tea.KeyMsg{Type: tea.KeyLeft}, config.DifficultyEasy},
		{"right wraps", config.DifficultyFixed, tea.KeyMsg{Type: tea.KeyRight}, config.DifficultyEasy},
		{"left wraps", config.DifficultyEasy, tea.KeyMsg{Type: tea.KeyLeft}, config.DifficultyFixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := menuUpdate(t, NewMenuModel(testConfig(), tt.start), tt.key)
			if got := m.Preset(); got != tt.want {
				t.Errorf("Preset() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testConfig(), config.DifficultyHard)
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	want := registry.List()[1].ID
	if sel.GameID != want || sel.Preset != config.DifficultyHard {
		t.Errorf("Selected() = %+v, expected %s/hard", *sel, want)
	}
}

func TestMenuQuit(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(testConfig(), ""), runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit the menu")
	}
}

func testFactory(id string, preset config.DifficultyPreset) (registry.Game, error) {
	rules := snake.DefaultRules()
	if preset == config.DifficultyFixed {
		rules.SpeedStep = 0
	}
	return snake.NewWithRules(snake.Variant(id), rules), nil
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return nm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(testFactory, testConfig(), config.DifficultyFixed, ModelOptions{})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("enter should start a game")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("game view should show the HUD")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InGame() {
		t.Fatal("esc while paused should return to the menu")
	}
	if m.menu.Preset() != config.DifficultyFixed {
		t.Errorf("menu preset = %q, expected fixed to be kept", m.menu.Preset())
	}
}

func TestSessionFactoryError(t *testing.T) {
	factory := func(string, config.DifficultyPreset) (registry.Game, error) {
		return nil, errors.New("no such variant")
	}
	m := NewSessionModel(factory, testConfig(), "", ModelOptions{})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.InGame() {
		t.Error("failed factory should keep the menu")
	}
	if !strings.Contains(m.View(), "no such variant") {
		t.Error("menu should show the factory error")
	}
	if m.menu.Selected() != nil {
		t.Error("selection should be cleared after an error")
	}
}
