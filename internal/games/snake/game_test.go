package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithRules(VariantClassic, DefaultRules())
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameIDs(t *testing.T) {
	if id := New().ID(); id != "snake" {
		t.Errorf("classic ID = %q, expected snake", id)
	}
	if id := NewStrict().ID(); id != "snake_strict" {
		t.Errorf("strict ID = %q, expected snake_strict", id)
	}
}

func TestTitles(t *testing.T) {
	if title := New().Title(); title != "Snake" {
		t.Errorf("classic title = %q", title)
	}
	if title := NewStrict().Title(); title != "Snake (Strict Food)" {
		t.Errorf("strict title = %q", title)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"snake", "snake_strict"} {
		if !registry.Exists(id) {
			t.Errorf("%s should be registered", id)
		}
	}
}

func TestStrictVariantForcesPolicy(t *testing.T) {
	rules := DefaultRules()
	rules.Policy = config.FoodClassic
	g := NewWithRules(VariantStrict, rules)
	if g.rules.Policy != config.FoodStrict {
		t.Errorf("policy = %q, expected strict", g.rules.Policy)
	}
}

func TestNewWithRulesGridSize(t *testing.T) {
	rules := DefaultRules()
	rules.GridSize = 10
	rules.Start = Cell{X: 5, Y: 5}

	g := NewWithRules(VariantClassic, rules)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	if g.Snapshot().GridSize != 10 {
		t.Errorf("grid size = %d, expected 10", g.Snapshot().GridSize)
	}
}

func TestStepWithoutTickDoesNotMove(t *testing.T) {
	g := newTestGame(t)
	head := g.Snapshot().Head()

	g.Step(frame(core.ActionLeft))
	if g.Snapshot().Head() != head {
		t.Error("key frames must not advance the simulation")
	}
	if g.Snapshot().Direction != Left {
		t.Errorf("direction = %v, expected left", g.Snapshot().Direction)
	}

	g.Step(frame(core.ActionTick))
	if got := g.Snapshot().Head(); got != (Cell{X: 6, Y: 7}) {
		t.Errorf("head = %v, expected (6,7)", got)
	}
}

func TestStepRejectsReversal(t *testing.T) {
	g := newTestGame(t)

	// Initial heading is down.
	g.Step(frame(core.ActionUp))
	if g.Snapshot().Direction != Down {
		t.Errorf("direction = %v, reversal should be ignored", g.Snapshot().Direction)
	}
}

func TestStepPauseBlocksTick(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	head := g.Snapshot().Head()
	g.Step(frame(core.ActionTick))
	if g.Snapshot().Head() != head {
		t.Error("paused game must not move")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestStepCues(t *testing.T) {
	g := newTestGame(t)
	g.state.food = Cell{X: 7, Y: 8}

	res := g.Step(frame(core.ActionTick))
	if len(res.Cues) != 1 || res.Cues[0] != core.CueAteFood {
		t.Errorf("cues = %v, expected [ate-food]", res.Cues)
	}
	if res.State.Score != 10 {
		t.Errorf("score = %d, expected 10", res.State.Score)
	}

	res = g.Step(frame())
	if len(res.Cues) != 0 {
		t.Errorf("cues should not repeat, got %v", res.Cues)
	}

	g.state.snake = []Cell{{X: 7, Y: 14}}
	g.state.direction = Down
	res = g.Step(frame(core.ActionTick))
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if len(res.Cues) != 1 || res.Cues[0] != core.CueGameOver {
		t.Errorf("cues = %v, expected [game-over]", res.Cues)
	}
}

func TestStepReportsInterval(t *testing.T) {
	g := newTestGame(t)
	if got := g.State().Interval.Milliseconds(); got != 300 {
		t.Errorf("interval = %dms, expected 300", got)
	}

	g.state.food = Cell{X: 7, Y: 8}
	res := g.Step(frame(core.ActionTick))
	if got := res.State.Interval.Milliseconds(); got != 280 {
		t.Errorf("interval = %dms, expected 280", got)
	}
}

func TestRestartOnlyWhenOver(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionLeft))
	g.Step(frame(core.ActionTick))

	g.Step(frame(core.ActionRestart))
	if g.Snapshot().Tick != 1 {
		t.Error("restart must be ignored while playing")
	}

	g.state.snake = []Cell{{X: 0, Y: 7}}
	g.Step(frame(core.ActionTick))
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	res := g.Step(frame(core.ActionRestart))
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("restart should reset, got %+v", res.State)
	}
	if g.Snapshot().Head() != (Cell{X: 7, Y: 7}) {
		t.Errorf("head = %v, expected start (7,7)", g.Snapshot().Head())
	}
}

func TestNotifierReceivesEvents(t *testing.T) {
	g := newTestGame(t)
	rec := &recorder{}
	g.SetNotifier(rec)
	g.state.food = Cell{X: 7, Y: 8}

	g.Step(frame(core.ActionTick))
	if len(rec.events) != 1 {
		t.Fatalf("notifier got %d events, expected 1", len(rec.events))
	}
	if _, ok := rec.events[0].(AteFoodEvent); !ok {
		t.Errorf("event = %T, expected AteFoodEvent", rec.events[0])
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := NewWithRules(VariantClassic, DefaultRules())
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 10, ScreenH: 5})

	if !g.tooSmall {
		t.Fatal("game should detect the window is too small")
	}
	if !g.State().Paused {
		t.Error("a game that does not fit should report paused")
	}

	head := g.Snapshot().Head()
	g.Step(frame(core.ActionTick))
	if g.Snapshot().Head() != head {
		t.Error("ticks must be ignored while the board does not fit")
	}

	screen := core.NewScreen(30, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small overlay, got:\n%s", screen.String())
	}

	g.Resize(80, 24)
	if g.tooSmall {
		t.Error("Resize to a large window should clear tooSmall")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()

	if !strings.Contains(content, "Snake") || !strings.Contains(content, "Score: 0") {
		t.Errorf("HUD missing from render:\n%s", content)
	}

	// 15x15 board, two columns per cell, centered below the HUD.
	board := core.NewRect(0, hudHeight, 80, 22).Centered(32, 17)
	head := screen.GetCell(board.X+1+2*7, board.Y+1+7)
	if head.Rune != '@' || head.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected green '@'", head)
	}
	food := screen.GetCell(board.X+1+2*3, board.Y+1+3)
	if food.Rune != '*' {
		t.Errorf("food cell = %+v, expected '*'", food)
	}
	if screen.Get(board.X, board.Y) != '┌' {
		t.Error("board frame missing")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("paused overlay missing")
	}

	g.Step(frame(core.ActionPause))
	g.state.snake = []Cell{{X: 7, Y: 14}}
	g.Step(frame(core.ActionTick))
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("game over overlay missing")
	}
}

func TestRenderFlash(t *testing.T) {
	g := newTestGame(t)
	g.state.food = Cell{X: 7, Y: 8}
	g.Step(frame(core.ActionTick))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "+10") {
		t.Errorf("HUD should flash +10, got %q", screen.Row(0))
	}

	for range flashTicks {
		g.state.food = Cell{X: 0, Y: 0}
		g.Step(frame(core.ActionTick))
	}
	g.Render(screen)
	if strings.Contains(screen.Row(0), "+10") {
		t.Errorf("flash should expire, got %q", screen.Row(0))
	}
}
