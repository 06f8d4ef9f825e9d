package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// Variant selects the food respawn behavior of a registered game.
type Variant string

const (
	VariantClassic Variant = "snake"
	VariantStrict  Variant = "snake_strict"
)

const (
	hudHeight  = 2
	flashTicks = 3 // Ticks the "+N" HUD flash stays visible
)

// Game adapts State to the platform's registry.Game contract.
type Game struct {
	variant Variant
	rules   Rules
	rng     *rand.Rand
	state   *State
	sink    Notifier
	cues    []core.Cue

	screenW  int
	screenH  int
	tooSmall bool
	flash    int
}

// New creates a classic game with the default rules.
func New() *Game {
	return NewWithRules(VariantClassic, DefaultRules())
}

// NewStrict creates a game with the default rules whose food never spawns
// under the snake.
func NewStrict() *Game {
	return NewWithRules(VariantStrict, DefaultRules())
}

// NewWithRules creates a game of the given variant. The strict variant
// forces the strict food policy regardless of rules.Policy.
func NewWithRules(v Variant, rules Rules) *Game {
	if v == VariantStrict {
		rules.Policy = config.FoodStrict
	}
	return &Game{
		variant: v,
		rules:   rules,
	}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantStrict), func() registry.Game {
		return NewStrict()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantStrict {
		return "Snake (Strict Food)"
	}
	return "Snake"
}

// SetNotifier attaches an external event sink. Pass nil to detach.
func (g *Game) SetNotifier(n Notifier) {
	g.sink = n
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = NewState(g.rules, g.rng, NotifierFunc(g.onEvent))
	g.cues = g.cues[:0]
	g.flash = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the terminal size. While the board does not fit, ticks are
// not applied.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	boardW, boardH := g.boardSize()
	g.tooSmall = w < boardW || h < boardH+hudHeight
}

// boardSize returns the framed board size in screen cells. Each grid cell is
// two columns wide so the board looks square.
func (g *Game) boardSize() (int, int) {
	n := g.rules.GridSize
	return 2*n + 2, n + 2
}

func (g *Game) onEvent(e Event) {
	switch e.(type) {
	case AteFoodEvent:
		g.cues = append(g.cues, core.CueAteFood)
		g.flash = flashTicks + 1
	case GameOverEvent:
		g.cues = append(g.cues, core.CueGameOver)
	}
	if g.sink != nil {
		g.sink.Notify(e)
	}
}

// Step applies the frame's actions: restart, pause, steering, then the tick
// itself when the frame carries ActionTick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.cues = g.cues[:0]

	if input.Has(core.ActionRestart) && g.state.Over() {
		g.state.Reset()
		g.flash = 0
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.state.TogglePause()
	}

	for _, a := range input.Steering() {
		if d, ok := directionFor(a); ok {
			g.state.SetDirection(d)
		}
	}

	if input.Has(core.ActionTick) && !g.tooSmall {
		before := g.state.tick
		g.state.Tick()
		if g.state.tick != before && g.flash > 0 {
			g.flash--
		}
	}

	var cues []core.Cue
	if len(g.cues) > 0 {
		cues = append(cues, g.cues...)
	}
	return core.StepResult{State: g.State(), Cues: cues}
}

func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	}
	return Direction{}, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.Over(),
		Paused:   g.state.Paused() || g.tooSmall,
		Interval: g.state.Speed(),
	}
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.state.Snapshot()

	g.renderHUD(dst, snap)

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	boardW, boardH := g.boardSize()
	if !area.Fits(boardW, boardH) {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	board := area.Centered(boardW, boardH)
	g.renderBoard(dst, board, snap)

	switch {
	case snap.Over:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  -  R to restart", snap.Score))
	case snap.Paused:
		g.renderOverlay(dst, "Paused", "Space to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" %s — Score: %d  Speed: %dms  Length: %d",
		g.Title(), snap.Score, snap.Speed.Milliseconds(), len(snap.Snake))
	dst.DrawText(0, 0, hud)
	if g.flash > 0 {
		dst.DrawTextColored(len([]rune(hud))+2, 0, fmt.Sprintf("+%d", g.rules.ScorePerFood), core.ColorBrightYellow)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the frame, grid, snake and food.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect, snap Snapshot) {
	frameColor := core.ColorGray
	if snap.Over {
		frameColor = core.ColorRed
	}
	dst.DrawBoxColored(board, frameColor)

	ox, oy := board.X+1, board.Y+1
	for y := range snap.GridSize {
		for x := range snap.GridSize {
			dst.SetColored(ox+2*x, oy+y, '·', core.ColorGray)
		}
	}

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		seg := snap.Snake[i]
		if i == 0 {
			dst.SetColored(ox+2*seg.X, oy+seg.Y, '@', core.ColorBrightGreen)
		} else {
			dst.SetColored(ox+2*seg.X, oy+seg.Y, 'o', core.ColorGreen)
		}
	}

	// Food can sit under the body with the classic policy; keep it visible.
	if snap.Food != snap.Head() {
		dst.SetColored(ox+2*snap.Food.X, oy+snap.Food.Y, '*', core.ColorBrightRed)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().Centered(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
