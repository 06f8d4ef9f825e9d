package snake

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
)

// Phase is the lifecycle state of a game.
type Phase string

const (
	PhaseReady   Phase = "ready"
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
	PhaseOver    Phase = "over"
)

// State owns all mutable simulation data for one game. It is not safe for
// concurrent use: a single owner drives Tick and the input entry points.
type State struct {
	rules Rules
	rng   *rand.Rand
	sink  Notifier

	snake     []Cell // Head at index 0
	direction Direction
	food      Cell
	score     int
	speed     time.Duration
	paused    bool
	over      bool
	tick      uint64 // Committed moves since Reset
}

// NewState creates a state with the given rules and resets it.
// rng drives food respawn; sink may be nil.
func NewState(rules Rules, rng *rand.Rand, sink Notifier) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &State{
		rules: rules,
		rng:   rng,
		sink:  sink,
	}
	s.Reset()
	return s
}

// Reset restores the starting layout and clears score, speed and flags.
func (s *State) Reset() {
	s.snake = []Cell{s.rules.Start}
	s.direction = s.rules.InitialDir
	s.score = 0
	s.speed = s.rules.InitialSpeed
	s.paused = false
	s.over = false
	s.tick = 0

	if s.rules.InitialFood.InGrid(s.rules.GridSize) && s.rules.InitialFood != s.rules.Start {
		s.food = s.rules.InitialFood
	} else {
		s.food = s.placeFood(config.FoodStrict)
	}
}

// SetDirection replaces the heading used by the next tick. It is ignored
// when the game is over, when d is not a unit vector, or when d reverses the
// current heading. Calls between two ticks overwrite each other.
func (s *State) SetDirection(d Direction) bool {
	if s.over || !d.IsUnit() || d == s.direction.Reverse() {
		return false
	}
	s.direction = d
	return true
}

// TogglePause flips the paused flag unless the game is over.
func (s *State) TogglePause() {
	if s.over {
		return
	}
	s.paused = !s.paused
}

// Tick advances the snake by one cell. It does nothing while paused or over.
func (s *State) Tick() {
	if s.over || s.paused {
		return
	}

	newHead := s.snake[0].Add(s.direction)

	// Collisions are checked against the body before this move, tail included.
	if !newHead.InGrid(s.rules.GridSize) {
		s.gameOver(CauseBoundary)
		return
	}
	if slices.Contains(s.snake, newHead) {
		s.gameOver(CauseSelf)
		return
	}

	s.snake = slices.Insert(s.snake, 0, newHead)
	s.tick++

	if newHead == s.food {
		s.score += s.rules.ScorePerFood
		s.speed = max(s.rules.MinSpeed, s.speed-s.rules.SpeedStep)
		s.food = s.placeFood(s.rules.Policy)
		s.notify(AteFoodEvent{
			Tick:   s.tick,
			Cell:   newHead,
			Score:  s.score,
			Speed:  s.speed,
			Length: len(s.snake),
		})
		return
	}

	s.snake = s.snake[:len(s.snake)-1]
}

func (s *State) gameOver(cause Cause) {
	s.over = true
	s.notify(GameOverEvent{
		Tick:   s.tick,
		Cause:  cause,
		Score:  s.score,
		Length: len(s.snake),
	})
}

func (s *State) notify(e Event) {
	if s.sink != nil {
		s.sink.Notify(e)
	}
}

// Speed returns the current interval between ticks.
func (s *State) Speed() time.Duration {
	return s.speed
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// Over reports whether the game has ended.
func (s *State) Over() bool {
	return s.over
}

// Paused reports whether the game is paused.
func (s *State) Paused() bool {
	return s.paused
}

// Phase returns the lifecycle phase.
func (s *State) Phase() Phase {
	switch {
	case s.over:
		return PhaseOver
	case s.paused:
		return PhasePaused
	case s.tick == 0:
		return PhaseReady
	default:
		return PhaseRunning
	}
}

// Rules returns the rules the state was created with.
func (s *State) Rules() Rules {
	return s.rules
}
