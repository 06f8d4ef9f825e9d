package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int           // Current score
	GameOver bool          // Whether the game has ended
	Paused   bool          // Whether the game is paused
	Interval time.Duration // How long the scheduler waits between ticks
}

// Cue is a discrete notification the game emits for side channels such as
// sound. The game never depends on whether anything consumes it.
type Cue int

const (
	CueNone Cue = iota
	CueAteFood
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueAteFood:
		return "ate-food"
	case CueGameOver:
		return "game-over"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each call.
// Contains the updated game state and any cues that occurred.
type StepResult struct {
	State GameState
	Cues  []Cue
}
