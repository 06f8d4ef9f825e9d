// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid snake config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Food    FoodConfig    `yaml:"food"`
	Sound   bool          `yaml:"sound"` // Ring the terminal bell on food and game over
}

// Point is a grid coordinate in config files.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Vector is a movement direction in config files.
type Vector struct {
	DX int `yaml:"dx"`
	DY int `yaml:"dy"`
}

// GridConfig defines the board and the starting layout.
type GridConfig struct {
	Size             int    `yaml:"size"` // Side length N of the N×N grid
	Start            Point  `yaml:"start"`
	InitialFood      Point  `yaml:"initial_food"`
	InitialDirection Vector `yaml:"initial_direction"`
}

// SpeedConfig defines the tick interval curve, in milliseconds.
type SpeedConfig struct {
	InitialMS int `yaml:"initial_ms"`
	StepMS    int `yaml:"step_ms"` // Subtracted per food eaten
	MinMS     int `yaml:"min_ms"`  // Floor
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	PerFood int `yaml:"per_food"`
}

// FoodPolicy selects how food respawns after being eaten.
type FoodPolicy string

const (
	// FoodClassic draws uniformly over the whole grid; food may land under the snake.
	FoodClassic FoodPolicy = "classic"
	// FoodStrict never places food on a cell occupied by the snake.
	FoodStrict FoodPolicy = "strict"
)

// FoodConfig defines food respawn behavior.
type FoodConfig struct {
	Policy          FoodPolicy `yaml:"policy"`
	RespawnAttempts int        `yaml:"respawn_attempts"` // Strict policy: random draws before scanning
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	n := c.Grid.Size
	if n < 3 {
		return fmt.Errorf("%w: grid size %d is below 3", ErrInvalidConfig, n)
	}
	if !onGrid(c.Grid.Start, n) {
		return fmt.Errorf("%w: start (%d,%d) is off the %dx%d grid", ErrInvalidConfig, c.Grid.Start.X, c.Grid.Start.Y, n, n)
	}
	if !onGrid(c.Grid.InitialFood, n) {
		return fmt.Errorf("%w: initial food (%d,%d) is off the %dx%d grid", ErrInvalidConfig, c.Grid.InitialFood.X, c.Grid.InitialFood.Y, n, n)
	}
	d := c.Grid.InitialDirection
	if abs(d.DX)+abs(d.DY) != 1 {
		return fmt.Errorf("%w: initial direction (%d,%d) is not a unit vector", ErrInvalidConfig, d.DX, d.DY)
	}
	if c.Speed.InitialMS <= 0 || c.Speed.MinMS <= 0 {
		return fmt.Errorf("%w: speeds must be positive (initial %d, min %d)", ErrInvalidConfig, c.Speed.InitialMS, c.Speed.MinMS)
	}
	if c.Speed.MinMS > c.Speed.InitialMS {
		return fmt.Errorf("%w: min speed %dms exceeds initial %dms", ErrInvalidConfig, c.Speed.MinMS, c.Speed.InitialMS)
	}
	if c.Speed.StepMS < 0 {
		return fmt.Errorf("%w: speed step %d is negative", ErrInvalidConfig, c.Speed.StepMS)
	}
	if c.Scoring.PerFood < 0 {
		return fmt.Errorf("%w: points per food %d is negative", ErrInvalidConfig, c.Scoring.PerFood)
	}
	switch c.Food.Policy {
	case FoodClassic, FoodStrict:
	default:
		return fmt.Errorf("%w: unknown food policy %q", ErrInvalidConfig, c.Food.Policy)
	}
	if c.Food.RespawnAttempts < 0 {
		return fmt.Errorf("%w: respawn attempts %d is negative", ErrInvalidConfig, c.Food.RespawnAttempts)
	}
	return nil
}

func onGrid(p Point, n int) bool {
	return p.X >= 0 && p.X < n && p.Y >= 0 && p.Y < n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
