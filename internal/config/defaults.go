package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size:             15,
			Start:            Point{X: 7, Y: 7},
			InitialFood:      Point{X: 3, Y: 3},
			InitialDirection: Vector{DX: 0, DY: 1},
		},
		Speed: SpeedConfig{
			InitialMS: 300,
			StepMS:    20,
			MinMS:     80,
		},
		Scoring: ScoringConfig{
			PerFood: 10,
		},
		Food: FoodConfig{
			Policy:          FoodClassic,
			RespawnAttempts: 64,
		},
		Sound: true,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
