package snake

import (
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
)

// Rules are the fixed parameters of one game.
type Rules struct {
	GridSize        int
	Start           Cell
	InitialFood     Cell
	InitialDir      Direction
	InitialSpeed    time.Duration
	SpeedStep       time.Duration
	MinSpeed        time.Duration
	ScorePerFood    int
	Policy          config.FoodPolicy
	RespawnAttempts int
}

// DefaultRules returns the classic 15×15 rules.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultSnakeConfig())
}

// RulesFromConfig converts a validated config into rules.
func RulesFromConfig(cfg config.SnakeConfig) Rules {
	return Rules{
		GridSize:        cfg.Grid.Size,
		Start:           Cell{X: cfg.Grid.Start.X, Y: cfg.Grid.Start.Y},
		InitialFood:     Cell{X: cfg.Grid.InitialFood.X, Y: cfg.Grid.InitialFood.Y},
		InitialDir:      Direction{DX: cfg.Grid.InitialDirection.DX, DY: cfg.Grid.InitialDirection.DY},
		InitialSpeed:    time.Duration(cfg.Speed.InitialMS) * time.Millisecond,
		SpeedStep:       time.Duration(cfg.Speed.StepMS) * time.Millisecond,
		MinSpeed:        time.Duration(cfg.Speed.MinMS) * time.Millisecond,
		ScorePerFood:    cfg.Scoring.PerFood,
		Policy:          cfg.Food.Policy,
		RespawnAttempts: cfg.Food.RespawnAttempts,
	}
}
