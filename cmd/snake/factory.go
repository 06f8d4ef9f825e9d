package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// loadConfig loads the snake config, applies the preset and validates the
// result.
func loadConfig(path string, preset config.DifficultyPreset) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(path)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newGameFactory returns a factory that builds each game from a freshly
// loaded config. Games log their events to logger when it is non-nil.
func newGameFactory(configPath string, logger *log.Logger) tui.GameFactory {
	return func(id string, preset config.DifficultyPreset) (registry.Game, error) {
		if !registry.Exists(id) {
			return nil, fmt.Errorf("unknown variant %q", id)
		}

		cfg, err := loadConfig(configPath, preset)
		if err != nil {
			return nil, err
		}

		game := snake.NewWithRules(snake.Variant(id), snake.RulesFromConfig(cfg))
		if logger != nil {
			game.SetNotifier(snake.LogNotifier{Logger: logger})
		}
		return game, nil
	}
}

// newLogger opens the log file when path is set. Without a file the logger
// discards everything, because the game owns the terminal.
func newLogger(path, prefix string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
