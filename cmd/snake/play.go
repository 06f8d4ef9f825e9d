package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play snake",
	Long: `Start playing. Without a variant a menu lets you pick one and a difficulty.

Controls:
  Arrows/WASD/HJKL - Steer
  Space/P          - Pause
  R                - Restart (after game over)
  B/Esc            - Back to menu (paused or game over)
  ?                - More keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - The configured speed curve
  hard   - Fast start, low speed floor
  fixed  - No speed-up

Examples:
  snake play
  snake play snake --difficulty easy
  snake play snake_strict --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Fail before entering the alt screen when the config is broken.
	cfg, err := loadConfig(flagConfig, preset)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(flagLogFile, "snake")
	if err != nil {
		return err
	}
	defer closer.Close()

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	opts := tui.ModelOptions{}
	if cfg.Sound {
		opts.Bell = os.Stderr
	}

	factory := newGameFactory(flagConfig, logger)

	if len(args) == 0 {
		return tui.RunSession(factory, rc, preset, opts)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'snake list' to see available variants)", gameID)
	}

	game, err := factory(gameID, preset)
	if err != nil {
		return err
	}

	logger.Info("game started", "variant", gameID, "difficulty", preset, "seed", flagSeed)
	if err := tui.Run(game, rc, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("game closed", "score", game.State().Score)
	return nil
}
