package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvGridSize      = "SNAKE_GRID_SIZE"
	EnvSpeedInitial  = "SNAKE_SPEED_INITIAL_MS"
	EnvSpeedStep     = "SNAKE_SPEED_STEP_MS"
	EnvSpeedMin      = "SNAKE_SPEED_MIN_MS"
	EnvFoodPolicy    = "SNAKE_FOOD_POLICY"
	EnvSound         = "SNAKE_SOUND"
	localConfigPath  = "configs/snake.yaml"
	userConfigSubdir = ".snake"
)

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
// Environment overrides are applied last.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg, err := loadSnakeFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadSnakeFile(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultSnakeConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		candidate := DefaultSnakeConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userConfigSubdir, "configs", filename)
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config values from SNAKE_* environment variables.
func ApplyEnv(cfg *SnakeConfig) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvGridSize, &cfg.Grid.Size},
		{EnvSpeedInitial, &cfg.Speed.InitialMS},
		{EnvSpeedStep, &cfg.Speed.StepMS},
		{EnvSpeedMin, &cfg.Speed.MinMS},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", e.key, err)
		}
		*e.dst = n
	}

	if v, ok := os.LookupEnv(EnvFoodPolicy); ok && v != "" {
		cfg.Food.Policy = FoodPolicy(v)
	}

	if v, ok := os.LookupEnv(EnvSound); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s must be a boolean: %w", EnvSound, err)
		}
		cfg.Sound = b
	}
	return nil
}

// Marshal renders the config as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
