// snake is a terminal snake game with an optional SSH server.
//
// Usage:
//
//	snake list               - List available variants
//	snake play [variant]     - Play a variant (menu when omitted)
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom snake.yaml
//	--difficulty <name>   - easy, normal, hard or fixed
//	--seed <value>        - RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/gridsnake/internal/games/snake"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is the classic grid game: steer the snake to the food, grow,
and avoid the walls and your own tail. The game speeds up with every food.

Available commands:
  list     - Show all variants
  play     - Play a variant (or pick one from the menu)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake play
  snake play snake_strict --difficulty hard
  snake serve --ssh :2222
  snake config --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// .env values never override variables already set
		return config.LoadDotEnv(".env")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
