// snake is a terminal snake game with a neuro-evolution mode.
//
// Usage:
//
//	snake list              - List available games
//	snake play [game]       - Play a game (menu when no game is given)
//	snake train             - Evolve snake controllers headlessly
//	snake scores [game]     - Show high scores or training runs
//	snake serve             - Start SSH server for remote play
//	snake export <file.png> - Render a seeded episode to PNG
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--db <path>       - Set database path (default: ~/.snake/scores.db)
//	--config <path>   - Custom snake.yaml
//
// SNAKE_DB, SNAKE_SEED and SNAKE_CONFIG (also read from a .env file) override
// the flag defaults.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/neatsnake"
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - classic and neuro-evolved snake in your terminal",
	Long: `Snake is a terminal snake game. Play the classic game with the keyboard,
or watch a population of neural-network controlled snakes evolve.

Available commands:
  list     - Show all available games
  play     - Play a game (menu when no game is given)
  train    - Evolve controllers without a UI
  scores   - View high scores and training runs
  serve    - Start SSH server for remote play
  export   - Render a seeded episode to PNG

Examples:
  snake play
  snake play snake --difficulty hard
  snake play snake_neat
  snake train --generations 50 --png-dir ./boards
  snake serve --ssh :2222`,
}

func init() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.Or(env.DBPath, "~/.snake/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom snake config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}
