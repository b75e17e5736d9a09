package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the given game, or pick one from a menu.

Games:
  snake       - Classic snake, steered with the keyboard
  snake_neat  - Watch a population of neural-network snakes evolve

Controls:
  Arrows/WASD  - Steer
  P/Space      - Pause
  R            - Restart (after game over)
  B/Esc        - Back to menu (paused or game over)
  Ctrl+S       - Save a screenshot (text and PNG)
  Q/Ctrl+C     - Quit

Menu:
  Tab          - Scoreboard and training runs

Difficulty options (classic snake):
  easy   - Start slow, speed up with score
  normal - Start at 30% speed-up
  hard   - Start at 70% speed-up
  fixed  - Constant speed

Examples:
  snake play
  snake play snake --difficulty hard
  snake play snake_neat --seed 42
  snake play snake --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available games.")
		os.Exit(1)
	}

	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if len(args) == 1 {
		if _, err := playGame(args[0], store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runMenuLoop(store, cfg)
}

// runMenuLoop shows the game picker until the user quits.
func runMenuLoop(store *storage.Store, cfg core.RuntimeConfig) {
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return
		case menuResult.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}
			continue
		case menuResult.GameID == "":
			return
		}

		// Each game from the menu gets a fresh seed unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := playGame(menuResult.GameID, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !back {
			return
		}
	}
}

// playGame runs one game. The classic game asks for a difficulty first.
// It reports whether the user wants to return to the menu.
func playGame(gameID string, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	if gameID == "snake" && flagDifficulty == "" {
		preset, err := tui.RunDifficultySelector(cfg)
		if err != nil {
			return false, err
		}
		if preset == nil {
			return true, nil
		}
		snake.SetDifficultyPreset(*preset)
		defer snake.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return false, err
	}
	return tui.Run(game, store, cfg)
}
