package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagShowRuns bool
	flagRunID    string
	flagAll      bool
	flagClear    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores or training runs",
	Long: `Display the top 10 high scores for a game, or the stored training runs.
Scores for snake_neat are the most food one snake ate in a training run.

Examples:
  snake scores snake
  snake scores snake_neat
  snake scores snake --all
  snake scores snake --clear
  snake scores --generations
  snake scores --generations --run <run-id>`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagShowRuns, "generations", false, "List training runs instead of scores")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "With --generations, show every generation of this run")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every recorded score, not just the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores for the game")
}

func runScores(_ *cobra.Command, args []string) {
	if !flagShowRuns && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: a game is required unless --generations is set")
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagShowRuns && flagRunID != "":
		err = printGenerations(store, flagRunID)
	case flagShowRuns:
		err = printRuns(store)
	case flagClear:
		if err = store.ClearScores(args[0]); err == nil {
			fmt.Printf("Cleared scores for %s.\n", args[0])
		}
	default:
		err = printScores(store, args[0])
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var scores []storage.ScoreEntry
	if flagAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printRuns(store *storage.Store) error {
	runs, err := store.RecentRuns(20)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println("Training runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No training runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snake train' to start one.")
		return nil
	}

	fmt.Printf("  %-36s  %-5s  %-5s  %-9s  %-4s  %s\n", "Run", "Pop", "Gens", "Best", "Food", "Date")
	fmt.Printf("  %-36s  %-5s  %-5s  %-9s  %-4s  %s\n", "---", "---", "----", "----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-5d  %-5d  %-9.1f  %-4d  %s\n",
			r.Run.ID, r.Run.Population, r.Generations, r.Best, r.BestScore,
			r.Run.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printGenerations(store *storage.Store, runID string) error {
	gens, err := store.RunGenerations(runID)
	if err != nil {
		return fmt.Errorf("retrieving generations: %w", err)
	}

	fmt.Printf("Run %s\n", runID)
	fmt.Println()

	if len(gens) == 0 {
		fmt.Println("No generations recorded for this run.")
		return nil
	}

	fmt.Printf("  %-5s  %-9s  %-9s  %-4s  %-6s  %s\n", "Gen", "Best", "Mean", "Food", "Ticks", "Alive")
	fmt.Printf("  %-5s  %-9s  %-9s  %-4s  %-6s  %s\n", "---", "----", "----", "----", "-----", "-----")
	for _, g := range gens {
		fmt.Printf("  %-5d  %-9.1f  %-9.2f  %-4d  %-6d  %d\n", g.Generation, g.Best, g.Mean, g.BestScore, g.Ticks, g.Alive)
	}
	return nil
}
