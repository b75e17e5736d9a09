package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/img"
	"github.com/vovakirdan/tui-snake/internal/storage"
	"github.com/vovakirdan/tui-snake/internal/training"
)

var (
	flagGenerations int
	flagPopulation  int
	flagWatchConfig bool
	flagPNGDir      string
	flagNoStore     bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Evolve snake controllers without a UI",
	Long: `Run the neuro-evolution trainer headlessly. One line is logged per
generation and the statistics are stored in the scores database, where
'snake scores --generations' and the scoreboard can show them.

With --watch-config, edits to the training section of the config file
(mutation rate and sigma, elite, tournament, population) are applied
before the next generation.

Examples:
  snake train
  snake train --generations 200 --population 100 --seed 7
  snake train --config ./snake.yaml --watch-config
  snake train --png-dir ./boards`,
	Run: runTrain,
}

func init() {
	trainCmd.Flags().IntVar(&flagGenerations, "generations", 0, "Generations to run (0 = value from config)")
	trainCmd.Flags().IntVar(&flagPopulation, "population", 0, "Population size (0 = value from config)")
	trainCmd.Flags().BoolVar(&flagWatchConfig, "watch-config", false, "Reload training parameters when --config changes")
	trainCmd.Flags().StringVar(&flagPNGDir, "png-dir", "", "Write the best board of every generation as PNG to this directory")
	trainCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not record the run in the database")
}

func runTrain(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "train",
	})

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagPopulation > 0 {
		cfg.Training.Population = flagPopulation
	}
	generations := cfg.Training.Generations
	if flagGenerations > 0 {
		generations = flagGenerations
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []training.Option{training.WithLogger(logger)}
	if flagWatchConfig {
		if flagConfig == "" {
			fmt.Fprintln(os.Stderr, "Error: --watch-config needs --config")
			os.Exit(1)
		}
		updates, watchErr := config.Watch(ctx, flagConfig)
		if watchErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", watchErr)
			os.Exit(1)
		}
		opts = append(opts, training.WithUpdates(updates))
		logger.Info("watching config", "path", flagConfig)
	}

	trainer, err := training.New(cfg, seed, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rec, err := newRunRecorder(cfg, seed, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer rec.Close()

	geo := img.GeometryFrom(cfg.Board)
	logger.Info("training started", "run", rec.runID, "seed", seed, "population", cfg.Training.Population, "generations", generations)

	runErr := trainer.Run(ctx, generations, func(stats training.GenerationStats) error {
		if err := rec.Record(stats); err != nil {
			return err
		}
		if flagPNGDir == "" {
			return nil
		}
		best := trainer.Best()
		if best == nil {
			return nil
		}
		path := filepath.Join(flagPNGDir, fmt.Sprintf("gen_%04d.png", stats.Generation))
		return img.SavePNG(path, geo, []snake.Snapshot{best.Snake.Snapshot()})
	})

	if runErr != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
	if ctx.Err() != nil {
		logger.Warn("training interrupted", "generation", trainer.Generation())
	}
	rec.Finish()
}

// runRecorder writes generation stats for one training run.
// A nil store records nothing.
type runRecorder struct {
	store     *storage.Store
	runID     string
	bestScore int
	logger    *log.Logger
}

func newRunRecorder(cfg config.SnakeConfig, seed int64, logger *log.Logger) (*runRecorder, error) {
	rec := &runRecorder{runID: storage.NewRunID(), logger: logger}
	if flagNoStore {
		return rec, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, run will not be stored", "error", err)
		return rec, nil
	}
	run, err := store.StartRun(storage.TrainingRun{
		ID:         rec.runID,
		Seed:       seed,
		Population: cfg.Training.Population,
	})
	if err != nil {
		store.Close()
		return nil, err
	}
	rec.store = store
	rec.runID = run.ID
	return rec, nil
}

// Record stores one generation.
func (r *runRecorder) Record(stats training.GenerationStats) error {
	r.bestScore = max(r.bestScore, stats.BestScore)
	if r.store == nil {
		return nil
	}
	return r.store.SaveGeneration(r.runID, storage.GenerationRecord{
		Generation: stats.Generation,
		Best:       stats.Best,
		Mean:       stats.Mean,
		BestScore:  stats.BestScore,
		Ticks:      stats.Ticks,
		Alive:      stats.Alive,
	})
}

// Finish saves the run's best food count as a snake_neat score.
func (r *runRecorder) Finish() {
	r.logger.Info("training finished", "run", r.runID, "best_score", r.bestScore)
	if r.store == nil || r.bestScore == 0 {
		return
	}
	if _, err := r.store.SaveScore("snake_neat", r.bestScore); err != nil {
		r.logger.Warn("could not save score", "error", err)
	}
}

// Close releases the database.
func (r *runRecorder) Close() {
	if r.store != nil {
		r.store.Close()
	}
}
