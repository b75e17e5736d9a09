package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TrainingRun identifies one invocation of the trainer.
type TrainingRun struct {
	ID         string
	Seed       int64
	Population int
	CreatedAt  time.Time
}

// GenerationRecord is the stored summary of one generation.
type GenerationRecord struct {
	Generation int
	Best       float64
	Mean       float64
	BestScore  int
	Ticks      int
	Alive      int
}

// RunSummary aggregates a run's generations.
type RunSummary struct {
	Run         TrainingRun
	Generations int
	Best        float64
	BestScore   int
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// StartRun records a new training run. An empty ID is replaced with a new one.
func (s *Store) StartRun(run TrainingRun) (TrainingRun, error) {
	if run.ID == "" {
		run.ID = NewRunID()
	}
	if _, err := uuid.Parse(run.ID); err != nil {
		return run, fmt.Errorf("storage: invalid run id %q: %w", run.ID, err)
	}

	_, err := s.db.Exec(
		"INSERT INTO training_runs (run_id, seed, population) VALUES (?, ?, ?)",
		run.ID, run.Seed, run.Population,
	)
	if err != nil {
		return run, fmt.Errorf("storage: cannot start run: %w", err)
	}
	return run, nil
}

// SaveGeneration stores one generation of a run. Saving the same generation
// twice replaces the earlier record.
func (s *Store) SaveGeneration(runID string, g GenerationRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO generations (run_id, generation, best, mean, best_score, ticks, alive)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id, generation) DO UPDATE SET
		   best = excluded.best,
		   mean = excluded.mean,
		   best_score = excluded.best_score,
		   ticks = excluded.ticks,
		   alive = excluded.alive`,
		runID, g.Generation, g.Best, g.Mean, g.BestScore, g.Ticks, g.Alive,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save generation %d: %w", g.Generation, err)
	}
	return nil
}

// RunGenerations returns a run's generations in order.
func (s *Store) RunGenerations(runID string) ([]GenerationRecord, error) {
	rows, err := s.db.Query(
		`SELECT generation, best, mean, best_score, ticks, alive
		 FROM generations
		 WHERE run_id = ?
		 ORDER BY generation`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query generations: %w", err)
	}
	defer rows.Close()

	var out []GenerationRecord
	for rows.Next() {
		var g GenerationRecord
		if err := rows.Scan(&g.Generation, &g.Best, &g.Mean, &g.BestScore, &g.Ticks, &g.Alive); err != nil {
			return nil, fmt.Errorf("storage: cannot scan generation: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// RecentRuns returns the newest runs with their aggregated results.
func (s *Store) RecentRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT r.run_id, r.seed, r.population, r.created_at,
		        COUNT(g.id), COALESCE(MAX(g.best), 0), COALESCE(MAX(g.best_score), 0)
		 FROM training_runs r
		 LEFT JOIN generations g ON g.run_id = r.run_id
		 GROUP BY r.run_id
		 ORDER BY r.created_at DESC, r.rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var rs RunSummary
		var createdAt any
		if err := rows.Scan(&rs.Run.ID, &rs.Run.Seed, &rs.Run.Population, &createdAt,
			&rs.Generations, &rs.Best, &rs.BestScore); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		rs.Run.CreatedAt = parseTime(createdAt)
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
