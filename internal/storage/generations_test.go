package storage

import (
	"testing"

	"github.com/google/uuid"
)

func TestStartRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	run, err := store.StartRun(TrainingRun{Seed: 7, Population: 50})
	if err != nil {
		t.Fatalf("StartRun() failed: %v", err)
	}
	if _, err := uuid.Parse(run.ID); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", run.ID, err)
	}

	if _, err := store.StartRun(TrainingRun{ID: "not-a-uuid"}); err == nil {
		t.Error("expected error for malformed run ID")
	}
	if _, err := store.StartRun(run); err == nil {
		t.Error("expected error for duplicate run ID")
	}
}

func TestSaveAndListGenerations(t *testing.T) {
	store := openTestStore(t)

	run, err := store.StartRun(TrainingRun{ID: NewRunID(), Seed: 1, Population: 10})
	if err != nil {
		t.Fatalf("StartRun() failed: %v", err)
	}

	records := []GenerationRecord{
		{Generation: 2, Best: 15, Mean: 3.5, BestScore: 3, Ticks: 410},
		{Generation: 1, Best: 5, Mean: 0.5, BestScore: 1, Ticks: 230},
	}
	for _, r := range records {
		if err := store.SaveGeneration(run.ID, r); err != nil {
			t.Fatalf("SaveGeneration() failed: %v", err)
		}
	}

	// Re-saving replaces the record.
	if err := store.SaveGeneration(run.ID, GenerationRecord{Generation: 2, Best: 20, Mean: 4, BestScore: 4, Ticks: 500, Alive: 1}); err != nil {
		t.Fatalf("SaveGeneration() overwrite failed: %v", err)
	}

	got, err := store.RunGenerations(run.ID)
	if err != nil {
		t.Fatalf("RunGenerations() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 generations, got %d", len(got))
	}
	if got[0].Generation != 1 || got[1].Generation != 2 {
		t.Errorf("Generations not ordered: %v", got)
	}
	if got[1].Best != 20 || got[1].Alive != 1 {
		t.Errorf("Overwrite not applied: %+v", got[1])
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.StartRun(TrainingRun{Seed: 1, Population: 10})
	second, _ := store.StartRun(TrainingRun{Seed: 2, Population: 20})

	store.SaveGeneration(first.ID, GenerationRecord{Generation: 1, Best: 10, BestScore: 2})
	store.SaveGeneration(first.ID, GenerationRecord{Generation: 2, Best: 25, BestScore: 5})

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Run.ID != second.ID {
		t.Errorf("Newest run should come first, got %s", runs[0].Run.ID)
	}
	if runs[0].Generations != 0 {
		t.Errorf("Empty run should have 0 generations, got %d", runs[0].Generations)
	}
	if runs[1].Generations != 2 || runs[1].Best != 25 || runs[1].BestScore != 5 {
		t.Errorf("Unexpected summary: %+v", runs[1])
	}

	limited, _ := store.RecentRuns(1)
	if len(limited) != 1 {
		t.Errorf("Expected 1 run with limit, got %d", len(limited))
	}
}
