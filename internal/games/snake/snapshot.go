package snake

// Snapshot is a read-only copy of an episode's state for renderers, tests and storage.
type Snapshot struct {
	Tick    uint64
	Cells   []Cell // Head first
	Dir     Direction
	Food    Cell
	HasFood bool
	Score   int
	Fitness float64
	Life    int
	Alive   bool
	Cause   Cause
}

// Head returns the head cell, or the zero cell for an empty snapshot.
func (s Snapshot) Head() Cell {
	if len(s.Cells) == 0 {
		return Cell{}
	}
	return s.Cells[0]
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Cells)
}

// Snapshot returns the current episode state.
func (s *Snake) Snapshot() Snapshot {
	return Snapshot{
		Tick:    s.tick,
		Cells:   s.chain.Cells(),
		Dir:     s.dir,
		Food:    s.food,
		HasFood: s.hasFood,
		Score:   s.score,
		Fitness: s.fitness,
		Life:    s.life,
		Alive:   !s.terminated,
		Cause:   s.cause,
	}
}
