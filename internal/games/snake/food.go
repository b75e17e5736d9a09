package snake

import "math/rand"

// Spawner picks food cells. It owns its RNG so episodes are reproducible from a seed.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn chooses a cell uniformly at random from the board cells not in occupied.
// It returns false when every cell is occupied.
func (s *Spawner) Spawn(grid Grid, occupied []Cell) (Cell, bool) {
	taken := make(map[Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	free := make([]Cell, 0, grid.Area())
	for _, c := range grid.Cells() {
		if _, ok := taken[c]; !ok {
			free = append(free, c)
		}
	}

	if len(free) == 0 {
		return Cell{}, false
	}
	return free[s.rng.Intn(len(free))], true
}
