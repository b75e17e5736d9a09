package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Variant selects which rule set an episode follows.
type Variant int

const (
	// VariantClassic is the keyboard game: no lifespan, no fitness.
	VariantClassic Variant = iota
	// VariantNeat is the controller-driven game with a lifespan budget.
	VariantNeat
)

// Rules are the fixed parameters of one episode.
type Rules struct {
	Grid          Grid
	Start         Cell
	InitialLength int
	Direction     Direction
	Variant       Variant
	Lifespan      int     // Starting life (neat only)
	LifeBonus     int     // Life added per food (neat only)
	FoodReward    float64 // Fitness added per food
}

// ClassicRules builds the keyboard game rules from config.
func ClassicRules(cfg config.SnakeConfig) Rules {
	return Rules{
		Grid:          NewGrid(cfg.Board.Size),
		Start:         Cell{X: cfg.Classic.StartX, Y: cfg.Classic.StartY},
		InitialLength: cfg.Classic.InitialLength,
		Direction:     DirRight,
		Variant:       VariantClassic,
	}
}

// NeatRules builds the controller-driven rules from config.
func NeatRules(cfg config.SnakeConfig) Rules {
	return Rules{
		Grid:          NewGrid(cfg.Board.Size),
		Start:         Cell{X: cfg.Neat.StartX, Y: cfg.Neat.StartY},
		InitialLength: cfg.Neat.InitialLength,
		Direction:     DirRight,
		Variant:       VariantNeat,
		Lifespan:      cfg.Neat.Lifespan,
		LifeBonus:     cfg.Neat.LifeBonus,
		FoodReward:    float64(cfg.Neat.FoodReward),
	}
}

// Outcome is the result of a single step.
type Outcome int

const (
	Continue Outcome = iota
	Terminal
)

func (o Outcome) String() string {
	if o == Terminal {
		return "terminal"
	}
	return "continue"
}

// Cause records why an episode terminated.
type Cause int

const (
	CauseNone Cause = iota
	CauseSelf
	CauseWall
	CauseStarved
)

func (c Cause) String() string {
	switch c {
	case CauseSelf:
		return "self"
	case CauseWall:
		return "wall"
	case CauseStarved:
		return "starved"
	default:
		return "none"
	}
}

// Snake is one episode: a chain, its heading, its food item and its counters.
// Termination is state; once terminated Step never mutates the snake again.
type Snake struct {
	rules   Rules
	spawner *Spawner

	chain   *Chain
	dir     Direction
	food    Cell
	hasFood bool

	score   int
	fitness float64
	life    int
	tick    uint64

	terminated bool
	cause      Cause
}

// NewSnake starts an episode under rules, spawning food from rng.
func NewSnake(rules Rules, rng *rand.Rand) *Snake {
	s := &Snake{
		rules:   rules,
		spawner: NewSpawner(rng),
		chain:   NewChain(rules.Start, rules.InitialLength, rules.Direction),
		dir:     rules.Direction,
	}
	if rules.Variant == VariantNeat {
		s.life = rules.Lifespan
	}
	return s
}

// Step runs one turn: steer, spawn food if missing, move, spend life,
// eat, then test for termination.
func (s *Snake) Step(cmd Command) Outcome {
	if s.terminated {
		return Terminal
	}
	s.tick++

	if cmd != nil {
		s.dir = cmd.Steer(s.dir)
	}

	s.EnsureFood()

	s.chain.Advance(s.dir)

	if s.rules.Variant == VariantNeat {
		s.life--
	}

	if s.hasFood && s.chain.Head() == s.food {
		s.hasFood = false
		s.chain.Grow()
		s.score++
		s.fitness += s.rules.FoodReward
		if s.rules.Variant == VariantNeat {
			s.life += s.rules.LifeBonus
		}
	}

	switch {
	case OutOfBounds(s.rules.Grid, s.chain.Head()):
		s.terminate(CauseWall)
	case SelfCollision(s.chain):
		s.terminate(CauseSelf)
	case s.rules.Variant == VariantNeat && s.life <= 0:
		s.terminate(CauseStarved)
	}

	if s.terminated {
		return Terminal
	}
	return Continue
}

func (s *Snake) terminate(c Cause) {
	s.terminated = true
	s.cause = c
}

// EnsureFood spawns a food item if none exists. It is a no-op on a full board.
func (s *Snake) EnsureFood() {
	if s.hasFood {
		return
	}
	if c, ok := s.spawner.Spawn(s.rules.Grid, s.chain.cells); ok {
		s.food = c
		s.hasFood = true
	}
}

// PlaceFood puts the food item at c, replacing any existing one.
func (s *Snake) PlaceFood(c Cell) {
	s.food = c
	s.hasFood = true
}

// Alive reports whether the episode is still active.
func (s *Snake) Alive() bool {
	return !s.terminated
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.chain.Head()
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return s.chain.Len()
}

// Score returns the number of food items eaten.
func (s *Snake) Score() int {
	return s.score
}

// Fitness returns the accumulated reward.
func (s *Snake) Fitness() float64 {
	return s.fitness
}

// Food returns the food cell and whether one exists.
func (s *Snake) Food() (Cell, bool) {
	return s.food, s.hasFood
}

