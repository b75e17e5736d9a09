// Package training runs neuro-evolution over populations of snake episodes.
// The trainer owns the generation counter; the simulation core never sees it.
package training

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/neuro"
)

// GenerationStats summarizes one finished generation.
type GenerationStats struct {
	Generation int
	Best       float64 // Highest fitness
	Mean       float64 // Mean fitness
	BestScore  int     // Most food eaten by one snake
	Ticks      int     // Ticks the generation ran
	Alive      int     // Snakes still alive when the tick cap hit
}

func (s GenerationStats) String() string {
	return fmt.Sprintf("gen %d: best=%.1f mean=%.2f score=%d ticks=%d", s.Generation, s.Best, s.Mean, s.BestScore, s.Ticks)
}

// Agent is one population member playing its episode.
type Agent struct {
	Index int // Position in the population
	Snake *snake.Snake
	ctrl  snake.Controller
}

// Trainer evaluates every genome on its own episode, one synchronous tick at a time.
type Trainer struct {
	cfg    config.SnakeConfig
	rules  snake.Rules
	pop    *neuro.Population
	rng    *rand.Rand
	logger *log.Logger

	generation int
	ticks      int
	agents     []*Agent // Every agent of the current generation
	live       []*Agent // Agents not yet terminated

	updates <-chan config.Update
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(t *Trainer) {
		t.logger = l
	}
}

// WithUpdates makes the trainer apply config reloads between generations.
func WithUpdates(ch <-chan config.Update) Option {
	return func(t *Trainer) {
		t.updates = ch
	}
}

// New creates a trainer with a random initial population.
func New(cfg config.SnakeConfig, seed int64, opts ...Option) (*Trainer, error) {
	t := &Trainer{
		cfg:    cfg,
		rules:  snake.NeatRules(cfg),
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}

	pop, err := neuro.NewPopulation(neuro.SnakeShape(cfg.Training.Hidden), paramsFor(cfg.Training), t.rng)
	if err != nil {
		return nil, fmt.Errorf("training: %w", err)
	}
	t.pop = pop
	return t, nil
}

func paramsFor(tc config.TrainingConfig) neuro.Params {
	return neuro.Params{
		Size:          tc.Population,
		Elite:         tc.Elite,
		Tournament:    tc.Tournament,
		MutationRate:  tc.MutationRate,
		MutationSigma: tc.MutationSigma,
	}
}

// Generation returns the number of the current (or last started) generation.
func (t *Trainer) Generation() int {
	return t.generation
}

// Ticks returns the ticks run in the current generation.
func (t *Trainer) Ticks() int {
	return t.ticks
}

// Live returns the agents still playing, in population order.
func (t *Trainer) Live() []*Agent {
	return t.live
}

// Best returns the fittest agent of the current generation, or nil before the first one.
// It stays valid after FinishGeneration until the next StartGeneration.
func (t *Trainer) Best() *Agent {
	var best *Agent
	for _, a := range t.agents {
		if best == nil || a.Snake.Fitness() > best.Snake.Fitness() {
			best = a
		}
	}
	return best
}

// StartGeneration builds one episode per genome at the start cell.
func (t *Trainer) StartGeneration() error {
	t.generation++
	t.ticks = 0
	t.agents = t.agents[:0]

	for i := 0; i < t.pop.Len(); i++ {
		net, err := t.pop.Network(i)
		if err != nil {
			return fmt.Errorf("training: genome %d: %w", i, err)
		}
		s := snake.NewSnake(t.rules, rand.New(rand.NewSource(t.rng.Int63())))
		t.agents = append(t.agents, &Agent{Index: i, Snake: s, ctrl: net})
	}
	t.live = append(t.live[:0], t.agents...)
	return nil
}

// Tick advances every live snake by one step and returns how many remain.
// Terminated agents are collected during the pass and removed after it.
func (t *Trainer) Tick() int {
	if len(t.live) == 0 {
		return 0
	}
	t.ticks++

	var dead []int
	for i, a := range t.live {
		a.Snake.EnsureFood()
		cmd := a.ctrl.Decide(a.Snake.Features())
		if a.Snake.Step(cmd) == snake.Terminal {
			dead = append(dead, i)
		}
	}
	t.live = removeIndices(t.live, dead)
	return len(t.live)
}

// removeIndices drops the given ascending positions, keeping order.
func removeIndices(agents []*Agent, idx []int) []*Agent {
	if len(idx) == 0 {
		return agents
	}
	out := agents[:0]
	next := 0
	for i, a := range agents {
		if next < len(idx) && idx[next] == i {
			next++
			continue
		}
		out = append(out, a)
	}
	for i := len(out); i < len(agents); i++ {
		agents[i] = nil
	}
	return out
}

// Done reports whether the generation has finished.
func (t *Trainer) Done() bool {
	return len(t.live) == 0 || (t.cfg.Training.MaxTicks > 0 && t.ticks >= t.cfg.Training.MaxTicks)
}

// FinishGeneration scores every genome, evolves the population and returns the stats.
func (t *Trainer) FinishGeneration() GenerationStats {
	stats := GenerationStats{
		Generation: t.generation,
		Ticks:      t.ticks,
		Alive:      len(t.live),
	}

	var sum float64
	for i, a := range t.agents {
		f := a.Snake.Fitness()
		t.pop.SetFitness(a.Index, f)
		sum += f
		if i == 0 || f > stats.Best {
			stats.Best = f
		}
		stats.BestScore = max(stats.BestScore, a.Snake.Score())
	}
	if len(t.agents) > 0 {
		stats.Mean = sum / float64(len(t.agents))
	}

	t.pop.Evolve()
	t.live = t.live[:0]

	t.logger.Info("generation finished",
		"gen", stats.Generation,
		"best", stats.Best,
		"mean", fmt.Sprintf("%.2f", stats.Mean),
		"score", stats.BestScore,
		"ticks", stats.Ticks,
	)
	return stats
}

// RunGeneration plays one full generation.
func (t *Trainer) RunGeneration(ctx context.Context) (GenerationStats, error) {
	t.applyPending()
	if err := t.StartGeneration(); err != nil {
		return GenerationStats{}, err
	}
	for !t.Done() {
		if err := ctx.Err(); err != nil {
			return GenerationStats{}, err
		}
		t.Tick()
	}
	return t.FinishGeneration(), nil
}

// Run plays n generations, calling fn after each. A non-nil error from fn stops the run.
func (t *Trainer) Run(ctx context.Context, n int, fn func(GenerationStats) error) error {
	for i := 0; i < n; i++ {
		stats, err := t.RunGeneration(ctx)
		if err != nil {
			return err
		}
		if fn != nil {
			if err := fn(stats); err != nil {
				return err
			}
		}
	}
	return nil
}

// ApplyTraining replaces the evolution parameters. Population size changes
// take effect after the next evolution step.
func (t *Trainer) ApplyTraining(tc config.TrainingConfig) error {
	if err := t.pop.SetParams(paramsFor(tc)); err != nil {
		return fmt.Errorf("training: %w", err)
	}
	if tc.Hidden != t.cfg.Training.Hidden {
		t.logger.Warn("hidden layer size cannot change during a run", "current", t.cfg.Training.Hidden, "requested", tc.Hidden)
		tc.Hidden = t.cfg.Training.Hidden
	}
	t.cfg.Training = tc
	return nil
}

// applyPending drains config updates that arrived since the last generation.
func (t *Trainer) applyPending() {
	if t.updates == nil {
		return
	}
	for {
		select {
		case u, ok := <-t.updates:
			if !ok {
				t.updates = nil
				return
			}
			if u.Err != nil {
				t.logger.Warn("config reload failed", "error", u.Err)
				continue
			}
			if err := t.ApplyTraining(u.Config.Training); err != nil {
				t.logger.Warn("config reload rejected", "error", err)
				continue
			}
			t.logger.Info("training config reloaded",
				"mutation_rate", u.Config.Training.MutationRate,
				"mutation_sigma", u.Config.Training.MutationSigma,
				"elite", u.Config.Training.Elite,
			)
		default:
			return
		}
	}
}
