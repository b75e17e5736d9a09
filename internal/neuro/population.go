package neuro

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// Params control one evolution step.
type Params struct {
	Size          int     // Genomes per generation
	Elite         int     // Best genomes copied unchanged
	Tournament    int     // Candidates per tournament
	MutationRate  float64 // Per-gene mutation probability
	MutationSigma float64 // Std dev of gaussian noise
}

// Validate checks parameter ranges.
func (p Params) Validate() error {
	var errs []error
	if p.Size < 1 {
		errs = append(errs, fmt.Errorf("size must be >= 1, got %d", p.Size))
	}
	if p.Elite < 0 || p.Elite > p.Size {
		errs = append(errs, fmt.Errorf("elite must be in [0, size], got %d", p.Elite))
	}
	if p.Tournament < 1 {
		errs = append(errs, fmt.Errorf("tournament must be >= 1, got %d", p.Tournament))
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		errs = append(errs, fmt.Errorf("mutation rate must be in [0, 1], got %v", p.MutationRate))
	}
	if p.MutationSigma < 0 {
		errs = append(errs, fmt.Errorf("mutation sigma must be >= 0, got %v", p.MutationSigma))
	}
	if len(errs) > 0 {
		return fmt.Errorf("neuro: invalid params: %w", errors.Join(errs...))
	}
	return nil
}

// Member is a genome and the fitness it earned in the last evaluation.
type Member struct {
	Genome  Genome
	Fitness float64
}

// Population is a fixed-shape set of genomes evolved by elitism,
// tournament selection and gaussian mutation.
type Population struct {
	shape   Shape
	params  Params
	rng     *rand.Rand
	members []Member
}

// NewPopulation creates params.Size random genomes.
func NewPopulation(shape Shape, params Params, rng *rand.Rand) (*Population, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	p := &Population{
		shape:   shape,
		params:  params,
		rng:     rng,
		members: make([]Member, params.Size),
	}
	for i := range p.members {
		p.members[i].Genome = RandomGenome(shape, rng)
	}
	return p, nil
}

// Params returns the current evolution parameters.
func (p *Population) Params() Params {
	return p.params
}

// SetParams replaces the evolution parameters. A size change takes effect
// on the next Evolve.
func (p *Population) SetParams(params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	p.params = params
	return nil
}

// Len returns the number of members.
func (p *Population) Len() int {
	return len(p.members)
}

// Members returns the current members. The slice is shared.
func (p *Population) Members() []Member {
	return p.members
}

// Network builds the network for member i.
func (p *Population) Network(i int) (*Network, error) {
	return NewNetwork(p.shape, p.members[i].Genome)
}

// SetFitness records member i's evaluation result.
func (p *Population) SetFitness(i int, fitness float64) {
	p.members[i].Fitness = fitness
}

// Best returns the member with the highest fitness.
func (p *Population) Best() Member {
	best := p.members[0]
	for _, m := range p.members[1:] {
		if m.Fitness > best.Fitness {
			best = m
		}
	}
	return best
}

// Evolve replaces the members with the next generation and clears fitness.
func (p *Population) Evolve() {
	ranked := make([]Member, len(p.members))
	copy(ranked, p.members)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness > ranked[j].Fitness
	})

	next := make([]Member, 0, p.params.Size)
	for i := 0; i < p.params.Elite && i < len(ranked); i++ {
		next = append(next, Member{Genome: ranked[i].Genome.Clone()})
	}
	for len(next) < p.params.Size {
		child := p.tournament(ranked).Genome.Clone()
		p.mutate(child)
		next = append(next, Member{Genome: child})
	}
	p.members = next
}

// tournament samples Tournament members with replacement and returns the fittest.
func (p *Population) tournament(pool []Member) Member {
	size := min(p.params.Tournament, len(pool))
	winner := pool[p.rng.Intn(len(pool))]
	for i := 1; i < size; i++ {
		c := pool[p.rng.Intn(len(pool))]
		if c.Fitness > winner.Fitness {
			winner = c
		}
	}
	return winner
}

func (p *Population) mutate(g Genome) {
	for i := range g {
		if p.rng.Float64() < p.params.MutationRate {
			g[i] += p.rng.NormFloat64() * p.params.MutationSigma
		}
	}
}
