// Package neuro provides the fixed-topology feed-forward controller and the
// generational evolver that trains it.
package neuro

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// DecisionThreshold is the output activation above which a turn fires.
const DecisionThreshold = 0.5

// Shape is the layer layout of a network.
type Shape struct {
	Inputs  int
	Hidden  int
	Outputs int
}

// SnakeShape is the controller layout: six features in, left and right out.
func SnakeShape(hidden int) Shape {
	return Shape{Inputs: len(snake.Features{}), Hidden: hidden, Outputs: 2}
}

// GenomeLen is the number of weights and biases in a network of this shape.
func (s Shape) GenomeLen() int {
	return s.Hidden*s.Inputs + s.Hidden + s.Outputs*s.Hidden + s.Outputs
}

// Genome is a flat weight vector: input→hidden weights, hidden biases,
// hidden→output weights, output biases.
type Genome []float64

// RandomGenome draws every gene from a standard normal distribution.
func RandomGenome(shape Shape, rng *rand.Rand) Genome {
	g := make(Genome, shape.GenomeLen())
	for i := range g {
		g[i] = rng.NormFloat64()
	}
	return g
}

// Clone returns an independent copy.
func (g Genome) Clone() Genome {
	out := make(Genome, len(g))
	copy(out, g)
	return out
}

// Network is a two-layer perceptron with tanh hidden units and sigmoid outputs.
type Network struct {
	shape Shape

	w1 *mat.Dense
	b1 *mat.VecDense
	w2 *mat.Dense
	b2 *mat.VecDense

	in  *mat.VecDense
	hid *mat.VecDense
	out *mat.VecDense
}

// NewNetwork builds a network from a genome. The genome is copied.
func NewNetwork(shape Shape, g Genome) (*Network, error) {
	if shape.Inputs < 1 || shape.Hidden < 1 || shape.Outputs < 1 {
		return nil, fmt.Errorf("neuro: invalid shape %+v", shape)
	}
	if len(g) != shape.GenomeLen() {
		return nil, fmt.Errorf("neuro: genome has %d genes, shape needs %d", len(g), shape.GenomeLen())
	}

	genes := g.Clone()
	take := func(n int) []float64 {
		part := genes[:n:n]
		genes = genes[n:]
		return part
	}

	return &Network{
		shape: shape,
		w1:    mat.NewDense(shape.Hidden, shape.Inputs, take(shape.Hidden*shape.Inputs)),
		b1:    mat.NewVecDense(shape.Hidden, take(shape.Hidden)),
		w2:    mat.NewDense(shape.Outputs, shape.Hidden, take(shape.Outputs*shape.Hidden)),
		b2:    mat.NewVecDense(shape.Outputs, take(shape.Outputs)),
		in:    mat.NewVecDense(shape.Inputs, nil),
		hid:   mat.NewVecDense(shape.Hidden, nil),
		out:   mat.NewVecDense(shape.Outputs, nil),
	}, nil
}

// Activate runs a forward pass. Missing inputs are zero, extra inputs are ignored.
func (n *Network) Activate(inputs []float64) []float64 {
	for i := 0; i < n.shape.Inputs; i++ {
		v := 0.0
		if i < len(inputs) {
			v = inputs[i]
		}
		n.in.SetVec(i, v)
	}

	n.hid.MulVec(n.w1, n.in)
	n.hid.AddVec(n.hid, n.b1)
	for i := 0; i < n.shape.Hidden; i++ {
		n.hid.SetVec(i, math.Tanh(n.hid.AtVec(i)))
	}

	n.out.MulVec(n.w2, n.hid)
	n.out.AddVec(n.out, n.b2)

	result := make([]float64, n.shape.Outputs)
	for i := range result {
		result[i] = sigmoid(n.out.AtVec(i))
	}
	return result
}

// Decide maps features to a turn decision: output 0 turns left, output 1 turns right.
func (n *Network) Decide(f snake.Features) snake.Decision {
	out := n.Activate(f[:])
	d := snake.Decision{Left: out[0] > DecisionThreshold}
	if len(out) > 1 {
		d.Right = out[1] > DecisionThreshold
	}
	return d
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
