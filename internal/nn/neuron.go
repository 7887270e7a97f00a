package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Neuron computes tanh(w·x + b) over a fixed number of inputs.
//
// Weights and bias are leaf nodes initialized uniformly in [-1, 1].
//
// Example:
//
//	n := nn.NewNeuron(2)
//	out := n.Forward(nn.Inputs(0.5, -1.0))
//	out.Backward()
//	for _, p := range n.Parameters() {
//	    fmt.Println(p.Grad())
//	}
type Neuron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
}

// NewNeuron creates a neuron with inputSize weights and one bias.
func NewNeuron(inputSize int, opts ...Option) *Neuron {
	n := newNeuron(inputSize, newOptions(opts))
	n.labelParameters("N")
	return n
}

func newNeuron(inputSize int, o *options) *Neuron {
	if inputSize < 1 {
		panic(fmt.Sprintf("nn.NewNeuron: input size must be positive, got %d", inputSize))
	}

	weights := make([]*autodiff.Value, inputSize)
	for i := range weights {
		weights[i] = autodiff.NewValue(o.uniform())
	}

	return &Neuron{
		weights: weights,
		bias:    autodiff.NewValue(o.uniform()),
	}
}

// NewNeuronFromWeights creates a neuron with the given initial parameters.
func NewNeuronFromWeights(weights []float64, bias float64) *Neuron {
	if len(weights) == 0 {
		panic("nn.NewNeuronFromWeights: at least one weight is required")
	}
	n := &Neuron{
		weights: Inputs(weights...),
		bias:    autodiff.NewValue(bias),
	}
	n.labelParameters("N")
	return n
}

// Forward computes tanh(b + Σ wᵢxᵢ).
//
// Panics if len(x) differs from the neuron's input size.
func (n *Neuron) Forward(x []*autodiff.Value) *autodiff.Value {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("nn.Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(x)))
	}

	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(x[i]))
	}
	return act.Tanh()
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Weights returns the weight nodes.
func (n *Neuron) Weights() []*autodiff.Value {
	return n.weights
}

// Bias returns the bias node.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// InputSize returns the number of inputs.
func (n *Neuron) InputSize() int {
	return len(n.weights)
}

// labelParameters names parameters "<prefix>.w<i>" and "<prefix>.b".
func (n *Neuron) labelParameters(prefix string) {
	for i, w := range n.weights {
		w.SetLabel(fmt.Sprintf("%s.w%d", prefix, i))
	}
	n.bias.SetLabel(prefix + ".b")
}
