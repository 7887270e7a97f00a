package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Layer is a row of outputSize neurons, each wired to all inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer mapping inputSize inputs to outputSize outputs.
// Its parameters are labeled as the first layer of a network, "L0.N<j>.w<k>".
func NewLayer(inputSize, outputSize int, opts ...Option) *Layer {
	l := newLayer(inputSize, outputSize, newOptions(opts))
	l.labelParameters("L0")
	return l
}

func newLayer(inputSize, outputSize int, o *options) *Layer {
	if outputSize < 1 {
		panic(fmt.Sprintf("nn.NewLayer: output size must be positive, got %d", outputSize))
	}

	neurons := make([]*Neuron, outputSize)
	for i := range neurons {
		neurons[i] = newNeuron(inputSize, o)
	}
	return &Layer{neurons: neurons}
}

// Forward evaluates every neuron on x. Use Outputs.Scalar to unwrap a
// single-neuron layer.
func (l *Layer) Forward(x []*autodiff.Value) Outputs {
	outs := make(Outputs, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Forward(x)
	}
	return outs
}

// Parameters returns all neuron parameters in neuron order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InputSize returns the number of inputs.
func (l *Layer) InputSize() int {
	return l.neurons[0].InputSize()
}

// OutputSize returns the number of neurons.
func (l *Layer) OutputSize() int {
	return len(l.neurons)
}

func (l *Layer) labelParameters(prefix string) {
	for i, n := range l.neurons {
		n.labelParameters(fmt.Sprintf("%s.N%d", prefix, i))
	}
}
