package nn

import (
	"context"
	"fmt"
	"strings"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/parallel"
)

// MLP is a multi-layer perceptron: layers chained so the output of one is
// the input of the next.
//
// Example:
//
//	mlp, err := nn.NewMLP(3, []int{4, 4, 1})
//	if err != nil {
//	    return err
//	}
//	out := mlp.Forward(nn.Inputs(2.0, 3.0, -1.0)).Scalar()
//	out.Backward()
type MLP struct {
	inputSize int
	layers    []*Layer
	parallel  parallel.Config
}

// NewMLP creates an MLP with inputSize inputs and one layer per entry of
// layerSizes. Parameters are labeled "L<layer>.N<neuron>.w<i>" and
// "L<layer>.N<neuron>.b".
func NewMLP(inputSize int, layerSizes []int, opts ...Option) (*MLP, error) {
	cfg := Config{InputSize: inputSize, LayerSizes: layerSizes}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("nn.NewMLP: %w", err)
	}

	o := newOptions(opts)
	layers := make([]*Layer, len(layerSizes))
	in := inputSize
	for i, out := range layerSizes {
		layers[i] = newLayer(in, out, o)
		layers[i].labelParameters(fmt.Sprintf("L%d", i))
		in = out
	}

	return &MLP{
		inputSize: inputSize,
		layers:    layers,
		parallel:  o.parallel,
	}, nil
}

// Forward feeds x through every layer in order.
//
// Panics if len(x) differs from the network's input size.
func (m *MLP) Forward(x []*autodiff.Value) Outputs {
	outs := Outputs(x)
	for _, l := range m.layers {
		outs = l.Forward(outs)
	}
	return outs
}

// ForwardBatch builds one independent forward graph per input.
//
// Graphs are built concurrently according to the configured parallel.Config.
// This is safe because forward construction only reads the shared parameter
// leaves. Backward passes over the returned graphs all write into those same
// parameters and must be run one at a time by the caller.
func (m *MLP) ForwardBatch(ctx context.Context, xs [][]*autodiff.Value) ([]Outputs, error) {
	for i, x := range xs {
		if len(x) != m.inputSize {
			return nil, fmt.Errorf("nn.MLP.ForwardBatch: input %d: expected %d values, got %d", i, m.inputSize, len(x))
		}
	}

	results := make([]Outputs, len(xs))
	err := parallel.For(ctx, len(xs), func(_ context.Context, i int) error {
		results[i] = m.Forward(xs[i])
		return nil
	}, m.parallel)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Parameters returns all layer parameters in layer order.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// Layers returns the network's layers.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// InputSize returns the number of network inputs.
func (m *MLP) InputSize() int {
	return m.inputSize
}

// OutputSize returns the number of network outputs.
func (m *MLP) OutputSize() int {
	return m.layers[len(m.layers)-1].OutputSize()
}

// Config returns the architecture of m.
func (m *MLP) Config() Config {
	sizes := make([]int, len(m.layers))
	for i, l := range m.layers {
		sizes[i] = l.OutputSize()
	}
	return Config{InputSize: m.inputSize, LayerSizes: sizes}
}

// String describes the architecture, e.g. "MLP(3 -> 4 -> 4 -> 1)".
func (m *MLP) String() string {
	parts := []string{fmt.Sprint(m.inputSize)}
	for _, l := range m.layers {
		parts = append(parts, fmt.Sprint(l.OutputSize()))
	}
	return "MLP(" + strings.Join(parts, " -> ") + ")"
}
