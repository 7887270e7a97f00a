// Package nn implements a minimal feed-forward network on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Module interface: anything exposing trainable parameters
//   - Neuron: tanh(w·x + b)
//   - Layer: a row of independent neurons over the same inputs
//   - MLP: layers chained input → hidden... → output
//
// Each forward call builds a fresh expression graph whose leaves include the
// module's parameters. After calling Backward on a result, every parameter's
// Grad holds its partial derivative. Gradients are never reset automatically;
// use ZeroGrad between steps.
package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Module is the base interface for all network components.
type Module interface {
	// Parameters returns the trainable leaf nodes of the module in a
	// stable order.
	Parameters() []*autodiff.Value
}

// ZeroGrad resets the gradient of every parameter of m.
//
// This should be called before each backward pass when parameters are
// reused across steps.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// Inputs lifts raw numbers to leaf nodes suitable for Forward.
func Inputs(xs ...float64) []*autodiff.Value {
	values := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		values[i] = autodiff.NewValue(x)
	}
	return values
}

// Outputs is the result of a layer or network forward pass.
type Outputs []*autodiff.Value

// Scalar returns the only output. Panics unless there is exactly one.
func (o Outputs) Scalar() *autodiff.Value {
	if len(o) != 1 {
		panic(fmt.Sprintf("nn: Scalar called on %d outputs", len(o)))
	}
	return o[0]
}

// Data returns the forward values of all outputs.
func (o Outputs) Data() []float64 {
	data := make([]float64, len(o))
	for i, v := range o {
		data[i] = v.Data()
	}
	return data
}
