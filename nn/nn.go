// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/parallel"
)

// Module interface defines the common interface for all network components.
type Module = nn.Module

// Outputs is the result of a layer or network forward pass.
type Outputs = nn.Outputs

// Option configures module construction.
type Option = nn.Option

// Config describes an MLP architecture.
type Config = nn.Config

// ParallelConfig controls how ForwardBatch fans out.
type ParallelConfig = parallel.Config

// WithRand draws initial parameter values from rng.
func WithRand(rng *rand.Rand) Option {
	return nn.WithRand(rng)
}

// WithParallel sets how MLP.ForwardBatch fans out over inputs.
func WithParallel(cfg ParallelConfig) Option {
	return nn.WithParallel(cfg)
}

// DefaultParallelConfig returns a fan-out configuration sized to the CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Neuron computes tanh(w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with randomly initialized parameters.
func NewNeuron(inputSize int, opts ...Option) *Neuron {
	return nn.NewNeuron(inputSize, opts...)
}

// NewNeuronFromWeights creates a neuron with the given initial parameters.
func NewNeuronFromWeights(weights []float64, bias float64) *Neuron {
	return nn.NewNeuronFromWeights(weights, bias)
}

// Layer is a row of neurons over the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer mapping inputSize inputs to outputSize outputs.
func NewLayer(inputSize, outputSize int, opts ...Option) *Layer {
	return nn.NewLayer(inputSize, outputSize, opts...)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates an MLP.
//
// Example:
//
//	model, err := nn.NewMLP(3, []int{4, 4, 1})
func NewMLP(inputSize int, layerSizes []int, opts ...Option) (*MLP, error) {
	return nn.NewMLP(inputSize, layerSizes, opts...)
}

// Inputs lifts raw numbers to leaf nodes.
func Inputs(xs ...float64) []*autodiff.Value {
	return nn.Inputs(xs...)
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}
