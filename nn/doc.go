// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a minimal feed-forward network built on scalar autodiff.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(w·x + b) with weights and bias drawn from U(-1, 1)
//   - Layer: independent neurons over the same inputs
//   - MLP: layers chained input → hidden → output
//   - Utilities: Module interface, Inputs, ZeroGrad, Config validation
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/scalargrad/nn"
//	)
//
//	func main() {
//	    model, err := nn.NewMLP(3, []int{4, 4, 1})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Forward pass builds a fresh expression graph
//	    out := model.Forward(nn.Inputs(2.0, 3.0, -1.0)).Scalar()
//
//	    // Backward pass fills every parameter's gradient
//	    out.Backward()
//	}
//
// # Parameter Management
//
// Parameters are plain leaf nodes, labeled by position:
//
//	for _, p := range model.Parameters() {
//	    fmt.Println(p.Label(), p.Data(), p.Grad())
//	}
//
// Gradients accumulate across backward passes. An external optimizer is
// expected to update each parameter with SetData and then call ZeroGrad
// before the next step.
//
// # Batches
//
// ForwardBatch builds independent graphs for several inputs concurrently.
// Backward passes over them share parameter nodes and must not run
// concurrently.
package nn
