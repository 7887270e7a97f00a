// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Every operation on a *Value records its operands, building a computation
// graph. Calling Backward on any node fills in the gradient of that node with
// respect to everything it was computed from.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    a := autodiff.NewLabeled(2, "a")
//	    b := autodiff.NewLabeled(-3, "b")
//	    c := autodiff.Add(a.Mul(b), 10).Tanh()
//
//	    c.Backward()
//	    fmt.Println(a.Grad(), b.Grad())
//	}
package autodiff

import (
	"github.com/xlab/treeprint"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Value is a node in the computation graph.
type Value = autodiff.Value

// Op identifies the operation that produced a Value.
type Op = autodiff.Op

// Operation kinds.
const (
	OpLeaf = autodiff.OpLeaf
	OpAdd  = autodiff.OpAdd
	OpMul  = autodiff.OpMul
	OpPow  = autodiff.OpPow
	OpTanh = autodiff.OpTanh
	OpExp  = autodiff.OpExp
)

// Operand is a *Value or a raw number.
type Operand = autodiff.Operand

// Exponent is the set of numeric types accepted by PowOf.
type Exponent = autodiff.Exponent

// Stats summarizes the shape of a graph.
type Stats = autodiff.Stats

// Errors.
var (
	ErrInvalidExponent = autodiff.ErrInvalidExponent
	ErrNilOperand      = autodiff.ErrNilOperand
)

// NewValue creates a leaf node.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// NewLabeled creates a leaf node with a diagnostic label.
func NewLabeled(data float64, label string) *Value {
	return autodiff.NewLabeled(data, label)
}

// Lift returns x unchanged if it is a node, or wraps a raw number as a leaf.
func Lift[T Operand](x T) *Value {
	return autodiff.Lift(x)
}

// Add returns a + b.
func Add[A, B Operand](a A, b B) *Value {
	return autodiff.Add(a, b)
}

// Sub returns a - b.
func Sub[A, B Operand](a A, b B) *Value {
	return autodiff.Sub(a, b)
}

// Mul returns a * b.
func Mul[A, B Operand](a A, b B) *Value {
	return autodiff.Mul(a, b)
}

// Div returns a / b.
func Div[A, B Operand](a A, b B) *Value {
	return autodiff.Div(a, b)
}

// Neg returns -a.
func Neg[A Operand](a A) *Value {
	return autodiff.Neg(a)
}

// PowOf returns v ** k.
func PowOf[E Exponent](v *Value, k E) *Value {
	return autodiff.PowOf(v, k)
}

// Sum folds values into start with Add.
func Sum(start *Value, values ...*Value) *Value {
	return autodiff.Sum(start, values...)
}

// Topological returns the nodes reachable from root, operands first.
func Topological(root *Value) []*Value {
	return autodiff.Topological(root)
}

// ZeroGrads resets the gradient of every node reachable from root.
func ZeroGrads(root *Value) {
	autodiff.ZeroGrads(root)
}

// Trace renders the graph below root as a tree.
func Trace(root *Value) treeprint.Tree {
	return autodiff.Trace(root)
}

// GraphStats summarizes the graph below root.
func GraphStats(root *Value) Stats {
	return autodiff.GraphStats(root)
}
