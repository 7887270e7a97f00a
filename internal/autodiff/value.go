// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Every arithmetic operation on a *Value produces a new *Value that remembers
// its operands and the kind of operation that produced it. Together these
// nodes form a directed acyclic graph rooted at the final result.
//
// Architecture:
//   - Value: a memoized scalar plus its provenance (operands, Op tag)
//   - Op: tagged operation kind, dispatched during the backward replay
//   - Topological: iterative post-order traversal of the graph
//   - Backward: seeds the root gradient and replays local derivatives in reverse
//
// Usage:
//
//	x := autodiff.NewLabeled(2.0, "x")
//	y := x.Mul(x).Add(autodiff.NewValue(1)) // y = x² + 1
//
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4.0
//
// Gradients accumulate across backward passes. Callers that reuse a graph
// (or its leaves) must reset gradients with ZeroGrad or ZeroGrads first.
package autodiff

import (
	"fmt"
	"strconv"
)

// Value is a node in the computation graph.
//
// The forward value (data) is computed once at construction and never
// re-evaluated. The gradient (grad) starts at zero and is only ever
// accumulated into by backward passes.
//
// A Value is not safe for concurrent mutation. Building independent
// expressions from shared leaves only reads those leaves and is safe;
// backward passes over overlapping graphs must be serialized by the caller.
type Value struct {
	data float64
	grad float64

	op       Op
	lhs      *Value  // first operand, nil for leaves
	rhs      *Value  // second operand, nil for unary ops
	exponent float64 // OpPow only

	label string
}

// NewValue creates a leaf node holding data.
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// NewLabeled creates a leaf node with a diagnostic label.
func NewLabeled(data float64, label string) *Value {
	return &Value{data: data, label: label}
}

// mustOperands panics with ErrNilOperand if any operand is nil.
func mustOperands(operands ...*Value) {
	for _, o := range operands {
		if o == nil {
			panic(ErrNilOperand)
		}
	}
}

func newUnary(op Op, data float64, operand *Value) *Value {
	return &Value{data: data, op: op, lhs: operand}
}

func newBinary(op Op, data float64, lhs, rhs *Value) *Value {
	return &Value{data: data, op: op, lhs: lhs, rhs: rhs}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the accumulated gradient of the most recent backward root
// with respect to this node. It is 0 until a backward pass reaches v.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the kind of operation that produced v.
func (v *Value) Op() Op {
	return v.op
}

// Exponent returns the fixed exponent of an OpPow node, 0 otherwise.
func (v *Value) Exponent() float64 {
	return v.exponent
}

// OpLabel returns the diagnostic label of the producing operation,
// including the exponent for power nodes (e.g. "**-1").
func (v *Value) OpLabel() string {
	if v.op == OpPow {
		return v.op.String() + strconv.FormatFloat(v.exponent, 'g', -1, 64)
	}
	return v.op.String()
}

// Label returns the diagnostic label.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the diagnostic label and returns v for chaining.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// IsLeaf reports whether v has no operands.
func (v *Value) IsLeaf() bool {
	return v.op == OpLeaf
}

// Operands returns the distinct direct predecessors of v.
//
// A binary operation applied to the same node twice (x*x) reports that node
// once. The backward rule still contributes once per use site.
func (v *Value) Operands() []*Value {
	switch {
	case v.lhs == nil:
		return nil
	case v.rhs == nil || v.rhs == v.lhs:
		return []*Value{v.lhs}
	default:
		return []*Value{v.lhs, v.rhs}
	}
}

// ZeroGrad resets the gradient of this node only.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// SetData overwrites the value of a leaf node.
//
// This is the hook for external optimizers updating parameters between
// training steps. Nodes derived from v are not recomputed; build a fresh
// forward graph after updating. Panics if v is not a leaf.
func (v *Value) SetData(data float64) {
	if !v.IsLeaf() {
		panic(fmt.Sprintf("autodiff: SetData on derived node (op %q)", v.OpLabel()))
	}
	v.data = data
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%g, label=%s, grad=%g)", v.data, v.label, v.grad)
}
