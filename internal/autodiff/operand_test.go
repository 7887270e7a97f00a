package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

func TestLift(t *testing.T) {
	v := autodiff.NewValue(1)
	assert.Same(t, v, autodiff.Lift(v), "nodes pass through unchanged")

	assert.Equal(t, 2.5, autodiff.Lift(2.5).Data())
	assert.Equal(t, 3.0, autodiff.Lift(3).Data())
	assert.Equal(t, 4.0, autodiff.Lift(int64(4)).Data())
	assert.Equal(t, 0.5, autodiff.Lift(float32(0.5)).Data())
	assert.True(t, autodiff.Lift(7).IsLeaf())
}

func TestLift_NilPanics(t *testing.T) {
	var v *autodiff.Value
	assert.PanicsWithValue(t, autodiff.ErrNilOperand, func() { autodiff.Lift(v) })
}

func TestMethods_NilOperandPanics(t *testing.T) {
	var nilValue *autodiff.Value
	x := autodiff.NewValue(2)

	tests := map[string]func(){
		"add":           func() { x.Add(nilValue) },
		"sub":           func() { x.Sub(nilValue) },
		"mul":           func() { x.Mul(nilValue) },
		"div":           func() { x.Div(nilValue) },
		"nil receiver":  func() { nilValue.Add(x) },
		"pow":           func() { nilValue.Pow(2) },
		"tanh":          func() { nilValue.Tanh() },
		"exp":           func() { nilValue.Exp() },
		"generic mixed": func() { autodiff.Mul(nilValue, 3.0) },
	}

	for name, build := range tests {
		t.Run(name, func(t *testing.T) {
			assert.PanicsWithValue(t, autodiff.ErrNilOperand, build)
		})
	}
}

// TestScalarOperands covers both node-then-scalar and scalar-then-node orders.
func TestScalarOperands(t *testing.T) {
	tests := []struct {
		name     string
		build    func(x *autodiff.Value) *autodiff.Value
		wantData float64
		wantGrad float64
	}{
		{"x + 2", func(x *autodiff.Value) *autodiff.Value { return autodiff.Add(x, 2) }, 5, 1},
		{"2 + x", func(x *autodiff.Value) *autodiff.Value { return autodiff.Add(2, x) }, 5, 1},
		{"x - 2", func(x *autodiff.Value) *autodiff.Value { return autodiff.Sub(x, 2) }, 1, 1},
		{"2 - x", func(x *autodiff.Value) *autodiff.Value { return autodiff.Sub(2, x) }, -1, -1},
		{"x * 2", func(x *autodiff.Value) *autodiff.Value { return autodiff.Mul(x, 2) }, 6, 2},
		{"2 * x", func(x *autodiff.Value) *autodiff.Value { return autodiff.Mul(2, x) }, 6, 2},
		{"x / 2", func(x *autodiff.Value) *autodiff.Value { return autodiff.Div(x, 2) }, 1.5, 0.5},
		{"6 / x", func(x *autodiff.Value) *autodiff.Value { return autodiff.Div(6, x) }, 2, -6.0 / 9},
		{"-x", func(x *autodiff.Value) *autodiff.Value { return autodiff.Neg(x) }, -3, -1},
		{"x / x", func(x *autodiff.Value) *autodiff.Value { return autodiff.Div(x, x) }, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := autodiff.NewValue(3)
			out := tt.build(x)
			out.Backward()

			assert.InDelta(t, tt.wantData, out.Data(), eps)
			assert.InDelta(t, tt.wantGrad, x.Grad(), eps)
		})
	}
}

// TestReflectedForms checks that scalar-first operations are re-expressed
// with the node as the first operand.
func TestReflectedForms(t *testing.T) {
	x := autodiff.NewValue(4)

	sum := autodiff.Add(1.5, x)
	assert.Same(t, x, sum.Operands()[0])

	diff := autodiff.Sub(1, x) // (-x) + 1
	assert.Equal(t, autodiff.OpAdd, diff.Op())
	assert.Equal(t, autodiff.OpMul, diff.Operands()[0].Op())

	quot := autodiff.Div(1, x) // x**-1 * 1
	assert.Equal(t, autodiff.OpMul, quot.Op())
	assert.Equal(t, "**-1", quot.Operands()[0].OpLabel())
}

func TestScalarOperands_BothRaw(t *testing.T) {
	out := autodiff.Mul(2, 3.5)
	out.Backward()

	assert.InDelta(t, 7.0, out.Data(), eps)
	for _, operand := range out.Operands() {
		assert.True(t, operand.IsLeaf())
	}
}

func TestSum(t *testing.T) {
	b := autodiff.NewValue(1)
	xs := []*autodiff.Value{autodiff.NewValue(2), autodiff.NewValue(3)}

	out := autodiff.Sum(b, xs...)
	out.Backward()

	assert.InDelta(t, 6.0, out.Data(), eps)
	assert.InDelta(t, 1.0, b.Grad(), eps)
	assert.Same(t, b, autodiff.Sum(b), "empty sum returns start")
}
