package autodiff

import "math"

// Exp returns e ** v.
//
// Backward pass:
//   - d(exp(x))/dx = exp(x), which is the output itself
//   - grad_x += outputGrad * out
func (v *Value) Exp() *Value {
	mustOperands(v)
	return newUnary(OpExp, math.Exp(v.data), v)
}

func expBackward(out *Value) {
	out.lhs.grad += out.data * out.grad
}
