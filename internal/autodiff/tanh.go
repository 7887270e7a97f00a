package autodiff

import "math"

// Tanh returns the hyperbolic tangent of v, computed from the exponential:
// tanh(n) = (e^2n - 1) / (e^2n + 1).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x)
//   - the output already holds tanh(x), so grad_x += outputGrad * (1 - out²)
func (v *Value) Tanh() *Value {
	mustOperands(v)
	return newUnary(OpTanh, tanh(v.data), v)
}

func tanh(n float64) float64 {
	e := math.Exp(2 * n)
	if math.IsInf(e, 1) {
		// (Inf-1)/(Inf+1) is NaN; the limit is 1.
		return 1
	}
	return (e - 1) / (e + 1)
}

func tanhBackward(out *Value) {
	t := out.data
	out.lhs.grad += (1 - t*t) * out.grad
}
