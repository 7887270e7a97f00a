package autodiff

// Add returns v + other.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a += outputGrad
//   - d(a+b)/db = 1, so grad_b += outputGrad
func (v *Value) Add(other *Value) *Value {
	mustOperands(v, other)
	return newBinary(OpAdd, v.data+other.data, v, other)
}

// Sub returns v - other, expressed as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	mustOperands(v, other)
	return v.Add(other.Neg())
}

func addBackward(out *Value) {
	out.lhs.grad += out.grad
	out.rhs.grad += out.grad
}
