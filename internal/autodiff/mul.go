package autodiff

// Mul returns v * other.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a += outputGrad * b
//   - d(a*b)/db = a, so grad_b += outputGrad * a
func (v *Value) Mul(other *Value) *Value {
	mustOperands(v, other)
	return newBinary(OpMul, v.data*other.data, v, other)
}

// Neg returns -v, expressed as v * (-1).
func (v *Value) Neg() *Value {
	return v.Mul(NewValue(-1))
}

// Div returns v / other, expressed as v * other**-1.
func (v *Value) Div(other *Value) *Value {
	mustOperands(v, other)
	return v.Mul(other.Pow(-1))
}

func mulBackward(out *Value) {
	a, b := out.lhs, out.rhs
	// Read both operands before writing: for x*x, a and b alias.
	gradA := b.data * out.grad
	gradB := a.data * out.grad
	a.grad += gradA
	b.grad += gradB
}
