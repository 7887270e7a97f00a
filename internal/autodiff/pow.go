package autodiff

import (
	"fmt"
	"math"
)

// Exponent is the set of plain numeric types accepted as a power exponent.
// It excludes *Value: variable exponents are not differentiable here.
type Exponent interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Pow returns v ** k for a fixed real exponent k.
//
// Backward pass:
//   - d(x^k)/dx = k * x^(k-1), so grad_x += outputGrad * k * x^(k-1)
//
// Panics with an error wrapping ErrInvalidExponent if k is NaN or infinite.
func (v *Value) Pow(k float64) *Value {
	out, err := v.TryPow(k)
	if err != nil {
		panic(err)
	}
	return out
}

// TryPow is like Pow but reports an invalid exponent as an error.
// No node is created when an error is returned.
func (v *Value) TryPow(k float64) (*Value, error) {
	mustOperands(v)
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExponent, k)
	}
	out := newUnary(OpPow, math.Pow(v.data, k), v)
	out.exponent = k
	return out, nil
}

// PowOf returns v ** k for any integer or floating-point exponent type.
func PowOf[E Exponent](v *Value, k E) *Value {
	return v.Pow(float64(k))
}

func powBackward(out *Value) {
	x, k := out.lhs, out.exponent
	x.grad += k * math.Pow(x.data, k-1) * out.grad
}
