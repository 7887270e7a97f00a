package autodiff

import "fmt"

// Operand is anything a binary operation accepts on either side:
// an existing node or a raw number.
type Operand interface {
	*Value | float64 | float32 | int | int64
}

// Lift is the build-or-wrap step shared by every binary entry point.
// A *Value is returned unchanged; a raw number becomes a fresh leaf.
func Lift[T Operand](x T) *Value {
	switch x := any(x).(type) {
	case *Value:
		if x == nil {
			panic(ErrNilOperand)
		}
		return x
	case float64:
		return NewValue(x)
	case float32:
		return NewValue(float64(x))
	case int:
		return NewValue(float64(x))
	case int64:
		return NewValue(float64(x))
	default:
		panic(fmt.Sprintf("autodiff: unsupported operand type %T", x))
	}
}

func isNode[T Operand](x T) bool {
	_, ok := any(x).(*Value)
	return ok
}

// Add returns a + b. Either side may be a raw number.
func Add[A, B Operand](a A, b B) *Value {
	if !isNode(a) && isNode(b) {
		return Lift(b).Add(Lift(a))
	}
	return Lift(a).Add(Lift(b))
}

// Sub returns a - b. A raw number on the left is reflected as (-b) + a.
func Sub[A, B Operand](a A, b B) *Value {
	if !isNode(a) && isNode(b) {
		return Lift(b).Neg().Add(Lift(a))
	}
	return Lift(a).Sub(Lift(b))
}

// Mul returns a * b. Either side may be a raw number.
func Mul[A, B Operand](a A, b B) *Value {
	if !isNode(a) && isNode(b) {
		return Lift(b).Mul(Lift(a))
	}
	return Lift(a).Mul(Lift(b))
}

// Div returns a / b. A raw number on the left is reflected as b**-1 * a.
func Div[A, B Operand](a A, b B) *Value {
	if !isNode(a) && isNode(b) {
		return Lift(b).Pow(-1).Mul(Lift(a))
	}
	return Lift(a).Div(Lift(b))
}

// Neg returns -a.
func Neg[A Operand](a A) *Value {
	return Lift(a).Neg()
}

// Sum folds values with Add, starting from start. It returns start itself
// when values is empty.
func Sum(start *Value, values ...*Value) *Value {
	acc := start
	for _, v := range values {
		acc = acc.Add(v)
	}
	return acc
}
