package autodiff

import "errors"

// ErrInvalidExponent is returned (or panicked with) when a power operation
// is built with an exponent that is not a finite real number.
var ErrInvalidExponent = errors.New("autodiff: exponent must be a finite real number")

// ErrNilOperand is panicked with when a nil *Value is used as an operand.
var ErrNilOperand = errors.New("autodiff: nil operand")
