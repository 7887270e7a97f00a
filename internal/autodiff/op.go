package autodiff

// Op identifies the operation that produced a Value.
//
// Composite operations (negation, subtraction, division) have no tag of
// their own: they are expressed through the primitive kinds below and
// inherit their backward rules.
type Op uint8

// Primitive operation kinds.
const (
	OpLeaf Op = iota // no operands
	OpAdd            // a + b
	OpMul            // a * b
	OpPow            // a ** k, k a fixed real
	OpTanh           // tanh(a)
	OpExp            // e ** a
)

// String returns the diagnostic label of the operation.
func (op Op) String() string {
	switch op {
	case OpLeaf:
		return ""
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "**"
	case OpTanh:
		return "tanh"
	case OpExp:
		return "exp"
	default:
		return "unknown"
	}
}

// propagate distributes v.grad into the gradients of v's operands
// according to the local derivative of v's operation.
func (v *Value) propagate() {
	switch v.op {
	case OpLeaf:
		// Nothing further to propagate to.
	case OpAdd:
		addBackward(v)
	case OpMul:
		mulBackward(v)
	case OpPow:
		powBackward(v)
	case OpTanh:
		tanhBackward(v)
	case OpExp:
		expBackward(v)
	}
}
