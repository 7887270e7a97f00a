package autodiff

// Topological returns every node reachable from root in an order where each
// node appears after all of its operands. root is always last.
//
// The traversal is an iterative post-order depth-first search with an
// explicit stack, so arbitrarily deep chains do not grow the call stack.
// Nodes reached along several paths appear exactly once.
func Topological(root *Value) []*Value {
	if root == nil {
		return nil
	}

	type frame struct {
		node     *Value
		expanded bool // operands already scheduled; emit on next pop
	}

	order := make([]*Value, 0, 64)
	visited := make(map[*Value]struct{})
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.expanded {
			order = append(order, top.node)
			continue
		}
		if _, seen := visited[top.node]; seen {
			continue
		}
		visited[top.node] = struct{}{}

		stack = append(stack, frame{node: top.node, expanded: true})
		for _, operand := range top.node.Operands() {
			if _, seen := visited[operand]; !seen {
				stack = append(stack, frame{node: operand})
			}
		}
	}

	return order
}

// Backward computes d(v)/d(n) for every node n reachable from v.
//
// Algorithm:
//  1. Order the graph topologically (operands before consumers)
//  2. Seed v.grad = 1
//  3. Walk the order in reverse, letting each node push its gradient
//     into its operands according to its local derivative
//
// The reverse walk guarantees a node's gradient is fully accumulated from
// all of its consumers before it is propagated further.
//
// Gradients are accumulated, never reset: call ZeroGrads before running a
// second backward pass over the same nodes.
func (v *Value) Backward() {
	order := Topological(v)
	v.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		order[i].propagate()
	}
}

// ZeroGrads resets the gradient of every node reachable from root.
func ZeroGrads(root *Value) {
	for _, node := range Topological(root) {
		node.grad = 0
	}
}
