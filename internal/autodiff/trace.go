package autodiff

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Trace renders the graph below root as a tree, one branch per operand.
//
// Every node gets a stable #id in traversal order. A node shared by several
// consumers is expanded once; later occurrences are printed as a reference
// to its id.
//
// Example output for (a*b).Tanh():
//
//	#0 tanh data=-0.9951 grad=1
//	└── #1 * data=-3 grad=0.009866
//	    ├── #2 a data=1 grad=-0.0296
//	    └── #3 b data=-3 grad=0.009866
func Trace(root *Value) treeprint.Tree {
	if root == nil {
		return treeprint.New()
	}

	ids := map[*Value]int{root: 0}
	tree := treeprint.NewWithRoot(describe(root, 0))

	type item struct {
		node   *Value
		branch treeprint.Tree
	}
	stack := []item{{node: root, branch: tree}}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var pending []item
		for _, operand := range it.node.uses() {
			if id, seen := ids[operand]; seen {
				it.branch.AddNode(fmt.Sprintf("#%d (shared)", id))
				continue
			}
			id := len(ids)
			ids[operand] = id
			if operand.IsLeaf() {
				it.branch.AddNode(describe(operand, id))
				continue
			}
			pending = append(pending, item{node: operand, branch: it.branch.AddBranch(describe(operand, id))})
		}
		// Reverse so the first operand's subtree is expanded first.
		for i := len(pending) - 1; i >= 0; i-- {
			stack = append(stack, pending[i])
		}
	}

	return tree
}

// uses returns the operands of v once per use site (x*x yields x twice).
func (v *Value) uses() []*Value {
	switch {
	case v.lhs == nil:
		return nil
	case v.rhs == nil:
		return []*Value{v.lhs}
	default:
		return []*Value{v.lhs, v.rhs}
	}
}

func describe(v *Value, id int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%d", id)
	if op := v.OpLabel(); op != "" {
		sb.WriteString(" " + op)
	}
	if v.label != "" {
		sb.WriteString(" " + v.label)
	}
	fmt.Fprintf(&sb, " data=%.4g grad=%.4g", v.data, v.grad)
	return sb.String()
}

// Stats summarizes the shape of a graph.
type Stats struct {
	Nodes  int // distinct nodes
	Leaves int // distinct nodes without operands
	Edges  int // use edges; x*x counts two
	Depth  int // longest operand path from the root to a leaf
}

// GraphStats computes Stats for the graph below root.
func GraphStats(root *Value) Stats {
	order := Topological(root)
	depth := make(map[*Value]int, len(order))

	var s Stats
	s.Nodes = len(order)
	for _, node := range order {
		uses := node.uses()
		if len(uses) == 0 {
			s.Leaves++
		}
		s.Edges += len(uses)

		d := 0
		for _, operand := range uses {
			d = max(d, depth[operand]+1)
		}
		depth[node] = d
	}
	if root != nil {
		s.Depth = depth[root]
	}
	return s
}
