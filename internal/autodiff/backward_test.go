package autodiff_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// assertTopological checks that no node precedes any of its operands and
// that every node appears exactly once.
func assertTopological(t *testing.T, order []*autodiff.Value) {
	t.Helper()
	pos := make(map[*autodiff.Value]int, len(order))
	for i, n := range order {
		_, dup := pos[n]
		require.False(t, dup, "node %v appears twice", n)
		pos[n] = i
	}
	for i, n := range order {
		for _, operand := range n.Operands() {
			j, ok := pos[operand]
			require.True(t, ok, "operand of %v missing from order", n)
			assert.Less(t, j, i, "operand placed after its consumer")
		}
	}
}

func TestTopological_Diamond(t *testing.T) {
	// a feeds both b and c, which both feed d.
	a := autodiff.NewLabeled(2, "a")
	b := a.Mul(autodiff.NewValue(3))
	c := a.Add(autodiff.NewValue(1))
	d := b.Add(c)

	order := autodiff.Topological(d)

	assertTopological(t, order)
	assert.Same(t, d, order[len(order)-1], "root must be last")
	assert.Len(t, order, 6)
}

func TestTopological_Nil(t *testing.T) {
	assert.Nil(t, autodiff.Topological(nil))
}

func TestTopological_RandomDAGs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := range 50 {
		nodes := []*autodiff.Value{autodiff.NewValue(rng.Float64()), autodiff.NewValue(rng.Float64())}
		for range 30 {
			a := nodes[rng.Intn(len(nodes))]
			b := nodes[rng.Intn(len(nodes))]
			var n *autodiff.Value
			switch rng.Intn(4) {
			case 0:
				n = a.Add(b)
			case 1:
				n = a.Mul(b)
			case 2:
				n = a.Tanh()
			default:
				n = a.Sub(b)
			}
			nodes = append(nodes, n)
		}
		root := nodes[len(nodes)-1]

		t.Logf("trial %d: %d nodes", trial, len(autodiff.Topological(root)))
		assertTopological(t, autodiff.Topological(root))
	}
}

// TestBackward_SharedSubgraph checks that contributions from every consumer
// are summed before propagating further back.
func TestBackward_SharedSubgraph(t *testing.T) {
	// e = a*b; d = e + c; f = d * e  =>  f = (ab + c) * ab
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(-3)
	c := autodiff.NewValue(10)
	e := a.Mul(b)
	d := e.Add(c)
	f := d.Mul(e)
	f.Backward()

	// df/de = d + e, since e reaches f both directly and through d.
	ab := 2.0 * -3.0
	dfde := (ab + 10) + ab
	assert.InDelta(t, (ab+10)*ab, f.Data(), eps)
	assert.InDelta(t, dfde, e.Grad(), eps)
	assert.InDelta(t, ab, c.Grad(), eps)
	assert.InDelta(t, dfde*-3, a.Grad(), eps)
	assert.InDelta(t, dfde*2, b.Grad(), eps)
}

func TestBackward_SeedsRoot(t *testing.T) {
	x := autodiff.NewValue(5)
	x.Backward()

	assert.Equal(t, 1.0, x.Grad(), "d(x)/d(x) = 1")
}

// TestBackward_DeepChain runs a chain far deeper than a recursive traversal
// could handle comfortably.
func TestBackward_DeepChain(t *testing.T) {
	const depth = 100_000

	x := autodiff.NewValue(1)
	y := x
	for range depth {
		y = y.Add(autodiff.NewValue(0))
	}
	y.Backward()

	assert.InDelta(t, 1.0, y.Data(), eps)
	assert.InDelta(t, 1.0, x.Grad(), eps)
}

// TestBackward_AccumulatesAcrossPasses documents that the engine never
// resets gradients on its own.
func TestBackward_AccumulatesAcrossPasses(t *testing.T) {
	x := autodiff.NewValue(3)
	w := autodiff.NewValue(2)
	y := x.Mul(w)

	y.Backward()
	require.InDelta(t, 2.0, x.Grad(), eps)

	y.Backward()
	assert.InDelta(t, 4.0, x.Grad(), eps, "second pass without reset double-accumulates")

	autodiff.ZeroGrads(y)
	assert.Equal(t, 0.0, x.Grad())
	assert.Equal(t, 0.0, w.Grad())
	assert.Equal(t, 0.0, y.Grad())

	y.Backward()
	assert.InDelta(t, 2.0, x.Grad(), eps)
}

func TestZeroGrad_SingleNode(t *testing.T) {
	x := autodiff.NewValue(1)
	y := x.Exp()
	y.Backward()
	require.NotZero(t, x.Grad())

	x.ZeroGrad()
	assert.Equal(t, 0.0, x.Grad())
	assert.Equal(t, 1.0, y.Grad(), "other nodes untouched")
}

// TestBackward_OnlyReachableNodes checks that backward from one root leaves
// unrelated graphs alone.
func TestBackward_OnlyReachableNodes(t *testing.T) {
	x := autodiff.NewValue(1)
	y := x.Mul(autodiff.NewValue(2))
	unrelated := x.Mul(autodiff.NewValue(100))

	y.Backward()

	assert.InDelta(t, 2.0, x.Grad(), eps)
	assert.Equal(t, 0.0, unrelated.Grad())
}

// TestBackward_Micrograd reproduces the classic single-neuron example.
func TestBackward_Micrograd(t *testing.T) {
	x1 := autodiff.NewLabeled(2, "x1")
	x2 := autodiff.NewLabeled(0, "x2")
	w1 := autodiff.NewLabeled(-3, "w1")
	w2 := autodiff.NewLabeled(1, "w2")
	b := autodiff.NewLabeled(6.8813735870195432, "b")

	n := x1.Mul(w1).Add(x2.Mul(w2)).Add(b)
	o := n.Tanh()
	o.Backward()

	assert.InDelta(t, 0.7071, o.Data(), 1e-4)
	assert.InDelta(t, 0.5, n.Grad(), 1e-4)
	assert.InDelta(t, -1.5, x1.Grad(), 1e-4)
	assert.InDelta(t, 1.0, w1.Grad(), 1e-4)
	assert.InDelta(t, 0.5, x2.Grad(), 1e-4)
	assert.InDelta(t, 0.0, w2.Grad(), 1e-4)
	assert.InDelta(t, 0.5, b.Grad(), 1e-4)
}

// TestBackward_TanhViaExp checks tanh against its expansion in terms of exp.
func TestBackward_TanhViaExp(t *testing.T) {
	x1 := autodiff.NewValue(0.6)
	direct := x1.Tanh()
	direct.Backward()

	x2 := autodiff.NewValue(0.6)
	e := x2.Mul(autodiff.NewValue(2)).Exp()
	expanded := autodiff.Sub(e, 1).Div(autodiff.Add(e, 1))
	expanded.Backward()

	assert.InDelta(t, direct.Data(), expanded.Data(), 1e-12)
	assert.InDelta(t, x1.Grad(), x2.Grad(), 1e-12)
}
