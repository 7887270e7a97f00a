package main

import (
	"fmt"
	"strings"

	"github.com/born-ml/scalargrad/autodiff"
	"github.com/born-ml/scalargrad/nn"
)

// TraceCommand prints the expression graph behind one output of a neuron or
// a seeded MLP, with every node's data and gradient after a backward pass.
type TraceCommand struct {
	Meta
}

func (c *TraceCommand) Run(args []string) int {
	layers := intList{4, 4, 1}
	inputs := floatList{2, 3, -1}
	weights := floatList{}

	fs := c.flagSet("trace", c.Help)
	fs.Var(&layers, "layers", "comma-separated MLP layer sizes")
	fs.Var(&inputs, "x", "comma-separated inputs")
	fs.Var(&weights, "w", "trace a single neuron with these weights instead of an MLP")
	bias := fs.Float64("b", 0, "neuron bias, used with -w")
	seed := fs.Int64("seed", 1, "random seed for MLP initialization")
	output := fs.Int("output", 0, "index of the MLP output to trace")
	statsOnly := fs.Bool("stats", false, "print only the graph statistics")
	if !c.parseFlags(fs, args) {
		return 1
	}

	var (
		root  *autodiff.Value
		title string
	)
	if len(weights) > 0 {
		if len(inputs) != len(weights) {
			c.Ui.Error(fmt.Sprintf("expected %d inputs to match the weights, got %d", len(weights), len(inputs)))
			return 1
		}
		n := nn.NewNeuronFromWeights(weights, *bias)
		root = n.Forward(nn.Inputs(inputs...)).SetLabel("out")
		c.logGraph("neuron graph built", root)
		root.Backward()
		title = fmt.Sprintf("Neuron(%d)", n.InputSize())
	} else {
		run, err := c.runMLP(inputs, layers, *seed, *output)
		if err != nil {
			c.Ui.Error(err.Error())
			return 1
		}
		root = run.root
		title = fmt.Sprintf("%s output %d", run.model, *output)
	}

	c.Ui.Output(title)
	c.outputStats(root)
	if !*statsOnly {
		c.Ui.Output(autodiff.Trace(root).String())
	}
	return 0
}

func (c *TraceCommand) Help() string {
	helpText := `
Usage: scalargrad trace [options]

  Builds the expression graph for one output, runs a backward pass and
  prints the graph as a tree. Shared subexpressions are expanded once and
  referenced by id afterwards. By default a seeded MLP is traced; pass -w
  to trace a single neuron instead.

Options:

  -layers=4,4,1   Comma-separated MLP layer sizes.
  -x=2,3,-1       Comma-separated inputs.
  -seed=1         Random seed for MLP initialization.
  -output=0       Index of the MLP output to trace.
  -w=...          Trace a single neuron with these weights.
  -b=0            Neuron bias, used with -w.
  -stats          Print only node, leaf, edge and depth counts.
  -v              Enable debug logging.
`
	return strings.TrimSpace(helpText)
}

func (c *TraceCommand) Synopsis() string {
	return "Print the expression graph behind an output"
}
