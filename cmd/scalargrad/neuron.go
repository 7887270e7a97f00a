package main

import (
	"fmt"
	"strings"

	"github.com/born-ml/scalargrad/autodiff"
	"github.com/born-ml/scalargrad/nn"
)

// NeuronCommand evaluates a single neuron with fixed parameters and prints
// the parameter gradients of its output.
type NeuronCommand struct {
	Meta
}

func (c *NeuronCommand) Run(args []string) int {
	weights := floatList{1, -1}
	inputs := floatList{0.5, 0.5}

	fs := c.flagSet("neuron", c.Help)
	fs.Var(&weights, "w", "comma-separated weights")
	fs.Var(&inputs, "x", "comma-separated inputs")
	bias := fs.Float64("b", 0, "bias")
	trace := fs.Bool("trace", false, "print the expression graph")
	if !c.parseFlags(fs, args) {
		return 1
	}

	if len(weights) == 0 || len(inputs) != len(weights) {
		c.Ui.Error(fmt.Sprintf("expected %d inputs to match the weights, got %d", len(weights), len(inputs)))
		return 1
	}

	n := nn.NewNeuronFromWeights(weights, *bias)
	xs := nn.Inputs(inputs...)
	for i, x := range xs {
		x.SetLabel(fmt.Sprintf("x%d", i))
	}

	out := n.Forward(xs).SetLabel("out")
	c.logGraph("neuron graph built", out)
	out.Backward()

	c.Ui.Output(fmt.Sprintf("output: %.6g", out.Data()))
	if err := c.outputParameters(n.Parameters()); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	if *trace {
		c.Ui.Output(autodiff.Trace(out).String())
	}
	return 0
}

func (c *NeuronCommand) Help() string {
	helpText := `
Usage: scalargrad neuron [options]

  Evaluates tanh(w·x + b) for one neuron, runs a backward pass from the
  output and prints each parameter's value and gradient.

Options:

  -w=1,-1       Comma-separated weights.
  -b=0          Bias.
  -x=0.5,0.5    Comma-separated inputs, one per weight.
  -trace        Print the expression graph with gradients.
  -v            Enable debug logging.
`
	return strings.TrimSpace(helpText)
}

func (c *NeuronCommand) Synopsis() string {
	return "Differentiate a single neuron"
}
