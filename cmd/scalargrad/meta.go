package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/born-ml/scalargrad/autodiff"
)

// Meta holds the state shared by all commands.
type Meta struct {
	Ui     cli.Ui
	Logger hclog.Logger

	// verbose is set by the -v flag every command accepts.
	verbose bool
}

// flagSet returns a flag set that reports parse errors through the Ui and
// carries the common -v flag.
func (m *Meta) flagSet(name string, help func() string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { m.Ui.Error(help()) }
	fs.BoolVar(&m.verbose, "v", false, "enable debug logging")
	return fs
}

// parseFlags parses args into fs, reporting errors through the Ui. With -v
// the logger is raised to debug level.
func (m *Meta) parseFlags(fs *flag.FlagSet, args []string) bool {
	if err := fs.Parse(args); err != nil {
		m.Ui.Error(err.Error())
		return false
	}
	if m.verbose {
		m.Logger.SetLevel(hclog.Debug)
	}
	return true
}

// logGraph records the shape of the graph below root at debug level.
func (m *Meta) logGraph(msg string, root *autodiff.Value) {
	if !m.Logger.IsDebug() {
		return
	}
	s := autodiff.GraphStats(root)
	m.Logger.Debug(msg, "nodes", s.Nodes, "leaves", s.Leaves, "edges", s.Edges, "depth", s.Depth)
}

// outputParameters prints one row per parameter: label, data, grad.
func (m *Meta) outputParameters(params []*autodiff.Value) error {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PARAMETER\tDATA\tGRAD")
	for _, p := range params {
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\n", p.Label(), p.Data(), p.Grad())
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing parameter table: %w", err)
	}
	m.Ui.Output(strings.TrimRight(sb.String(), "\n"))
	return nil
}

// outputStats prints the shape of the graph below root.
func (m *Meta) outputStats(root *autodiff.Value) {
	s := autodiff.GraphStats(root)
	m.Ui.Output(fmt.Sprintf("nodes: %d  leaves: %d  edges: %d  depth: %d", s.Nodes, s.Leaves, s.Edges, s.Depth))
}

// floatList is a comma-separated list of floats, e.g. "0.5,-1,2".
type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(s string) error {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", part, err)
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// intList is a comma-separated list of integers, e.g. "4,4,1".
type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(s string) error {
	var out []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", part, err)
		}
		out = append(out, v)
	}
	*l = out
	return nil
}
