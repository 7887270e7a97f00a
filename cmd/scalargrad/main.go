// Package main provides the scalargrad CLI for inspecting expression graphs
// and their gradients.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

const version = "v0.1.0"

// logEnvVar selects the log level (trace, debug, info, warn, error, off).
const logEnvVar = "SCALARGRAD_LOG"

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

func realMain(args []string, stdout, stderr io.Writer) int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      stdout,
		ErrorWriter: stderr,
	}
	meta := Meta{
		Ui:     ui,
		Logger: newLogger(os.Getenv(logEnvVar), stderr),
	}

	c := cli.NewCLI("scalargrad", version)
	c.Args = args
	c.Commands = commands(meta)
	c.HelpWriter = stdout
	c.ErrorWriter = stderr

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(stderr, "Error executing CLI: %s\n", err)
		return 1
	}
	return exitCode
}

func commands(meta Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"version": func() (cli.Command, error) {
			return &VersionCommand{Meta: meta}, nil
		},
		"neuron": func() (cli.Command, error) {
			return &NeuronCommand{Meta: meta}, nil
		},
		"mlp": func() (cli.Command, error) {
			return &MLPCommand{Meta: meta}, nil
		},
		"trace": func() (cli.Command, error) {
			return &TraceCommand{Meta: meta}, nil
		},
	}
}

// newLogger builds the CLI logger. Unknown or empty levels fall back to warn.
func newLogger(level string, w io.Writer) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "scalargrad",
		Level:  lvl,
		Output: w,
	})
}
