package main

import "fmt"

// VersionCommand prints the CLI version.
type VersionCommand struct {
	Meta
}

func (c *VersionCommand) Run(_ []string) int {
	c.Ui.Output(fmt.Sprintf("scalargrad %s", version))
	return 0
}

func (c *VersionCommand) Help() string {
	return "Usage: scalargrad version\n\n  Prints the scalargrad version."
}

func (c *VersionCommand) Synopsis() string {
	return "Show version"
}
