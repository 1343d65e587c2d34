package version

import (
	"github.com/hashicorp-forge/inkdrop/internal/cmd/base"
	"github.com/hashicorp-forge/inkdrop/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return `Usage: inkdrop version

  This command prints the version of the inkdrop CLI.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
