package info

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/inkdrop/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagJSON bool
}

func (c *Command) Synopsis() string {
	return "Show local HTTP server information"
}

func (c *Command) Help() string {
	return `Usage: inkdrop info [options]

  This command checks that the local HTTP server is reachable with the
  configured credentials and prints its version.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("info", flag.ContinueOnError))
	c.ClientFlags(f)
	f.BoolVar(&c.flagJSON, "json", false, "Print the raw server response.")
	return f
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	info, err := client.Info(c.Context())
	if err != nil {
		c.UI.Error(fmt.Sprintf("error getting server info: %v", err))
		return 1
	}

	if c.flagJSON {
		if err := c.PrintJSON(info); err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		return 0
	}

	c.UI.Output(fmt.Sprintf("Server: %s", client.BaseURL()))
	c.UI.Output(fmt.Sprintf("Version: %s", info.Version))
	return 0
}
