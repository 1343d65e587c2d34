package docs

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/inkdrop/internal/cmd/base"
)

type DeleteCommand struct {
	*base.Command
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a document by ID"
}

func (c *DeleteCommand) Help() string {
	return `Usage: inkdrop delete [options] <id>

  This command deletes a note, book, tag or file.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("expected exactly one document ID argument")
		return 1
	}
	id := f.Arg(0)

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	res, err := client.Docs.Delete(c.Context(), id)
	if err != nil {
		c.UI.Error(errorMessage("deleting document", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Deleted %s (rev %s)", res.ID, res.Rev))
	return 0
}
