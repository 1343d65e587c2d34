package docs

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/inkdrop/internal/cmd/base"
	"github.com/hashicorp-forge/inkdrop/pkg/inkdrop"
)

type GetCommand struct {
	*base.Command

	flagRev         string
	flagAttachments bool
}

func (c *GetCommand) Synopsis() string {
	return "Get a document by ID"
}

func (c *GetCommand) Help() string {
	return `Usage: inkdrop get [options] <id>

  This command fetches a note, book, tag or file and prints it as JSON.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("get", flag.ContinueOnError))
	c.ClientFlags(f)
	f.StringVar(&c.flagRev, "rev", "", "Fetch this revision of the document.")
	f.BoolVar(&c.flagAttachments, "attachments", false,
		"Include attachment data for files.")
	return f
}

func (c *GetCommand) Run(args []string) int {
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

	opts := inkdrop.GetOptions{
		Rev:         c.flagRev,
		Attachments: c.flagAttachments,
	}
	doc, err := client.Docs.Get(c.Context(), id, opts.Params())
	if err != nil {
		if inkdrop.IsNotFound(err) {
			c.UI.Error(fmt.Sprintf("document not found: %s", id))
			return 1
		}
		c.UI.Error(errorMessage("getting document", err))
		return 1
	}

	if err := c.PrintJSON(doc); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
