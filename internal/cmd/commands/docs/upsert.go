package docs

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/hashicorp-forge/inkdrop/internal/cmd/base"
	"github.com/hashicorp-forge/inkdrop/pkg/inkdrop"
)

type UpsertCommand struct {
	*base.Command

	flagNewID bool
}

func (c *UpsertCommand) Synopsis() string {
	return "Create or update a note, book or tag from a JSON file"
}

func (c *UpsertCommand) Help() string {
	return `Usage: inkdrop upsert [options] <notes|books|tags> <json-file>

  This command sends the document in json-file to the server. A document
  with an _id and _rev updates that revision; one without a _rev is
  created.` +
		c.Flags().Help()
}

func (c *UpsertCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("upsert", flag.ContinueOnError))
	c.ClientFlags(f)
	f.BoolVar(&c.flagNewID, "new-id", false,
		"Generate an _id if the document does not have one.")
	return f
}

func (c *UpsertCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 2 {
		c.UI.Error("expected collection and JSON file arguments")
		return 1
	}
	kind, err := parseCollection(f.Arg(0))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	path := f.Arg(1)

	src, err := afero.ReadFile(c.FS(), path)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading document file: %v", err))
		return 1
	}

	var doc inkdrop.Doc
	switch kind {
	case inkdrop.KindNote:
		doc = &inkdrop.Note{}
	case inkdrop.KindBook:
		doc = &inkdrop.Book{}
	case inkdrop.KindTag:
		doc = &inkdrop.Tag{}
	default:
		c.UI.Error("files are created with the attach command")
		return 1
	}
	if err := json.Unmarshal(src, doc); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing document file: %v", err))
		return 1
	}
	if c.flagNewID && doc.Base().ID == "" {
		doc.Base().ID = inkdrop.NewID(kind)
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx := c.Context()
	var res *inkdrop.MutationResponse
	switch d := doc.(type) {
	case *inkdrop.Note:
		res, err = client.Notes.Upsert(ctx, d)
	case *inkdrop.Book:
		res, err = client.Books.Upsert(ctx, d)
	case *inkdrop.Tag:
		res, err = client.Tags.Upsert(ctx, d)
	}
	if err != nil {
		c.UI.Error(errorMessage("saving document", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Saved %s (rev %s)", res.ID, res.Rev))
	return 0
}
