package docs

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hashicorp-forge/inkdrop/internal/cmd/base"
	"github.com/hashicorp-forge/inkdrop/pkg/inkdrop"
)

type ListCommand struct {
	*base.Command

	flagParams base.KeyValueFlag
	flagJSON   bool
}

func (c *ListCommand) Synopsis() string {
	return "List notes, books, tags or files"
}

func (c *ListCommand) Help() string {
	return `Usage: inkdrop list [options] <notes|books|tags|files>

  This command lists documents of one collection. Query parameters are
  passed through to the server in the order given, for example:

      inkdrop list -param keyword="tag:draft" -param limit=10 notes` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))
	c.ClientFlags(f)
	f.Var(&c.flagParams, "param",
		"Query parameter as key=value. Can be repeated.")
	f.BoolVar(&c.flagJSON, "json", false, "Print documents as JSON.")
	return f
}

func (c *ListCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("expected exactly one collection argument")
		return 1
	}
	kind, err := parseCollection(f.Arg(0))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	params := inkdrop.NewParams()
	for i, k := range c.flagParams.Keys {
		params.Set(k, c.flagParams.Values[i])
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx := c.Context()
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	var docs any
	switch kind {
	case inkdrop.KindNote:
		notes, err := client.Notes.List(ctx, params)
		if err != nil {
			c.UI.Error(errorMessage("listing notes", err))
			return 1
		}
		docs = notes
		t.AppendHeader(table.Row{"ID", "Title", "Book", "Status", "Updated"})
		for _, n := range notes {
			t.AppendRow(table.Row{n.ID, n.Title, n.BookID, n.Status, formatTime(n.Updated())})
		}
	case inkdrop.KindBook:
		books, err := client.Books.List(ctx, params)
		if err != nil {
			c.UI.Error(errorMessage("listing books", err))
			return 1
		}
		docs = books
		t.AppendHeader(table.Row{"ID", "Name", "Parent"})
		for _, b := range books {
			t.AppendRow(table.Row{b.ID, b.Name, b.ParentBookID})
		}
	case inkdrop.KindTag:
		tags, err := client.Tags.List(ctx, params)
		if err != nil {
			c.UI.Error(errorMessage("listing tags", err))
			return 1
		}
		docs = tags
		t.AppendHeader(table.Row{"ID", "Name", "Color", "Count"})
		for _, tag := range tags {
			t.AppendRow(table.Row{tag.ID, tag.Name, tag.Color, tag.Count})
		}
	case inkdrop.KindFile:
		files, err := client.Files.List(ctx, params)
		if err != nil {
			c.UI.Error(errorMessage("listing files", err))
			return 1
		}
		docs = files
		t.AppendHeader(table.Row{"ID", "Name", "Content-Type", "Size"})
		for _, file := range files {
			t.AppendRow(table.Row{file.ID, file.Name, file.ContentType, strconv.FormatInt(file.ContentLength, 10)})
		}
	}

	if c.flagJSON {
		if err := c.PrintJSON(docs); err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		return 0
	}

	c.UI.Output(t.Render())
	return 0
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(time.DateTime)
}
