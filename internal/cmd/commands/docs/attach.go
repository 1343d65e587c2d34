package docs

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/hashicorp-forge/inkdrop/internal/cmd/base"
	"github.com/hashicorp-forge/inkdrop/pkg/inkdrop"
)

type AttachCommand struct {
	*base.Command

	flagName string
}

func (c *AttachCommand) Synopsis() string {
	return "Upload a local file as a file document"
}

func (c *AttachCommand) Help() string {
	return `Usage: inkdrop attach [options] <path>

  This command uploads a local file, usually an image, so notes can
  reference it as inkdrop://file:<id>.` +
		c.Flags().Help()
}

func (c *AttachCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("attach", flag.ContinueOnError))
	c.ClientFlags(f)
	f.StringVar(&c.flagName, "name", "",
		"File name stored on the server. Defaults to the base name of path.")
	return f
}

func (c *AttachCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("expected exactly one file path argument")
		return 1
	}
	path := f.Arg(0)

	data, err := afero.ReadFile(c.FS(), path)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading file: %v", err))
		return 1
	}

	name := c.flagName
	if name == "" {
		name = filepath.Base(path)
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	res, err := client.Files.Create(c.Context(), inkdrop.NewFileInput(name, data))
	if err != nil {
		c.UI.Error(errorMessage("uploading file", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Uploaded %s as %s (rev %s)", name, res.ID, res.Rev))
	c.UI.Output(fmt.Sprintf("![%s](inkdrop://%s)", name, res.ID))
	return 0
}
