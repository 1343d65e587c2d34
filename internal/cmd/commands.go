package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/inkdrop/internal/cmd/base"
	"github.com/hashicorp-forge/inkdrop/internal/cmd/commands/docs"
	"github.com/hashicorp-forge/inkdrop/internal/cmd/commands/info"
	"github.com/hashicorp-forge/inkdrop/internal/cmd/commands/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := &base.Command{
		Log: log,
		UI:  ui,
	}

	Commands = map[string]cli.CommandFactory{
		"attach": func() (cli.Command, error) {
			return &docs.AttachCommand{Command: b}, nil
		},
		"delete": func() (cli.Command, error) {
			return &docs.DeleteCommand{Command: b}, nil
		},
		"get": func() (cli.Command, error) {
			return &docs.GetCommand{Command: b}, nil
		},
		"info": func() (cli.Command, error) {
			return &info.Command{Command: b}, nil
		},
		"list": func() (cli.Command, error) {
			return &docs.ListCommand{Command: b}, nil
		},
		"upsert": func() (cli.Command, error) {
			return &docs.UpsertCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
