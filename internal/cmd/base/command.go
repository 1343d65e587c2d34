package base

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/inkdrop/internal/config"
	"github.com/hashicorp-forge/inkdrop/pkg/inkdrop"
)

// Command is embedded by every CLI command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Loader reads CLI configuration. Defaults to the OS filesystem and
	// environment.
	Loader *config.Loader

	// Transport overrides the client's HTTP transport when set.
	Transport inkdrop.Transport

	flagConfig  string
	flagEnvFile string
	flagBaseURL string
	flagDebug   bool
}

// ClientFlags registers the flags every command talking to the API accepts.
func (c *Command) ClientFlags(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", "", "Path to an HCL config file.",
	)
	f.StringVar(
		&c.flagEnvFile, "env-file", ".env",
		"Path to a dotenv file with INKDROP_* variables. Ignored if missing.",
	)
	f.StringVar(
		&c.flagBaseURL, "base-url", "",
		"Base URL of the local HTTP server. Overrides config and environment.",
	)
	f.BoolVar(
		&c.flagDebug, "debug", false, "Log every request to stderr.",
	)
}

func (c *Command) loader() *config.Loader {
	if c.Loader == nil {
		c.Loader = config.NewLoader()
	}
	if c.Loader.FS == nil {
		c.Loader.FS = afero.NewOsFs()
	}
	return c.Loader
}

// FS is the filesystem commands read input files from.
func (c *Command) FS() afero.Fs {
	return c.loader().FS
}

// Client builds an API client from flags, config file and environment.
func (c *Command) Client() (*inkdrop.Client, error) {
	cfg, err := c.loader().Load(c.flagConfig, c.flagEnvFile)
	if err != nil {
		return nil, err
	}
	if c.flagBaseURL != "" {
		cfg.BaseURL = c.flagBaseURL
	}

	var logger hclog.Logger
	if c.flagDebug && c.Log != nil {
		logger = c.Log
		logger.SetLevel(hclog.Debug)
	}

	clientCfg := cfg.ClientConfig(logger)
	if c.Transport != nil {
		clientCfg.Transport = c.Transport
	}

	return inkdrop.NewClient(clientCfg)
}

// Context returns the context commands run API calls with.
func (c *Command) Context() context.Context {
	return context.Background()
}

// PrintJSON writes v to the UI as indented JSON.
func (c *Command) PrintJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	c.UI.Output(string(b))
	return nil
}
