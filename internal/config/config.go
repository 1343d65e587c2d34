package config

import (
	"fmt"
	"net/http"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/inkdrop/pkg/inkdrop"
)

// Environment variables read by Load.
const (
	EnvBaseURL  = "INKDROP_BASE_URL"
	EnvUsername = "INKDROP_USERNAME"
	EnvPassword = "INKDROP_PASSWORD"
)

// Config is the CLI configuration.
//
// Example configuration (HCL):
//
//	base_url = "http://127.0.0.1:19840"
//	username = "me"
//	password = "secret"
//
//	headers = {
//	  "X-Request-Source" = "cli"
//	}
type Config struct {
	BaseURL  string            `hcl:"base_url,optional"`
	Username string            `hcl:"username,optional"`
	Password string            `hcl:"password,optional"`
	Headers  map[string]string `hcl:"headers,optional"`
}

// Loader reads configuration from files and the environment.
type Loader struct {
	// FS is the filesystem config and .env files are read from.
	FS afero.Fs

	// LookupEnv looks up environment variables.
	LookupEnv func(key string) (string, bool)
}

// NewLoader returns a Loader backed by the OS filesystem and environment.
func NewLoader() *Loader {
	return &Loader{
		FS:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
	}
}

// Load builds the configuration. Values come from, in increasing priority:
// the HCL file at configPath, the dotenv file at envPath, and the process
// environment. Either path may be empty. A missing envPath file is not an
// error.
func (l *Loader) Load(configPath, envPath string) (*Config, error) {
	cfg := &Config{}

	if configPath != "" {
		src, err := afero.ReadFile(l.FS, configPath)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := hclsimple.Decode(configPath, src, nil, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	dotenv := map[string]string{}
	if envPath != "" {
		f, err := l.FS.Open(envPath)
		switch {
		case err == nil:
			dotenv, err = godotenv.Parse(f)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("error parsing env file: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("error reading env file: %w", err)
		}
	}

	lookup := func(key string) (string, bool) {
		if l.LookupEnv != nil {
			if v, ok := l.LookupEnv(key); ok && v != "" {
				return v, true
			}
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}

	if v, ok := lookup(EnvBaseURL); ok {
		cfg.BaseURL = v
	}
	if v, ok := lookup(EnvUsername); ok {
		cfg.Username = v
	}
	if v, ok := lookup(EnvPassword); ok {
		cfg.Password = v
	}

	return cfg, nil
}

// ClientConfig converts c to a client configuration.
func (c *Config) ClientConfig(logger hclog.Logger) *inkdrop.Config {
	cfg := inkdrop.DefaultConfig()
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	cfg.Username = c.Username
	cfg.Password = c.Password
	if logger != nil {
		cfg.Logger = logger
	}
	if len(c.Headers) > 0 {
		cfg.Headers = make(http.Header, len(c.Headers))
		for k, v := range c.Headers {
			cfg.Headers.Set(k, v)
		}
	}
	return cfg
}
