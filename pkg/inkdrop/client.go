package inkdrop

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"
)

// Client talks to the local HTTP API of the desktop app. A Client holds no
// mutable state and may be used from multiple goroutines.
type Client struct {
	baseURL   string
	headers   http.Header
	transport Transport
	logger    hclog.Logger

	Notes *NoteService
	Books *BookService
	Tags  *TagService
	Files *FileService
	Docs  *DocService
}

// NewClient creates a client from cfg, filling in defaults for unset
// fields.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	// Apply defaults
	c := *cfg
	defaults := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.Transport == nil {
		c.Transport = defaults.Transport
	}
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	client := &Client{
		baseURL:   c.BaseURL,
		headers:   defaultHeaders(c.Username, c.Password, c.Headers),
		transport: c.Transport,
		logger:    c.Logger.Named("inkdrop-client"),
	}
	client.Notes = &NoteService{client: client}
	client.Books = &BookService{client: client}
	client.Tags = &TagService{client: client}
	client.Files = &FileService{client: client}
	client.Docs = &DocService{client: client}

	return client, nil
}

// BaseURL returns the URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Info returns the server's version information.
func (c *Client) Info(ctx context.Context) (*ServerInfo, error) {
	payload, err := c.Request(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return nil, err
	}

	var info ServerInfo
	if err := decodeShape(ServerInfoShape, payload, &info); err != nil {
		return nil, err
	}

	return &info, nil
}
