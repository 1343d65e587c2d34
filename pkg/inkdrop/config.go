package inkdrop

import (
	"errors"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// DefaultBaseURL is where the desktop app serves its local HTTP API.
const DefaultBaseURL = "http://127.0.0.1:19840"

// Config contains configuration for a Client.
type Config struct {
	// BaseURL is the root of the local HTTP API.
	// Default: "http://127.0.0.1:19840"
	BaseURL string `json:"baseUrl"`

	// Username and Password are the credentials configured in the app's
	// local HTTP server settings.
	Username string `json:"username"`
	Password string `json:"-"`

	// Headers are sent with every request. An Authorization or Accept header
	// here replaces the one the client would generate.
	Headers http.Header `json:"-"`

	// Transport sends requests. It must be safe for concurrent use.
	// Default: http.DefaultClient
	Transport Transport `json:"-"`

	// Logger receives request traces at debug level.
	// Default: a null logger
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with defaults applied. Credentials still
// have to be filled in.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Transport: http.DefaultClient,
		Logger:    hclog.NewNullLogger(),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(httpURL)),
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

func httpURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use http or https scheme")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}
