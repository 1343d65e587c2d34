package info

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/inkdrop/internal/cmd/base"
	"github.com/hashicorp-forge/inkdrop/internal/config"
)

func newTestCommand(t *testing.T, handler http.HandlerFunc) (*Command, *cli.MockUi, string) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ".env",
		[]byte("INKDROP_USERNAME=me\nINKDROP_PASSWORD=secret\n"), 0o600))

	ui := cli.NewMockUi()
	c := &Command{Command: &base.Command{
		UI: ui,
		Loader: &config.Loader{
			FS:        fs,
			LookupEnv: func(string) (string, bool) { return "", false },
		},
	}}

	return c, ui, srv.URL
}

func TestInfoCommand(t *testing.T) {
	c, ui, url := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {
		if u, p, ok := r.BasicAuth(); !ok || u != "me" || p != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"5.9.0","ok":true}`))
	})

	code := c.Run([]string{"-base-url", url})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	out := ui.OutputWriter.String()
	assert.Contains(t, out, "Server: "+url)
	assert.Contains(t, out, "Version: 5.9.0")
}

func TestInfoCommand_JSON(t *testing.T) {
	c, ui, url := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"5.9.0","ok":true}`))
	})

	code := c.Run([]string{"-base-url", url, "-json"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.JSONEq(t, `{"version":"5.9.0","ok":true}`, ui.OutputWriter.String())
}

func TestInfoCommand_Unauthorized(t *testing.T) {
	c, ui, url := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	assert.Equal(t, 1, c.Run([]string{"-base-url", url}))
	assert.Contains(t, ui.ErrorWriter.String(), "error getting server info: HTTP 401")
}

func TestInfoCommand_Help(t *testing.T) {
	c := &Command{Command: &base.Command{}}
	help := c.Help()
	assert.Contains(t, help, "Usage: inkdrop info")
	assert.Contains(t, help, "-base-url")
	assert.Contains(t, help, "-env-file")
}
