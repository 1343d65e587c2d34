// Package docs holds the commands that read and write notes, books, tags and
// files through the local HTTP API.
package docs

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hashicorp-forge/inkdrop/pkg/inkdrop"
)

var collections = map[string]inkdrop.Kind{
	"notes": inkdrop.KindNote,
	"note":  inkdrop.KindNote,
	"books": inkdrop.KindBook,
	"book":  inkdrop.KindBook,
	"tags":  inkdrop.KindTag,
	"tag":   inkdrop.KindTag,
	"files": inkdrop.KindFile,
	"file":  inkdrop.KindFile,
}

func parseCollection(s string) (inkdrop.Kind, error) {
	kind, ok := collections[s]
	if !ok {
		return "", fmt.Errorf("unknown collection %q: must be one of notes, books, tags or files", s)
	}
	return kind, nil
}

// errorMessage formats err for the terminal. Server error bodies are
// appended since they usually say what was wrong with the request.
func errorMessage(action string, err error) string {
	var apiErr *inkdrop.APIError
	if errors.As(err, &apiErr) && apiErr.Body != nil {
		body, mErr := json.Marshal(apiErr.Body)
		if mErr != nil {
			body = []byte(fmt.Sprint(apiErr.Body))
		}
		return fmt.Sprintf("error %s: %v: %s", action, err, body)
	}
	return fmt.Sprintf("error %s: %v", action, err)
}
