package inkdrop

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Multipart is an already encoded multipart/form-data body, usually built
// with mime/multipart.Writer. ContentType carries the boundary.
type Multipart struct {
	ContentType string
	Body        io.Reader
}

// encodeBody turns a request body into a reader. Strings, byte slices,
// readers, url.Values and Multipart bodies are sent as they are; any other
// value is encoded as JSON. header is updated with a default Content-Type
// where one is implied and the caller did not set it.
func encodeBody(body any, header http.Header) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	case url.Values:
		setDefaultHeader(header, "Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")
		return strings.NewReader(b.Encode()), nil
	case *Multipart:
		setDefaultHeader(header, "Content-Type", b.ContentType)
		return b.Body, nil
	case Multipart:
		setDefaultHeader(header, "Content-Type", b.ContentType)
		return b.Body, nil
	case io.Reader:
		return b, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	setDefaultHeader(header, "Content-Type", "application/json")

	return bytes.NewReader(data), nil
}

func setDefaultHeader(header http.Header, name, value string) {
	if header.Get(name) == "" && value != "" {
		header.Set(name, value)
	}
}
