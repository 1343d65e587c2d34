package inkdrop

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Transport sends a single HTTP request. *http.Client satisfies it.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(req *http.Request) (*http.Response, error)

func (f TransportFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// RequestOptions are the optional parts of a request.
type RequestOptions struct {
	// Params are appended to the query string.
	Params *Params

	// Headers are merged over the client's default headers.
	Headers http.Header

	// Body is sent as is when it is a string, []byte, io.Reader, url.Values
	// or Multipart, and as JSON otherwise.
	Body any
}

// Request sends a request to path, resolved against the client's base URL,
// and returns the decoded response payload.
//
// A 204 response decodes to nil. Responses with a JSON content type are
// decoded into the usual encoding/json types (map[string]any, []any,
// float64, ...). Anything else is returned as a string. A status outside the
// 2xx range returns an *APIError carrying the decoded payload.
//
// Errors from the transport, including context cancellation, are returned
// unchanged.
func (c *Client) Request(ctx context.Context, method, path string, opts *RequestOptions) (any, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	u, err := BuildURL(c.baseURL, path, opts.Params)
	if err != nil {
		return nil, err
	}

	headers := c.headers.Clone()
	mergeHeaders(headers, opts.Headers)

	body, err := encodeBody(opts.Body, headers)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = headers

	c.logger.Debug("sending request", "method", method, "url", u.Redacted())
	start := time.Now()

	resp, err := c.transport.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.Body != nil {
		defer resp.Body.Close()
	}

	c.logger.Debug("received response",
		"method", method,
		"url", u.Redacted(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	payload, err := decodeResponse(resp)
	if err != nil {
		return nil, err
	}

	if !isSuccess(resp.StatusCode) {
		return nil, &APIError{
			Status:     resp.StatusCode,
			StatusText: statusText(resp),
			Body:       payload,
		}
	}

	return payload, nil
}

func decodeResponse(resp *http.Response) (any, error) {
	if resp.StatusCode == http.StatusNoContent || resp.Body == nil {
		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var payload any
		if err := json.Unmarshal(data, &payload); err != nil {
			// Error responses keep their status; the raw text stands in for
			// a body that does not parse.
			if !isSuccess(resp.StatusCode) {
				return string(data), nil
			}
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return payload, nil
	}

	return string(data), nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// statusText returns the reason phrase of resp, falling back to the
// standard text for its code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
