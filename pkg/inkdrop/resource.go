package inkdrop

import (
	"context"
	"net/http"
	"net/url"
)

// docPath returns the path of the document with the given id.
func docPath(id string) string {
	return "/" + url.PathEscape(id)
}

// list issues GET path and decodes every element of the returned array
// after checking it against shape.
func list[T any](ctx context.Context, c *Client, path string, params *Params, shape Shape) ([]T, error) {
	payload, err := c.Request(ctx, http.MethodGet, path, &RequestOptions{Params: params})
	if err != nil {
		return nil, err
	}

	items, err := checkList(shape, payload)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(items))
	for i, item := range items {
		if err := decodeInto(item, &out[i]); err != nil {
			return nil, &ValidationError{Shape: shape.name + " list", Value: payload, Err: err}
		}
	}

	return out, nil
}

// get issues GET /{id} and decodes the payload after checking it against
// shape.
func get[T any](ctx context.Context, c *Client, id string, params *Params, shape Shape) (*T, error) {
	payload, err := c.Request(ctx, http.MethodGet, docPath(id), &RequestOptions{Params: params})
	if err != nil {
		return nil, err
	}

	var out T
	if err := decodeShape(shape, payload, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// mutate sends body with method to path and decodes the acknowledgement.
func mutate(ctx context.Context, c *Client, method, path string, body any) (*MutationResponse, error) {
	payload, err := c.Request(ctx, method, path, &RequestOptions{Body: body})
	if err != nil {
		return nil, err
	}

	var resp MutationResponse
	if err := decodeShape(MutationShape, payload, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
