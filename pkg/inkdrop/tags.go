package inkdrop

import (
	"context"
	"errors"
	"net/http"
)

// TagService reads and writes tags under /tags.
type TagService struct {
	client *Client
}

// List returns tags.
func (s *TagService) List(ctx context.Context, params *Params) ([]Tag, error) {
	return list[Tag](ctx, s.client, "/tags", params, TagShape)
}

// Get returns the tag with the given id.
func (s *TagService) Get(ctx context.Context, id string, params *Params) (*Tag, error) {
	return get[Tag](ctx, s.client, id, params, TagShape)
}

// Upsert creates or updates tag.
func (s *TagService) Upsert(ctx context.Context, tag *Tag) (*MutationResponse, error) {
	if tag == nil {
		return nil, errors.New("tag is required")
	}
	return mutate(ctx, s.client, http.MethodPost, "/tags", tag)
}
