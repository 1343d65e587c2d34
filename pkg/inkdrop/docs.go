package inkdrop

import (
	"context"
	"net/http"
)

// DocService addresses documents of any kind by id.
type DocService struct {
	client *Client
}

// Get returns the document with the given id as a *Note, *Book, *Tag or
// *File, whichever shape the payload matches.
func (s *DocService) Get(ctx context.Context, id string, params *Params) (Doc, error) {
	payload, err := s.client.Request(ctx, http.MethodGet, docPath(id), &RequestOptions{Params: params})
	if err != nil {
		return nil, err
	}
	return decodeDocument(payload)
}

// Delete removes the document with the given id.
func (s *DocService) Delete(ctx context.Context, id string) (*MutationResponse, error) {
	return mutate(ctx, s.client, http.MethodDelete, docPath(id), nil)
}
