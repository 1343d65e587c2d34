package inkdrop

import (
	"context"
	"errors"
	"net/http"
)

// NoteService reads and writes notes under /notes.
type NoteService struct {
	client *Client
}

// List returns notes matching params. Filtering and ordering happen on the
// server; params are sent as given.
func (s *NoteService) List(ctx context.Context, params *Params) ([]Note, error) {
	return list[Note](ctx, s.client, "/notes", params, NoteShape)
}

// Get returns the note with the given id.
func (s *NoteService) Get(ctx context.Context, id string, params *Params) (*Note, error) {
	return get[Note](ctx, s.client, id, params, NoteShape)
}

// Upsert creates note, or updates it when it carries the id of an existing
// note. Updates should carry the current Rev. An empty DocType is sent as
// markdown and nil Tags as an empty list.
func (s *NoteService) Upsert(ctx context.Context, note *Note) (*MutationResponse, error) {
	if note == nil {
		return nil, errors.New("note is required")
	}
	in := *note
	if in.DocType == "" {
		in.DocType = DocTypeMarkdown
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	return mutate(ctx, s.client, http.MethodPost, "/notes", &in)
}
