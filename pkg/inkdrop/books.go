package inkdrop

import (
	"context"
	"errors"
	"net/http"
)

// BookService reads and writes notebooks under /books.
type BookService struct {
	client *Client
}

// List returns notebooks.
func (s *BookService) List(ctx context.Context, params *Params) ([]Book, error) {
	return list[Book](ctx, s.client, "/books", params, BookShape)
}

// Get returns the notebook with the given id.
func (s *BookService) Get(ctx context.Context, id string, params *Params) (*Book, error) {
	return get[Book](ctx, s.client, id, params, BookShape)
}

// Upsert creates or updates book.
func (s *BookService) Upsert(ctx context.Context, book *Book) (*MutationResponse, error) {
	if book == nil {
		return nil, errors.New("book is required")
	}
	return mutate(ctx, s.client, http.MethodPost, "/books", book)
}
