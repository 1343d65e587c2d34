package inkdrop

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the server answers with a status outside the 2xx
// range. Body holds the decoded response: a JSON value when the server sent
// JSON, otherwise the response text. Its structure is not defined by the API.
type APIError struct {
	Status     int
	StatusText string
	Body       any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d %s", e.Status, e.StatusText)
}

// ValidationError is returned when a successful response does not have the
// shape expected for the operation.
type ValidationError struct {
	// Shape names the expected shape, e.g. "note" or "mutation response".
	Shape string

	// Value is the decoded payload that failed validation.
	Value any

	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Shape, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
