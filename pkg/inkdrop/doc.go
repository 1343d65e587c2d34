// Package inkdrop is a client for the local HTTP API of the Inkdrop desktop
// app.
//
// # Overview
//
// The app serves its database over HTTP on the local machine, protected by
// Basic authentication. The client issues one request per call and checks
// every successful response against the shape expected for the operation
// before handing back typed values. There is no caching, retrying or
// queueing: a call is a single round trip.
//
//	client, err := inkdrop.NewClient(&inkdrop.Config{
//	  Username: "user",
//	  Password: "secret",
//	})
//	notes, err := client.Notes.List(ctx, inkdrop.NoteListOptions{
//	  Keyword: "tag:draft",
//	  Limit:   10,
//	}.Params())
//
// # Endpoints
//
//   - GET    /               server info
//   - GET    /notes          list notes
//   - POST   /notes          create or update a note
//   - GET    /books          list notebooks
//   - POST   /books          create or update a notebook
//   - GET    /tags           list tags
//   - POST   /tags           create or update a tag
//   - GET    /files          list files
//   - POST   /files          create a file
//   - GET    /:id            read any document
//   - DELETE /:id            delete any document
//
// # Errors
//
// Two error types come out of the client:
//   - *APIError when the server answers with a non-2xx status. It carries
//     the status and the decoded response body.
//   - *ValidationError when a 2xx response does not have the expected shape.
//
// Errors from the Transport, such as refused connections or a cancelled
// context, are returned unchanged.
//
// # Documents
//
// Ids carry their kind as a prefix ("note:", "book:", "tag:", "file:").
// DocService.Get uses it, together with each kind's required fields, to
// decide whether a payload is a Note, Book, Tag or File. Use NewID to pick an
// id on the client side before creating a document.
//
// # Concurrency
//
// A Client is immutable after construction and safe for concurrent use as
// long as its Transport is. Calls are independent of each other; callers
// that update the same document concurrently must order their writes using
// the revisions returned by the server.
package inkdrop
