package inkdrop

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Times(t *testing.T) {
	d := Document{CreatedAt: 1700000000000}
	assert.Equal(t, time.UnixMilli(1700000000000), d.Created())
	assert.True(t, d.Updated().IsZero())
}

func TestNote_MarshalOmitsServerFields(t *testing.T) {
	data, err := json.Marshal(&Note{
		DocType: DocTypeMarkdown,
		BookID:  "book:x",
		Status:  NoteStatusOnHold,
		Title:   "t",
		Tags:    []string{},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"doctype": "markdown",
		"bookId": "book:x",
		"status": "onHold",
		"pinned": false,
		"title": "t",
		"body": "",
		"tags": []
	}`, string(data))
}

func TestDecodeDocument(t *testing.T) {
	doc, err := decodeDocument(parseJSON(t, notePayload))
	require.NoError(t, err)

	note, ok := doc.(*Note)
	require.True(t, ok)
	assert.Equal(t, "note:Bk5Ivk0T", note.ID)
	assert.Equal(t, "3-a1b2", note.Rev)
	assert.Equal(t, int64(1700000000000), note.CreatedAt)
	assert.Equal(t, NoteSharePrivate, note.Share)
	assert.Equal(t, 2, note.NumOfTasks)
	assert.Equal(t, 1, note.NumOfCheckedTasks)
	assert.Equal(t, []string{"tag:a", "tag:b"}, note.Tags)

	doc, err = decodeDocument(parseJSON(t, filePayload))
	require.NoError(t, err)
	file := doc.(*File)
	assert.Equal(t, []string{"note:Bk5Ivk0T"}, file.PublicIn)
	assert.Equal(t, Attachment{
		Digest:      "md5-rL0Y20zC+Fzt72VPzMSk2A==",
		ContentType: "image/png",
		Revpos:      1,
	}, file.Attachments["index"])
}

func TestNewFileInput(t *testing.T) {
	data := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	f := NewFileInput("pixel.png", data)

	assert.Empty(t, f.ID)
	assert.Equal(t, "pixel.png", f.Name)
	assert.Equal(t, "image/png", f.ContentType)
	assert.Equal(t, int64(len(data)), f.ContentLength)
	assert.NotEmpty(t, f.MD5Digest)

	att, ok := f.Attachments["index"]
	require.True(t, ok)
	assert.Equal(t, "image/png", att.ContentType)

	raw, err := base64.StdEncoding.DecodeString(att.Data)
	require.NoError(t, err)
	assert.Equal(t, data, raw)
}

func TestErrors(t *testing.T) {
	apiErr := &APIError{Status: http.StatusNotFound, StatusText: "Not Found"}
	assert.Equal(t, "HTTP 404 Not Found", apiErr.Error())
	assert.True(t, IsNotFound(fmt.Errorf("get: %w", apiErr)))
	assert.False(t, IsNotFound(&APIError{Status: http.StatusInternalServerError}))
	assert.False(t, IsNotFound(errors.New("404")))

	inner := errors.New("status: required key is missing")
	validationErr := &ValidationError{Shape: "note", Err: inner}
	assert.Equal(t, "invalid note: status: required key is missing", validationErr.Error())
	assert.ErrorIs(t, validationErr, inner)
}
