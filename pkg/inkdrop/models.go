package inkdrop

import (
	"time"
)

// Kind identifies one of the four document types. Document ids start with
// the kind followed by a colon, e.g. "note:Bk5Ivk0T".
type Kind string

const (
	KindNote Kind = "note"
	KindBook Kind = "book"
	KindTag  Kind = "tag"
	KindFile Kind = "file"
)

func (k Kind) prefix() string {
	return string(k) + ":"
}

// Doc is implemented by *Note, *Book, *Tag and *File.
type Doc interface {
	Kind() Kind
	Base() *Document
}

// Document holds the fields every stored document has. ID and Rev are set on
// anything read from the server and left empty when creating.
type Document struct {
	ID  string `json:"_id,omitempty"`
	Rev string `json:"_rev,omitempty"`

	// CreatedAt and UpdatedAt are milliseconds since the Unix epoch.
	CreatedAt int64 `json:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}

// Base returns d.
func (d *Document) Base() *Document {
	return d
}

// Created returns CreatedAt as a time, or the zero time when unset.
func (d *Document) Created() time.Time {
	return millisToTime(d.CreatedAt)
}

// Updated returns UpdatedAt as a time, or the zero time when unset.
func (d *Document) Updated() time.Time {
	return millisToTime(d.UpdatedAt)
}

func millisToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// DocTypeMarkdown is the only note doctype.
const DocTypeMarkdown = "markdown"

// NoteStatus is the workflow state of a note.
type NoteStatus string

const (
	NoteStatusNone      NoteStatus = "none"
	NoteStatusActive    NoteStatus = "active"
	NoteStatusOnHold    NoteStatus = "onHold"
	NoteStatusCompleted NoteStatus = "completed"
	NoteStatusDropped   NoteStatus = "dropped"
)

var noteStatuses = []string{
	string(NoteStatusNone),
	string(NoteStatusActive),
	string(NoteStatusOnHold),
	string(NoteStatusCompleted),
	string(NoteStatusDropped),
}

// NoteShare is the visibility of a note.
type NoteShare string

const (
	NoteSharePrivate NoteShare = "private"
	NoteSharePublic  NoteShare = "public"
)

var noteShares = []string{
	string(NoteSharePrivate),
	string(NoteSharePublic),
}

// Note is a markdown note. BookID refers to the notebook the note is filed
// in; Tags holds tag ids.
type Note struct {
	Document

	DocType           string     `json:"doctype"`
	BookID            string     `json:"bookId"`
	Status            NoteStatus `json:"status"`
	Share             NoteShare  `json:"share,omitempty"`
	NumOfTasks        int        `json:"numOfTasks,omitempty"`
	NumOfCheckedTasks int        `json:"numOfCheckedTasks,omitempty"`
	Pinned            bool       `json:"pinned"`
	Title             string     `json:"title"`
	Body              string     `json:"body"`
	Tags              []string   `json:"tags"`
}

func (n *Note) Kind() Kind { return KindNote }

// Book is a notebook. ParentBookID nests it under another notebook.
type Book struct {
	Document

	Name         string `json:"name"`
	ParentBookID string `json:"parentBookId,omitempty"`
}

func (b *Book) Kind() Kind { return KindBook }

// Tag labels notes. Count is maintained by the server.
type Tag struct {
	Document

	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Count int    `json:"count,omitempty"`
}

func (t *Tag) Kind() Kind { return KindTag }

// File is an attachment document, usually an image referenced from notes
// listed in PublicIn.
type File struct {
	Document

	Name          string                `json:"name"`
	ContentType   string                `json:"contentType,omitempty"`
	ContentLength int64                 `json:"contentLength,omitempty"`
	MD5Digest     string                `json:"md5digest,omitempty"`
	Revpos        int                   `json:"revpos,omitempty"`
	PublicIn      []string              `json:"publicIn,omitempty"`
	Attachments   map[string]Attachment `json:"_attachments,omitempty"`
}

func (f *File) Kind() Kind { return KindFile }

// Attachment is one entry of a file's attachment map. Data is base64 and is
// only present when requested or when uploading.
type Attachment struct {
	Digest      string `json:"digest,omitempty"`
	ContentType string `json:"content_type"`
	Revpos      int    `json:"revpos,omitempty"`
	Data        string `json:"data,omitempty"`
}

// MutationResponse acknowledges a create, update or delete.
type MutationResponse struct {
	OK  bool   `json:"ok"`
	ID  string `json:"id"`
	Rev string `json:"rev"`
}

// ServerInfo describes the running application.
type ServerInfo struct {
	Version string `json:"version"`
	OK      bool   `json:"ok"`
}
