package inkdrop

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
)

// FileService reads and creates file attachments under /files.
type FileService struct {
	client *Client
}

// List returns files.
func (s *FileService) List(ctx context.Context, params *Params) ([]File, error) {
	return list[File](ctx, s.client, "/files", params, FileShape)
}

// Get returns the file with the given id. Pass GetOptions{Attachments: true}
// to include the attachment data.
func (s *FileService) Get(ctx context.Context, id string, params *Params) (*File, error) {
	return get[File](ctx, s.client, id, params, FileShape)
}

// Create stores file.
func (s *FileService) Create(ctx context.Context, file *File) (*MutationResponse, error) {
	if file == nil {
		return nil, errors.New("file is required")
	}
	return mutate(ctx, s.client, http.MethodPost, "/files", file)
}

// NewFileInput builds a file ready for Create from raw content. The content
// type is detected from data and the content is attached as "index".
func NewFileInput(name string, data []byte) *File {
	contentType := mimetype.Detect(data).String()
	sum := md5.Sum(data)

	return &File{
		Name:          name,
		ContentType:   contentType,
		ContentLength: int64(len(data)),
		MD5Digest:     base64.StdEncoding.EncodeToString(sum[:]),
		PublicIn:      []string{},
		Attachments: map[string]Attachment{
			"index": {
				ContentType: contentType,
				Data:        base64.StdEncoding.EncodeToString(data),
			},
		},
	}
}
