package service

import (
	"context"
	"errors"
)

// ErrUnsupportedMediaType is returned for uploads that are not a supported image format.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// MediaUpload is a file received from a client.
type MediaUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// MediaStore persists uploaded files and returns a durable public URL.
type MediaStore interface {
	// Upload stores the file under the folder and returns its URL.
	// Returns ErrUnsupportedMediaType when the content is not an accepted image.
	Upload(ctx context.Context, folder string, file MediaUpload) (string, error)
}
