package ports

import (
	"context"
	"io"
)

// Upload is one file received in a request.
type Upload struct {
	Filename    string
	ContentType string // sniffed from the content, not the client header
	Size        int64
	Reader      io.Reader
}

// Blob is a stored object opened for reading.
type Blob struct {
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// BlobStore persists uploaded files and resolves them back by id.
type BlobStore interface {
	// Put stores u on behalf of owner and returns the public URL recorded
	// on the entity.
	Put(ctx context.Context, owner string, u *Upload) (string, error)
	Open(ctx context.Context, id string) (*Blob, error)
	// Delete removes the object behind a URL returned by Put. Unknown URLs
	// are not an error.
	Delete(ctx context.Context, url string) error
}
