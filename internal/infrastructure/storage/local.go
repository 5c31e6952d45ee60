package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/gigstm/gigs-platform/internal/core/ports"
)

// LocalStore keeps blobs as flat files under a base directory.
type LocalStore struct {
	basePath string
	baseURL  string
}

func NewLocalStore(cfg Config) (*LocalStore, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "./uploads"
	}
	if err := os.MkdirAll(cfg.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &LocalStore{basePath: cfg.BasePath, baseURL: cfg.BaseURL}, nil
}

// Put writes u to a new file. The owner is not part of the path; ids are random.
func (s *LocalStore) Put(ctx context.Context, _ string, u *ports.Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := newID(u.ContentType)
	path := filepath.Join(s.basePath, id)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	if _, err := io.Copy(f, u.Reader); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close blob: %w", err)
	}
	return publicURL(s.baseURL, id), nil
}

func (s *LocalStore) Delete(_ context.Context, url string) error {
	id, ok := idFromURL(url)
	if !ok {
		return nil
	}
	if err := os.Remove(filepath.Join(s.basePath, id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

// Open returns the blob with its content type sniffed from the stored bytes.
func (s *LocalStore) Open(_ context.Context, id string) (*ports.Blob, error) {
	if !validID(id) {
		return nil, ErrBlobNotFound
	}
	path := filepath.Join(s.basePath, id)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("stat blob: %w", err)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect blob type: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return &ports.Blob{ContentType: mt.String(), Size: info.Size(), Body: f}, nil
}
