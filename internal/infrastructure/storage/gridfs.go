package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gigstm/gigs-platform/internal/core/ports"
)

// GridFSStore keeps blobs in a MongoDB GridFS bucket, so uploads live next to
// the records that reference them.
type GridFSStore struct {
	bucket  *gridfs.Bucket
	baseURL string
}

func NewGridFSStore(db *mongo.Database, cfg Config) (*GridFSStore, error) {
	name := cfg.Bucket
	if name == "" {
		name = "uploads"
	}
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(name))
	if err != nil {
		return nil, fmt.Errorf("open gridfs bucket: %w", err)
	}
	return &GridFSStore{bucket: bucket, baseURL: cfg.BaseURL}, nil
}

type gridfsMeta struct {
	Owner       string `bson:"owner"`
	ContentType string `bson:"content_type"`
	Filename    string `bson:"original_name"`
}

func (s *GridFSStore) Put(ctx context.Context, owner string, u *ports.Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := newID(u.ContentType)
	opts := options.GridFSUpload().SetMetadata(gridfsMeta{
		Owner:       owner,
		ContentType: u.ContentType,
		Filename:    u.Filename,
	})
	if _, err := s.bucket.UploadFromStream(id, u.Reader, opts); err != nil {
		return "", fmt.Errorf("upload to gridfs: %w", err)
	}
	return publicURL(s.baseURL, id), nil
}

func (s *GridFSStore) Open(ctx context.Context, id string) (*ports.Blob, error) {
	if !validID(id) {
		return nil, ErrBlobNotFound
	}

	cur, err := s.bucket.FindContext(ctx, bson.M{"filename": id})
	if err != nil {
		return nil, fmt.Errorf("find gridfs file: %w", err)
	}
	defer cur.Close(ctx)

	var file struct {
		Length   int64      `bson:"length"`
		Metadata gridfsMeta `bson:"metadata"`
	}
	if !cur.Next(ctx) {
		return nil, ErrBlobNotFound
	}
	if err := cur.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode gridfs file: %w", err)
	}

	stream, err := s.bucket.OpenDownloadStreamByName(id)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open gridfs stream: %w", err)
	}
	return &ports.Blob{ContentType: file.Metadata.ContentType, Size: file.Length, Body: stream}, nil
}

// Delete removes every revision stored under the id in url.
func (s *GridFSStore) Delete(ctx context.Context, url string) error {
	id, ok := idFromURL(url)
	if !ok {
		return nil
	}

	cur, err := s.bucket.FindContext(ctx, bson.M{"filename": id})
	if err != nil {
		return fmt.Errorf("find gridfs file: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var file struct {
			ID any `bson:"_id"`
		}
		if err := cur.Decode(&file); err != nil {
			return fmt.Errorf("decode gridfs file: %w", err)
		}
		if err := s.bucket.DeleteContext(ctx, file.ID); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
			return fmt.Errorf("delete gridfs file: %w", err)
		}
	}
	return cur.Err()
}
