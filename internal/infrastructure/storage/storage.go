// Package storage provides the blob stores behind uploaded onboarding files.
package storage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
)

// ErrBlobNotFound is returned by Open for unknown or malformed ids.
var ErrBlobNotFound = domain.ErrFileNotFound

// Config selects and configures a blob store.
type Config struct {
	Backend  string // "local" or "gridfs"
	BasePath string // local only
	BaseURL  string // public prefix of returned URLs, e.g. https://api.example.com
	Bucket   string // gridfs only
}

// idPattern accepts the ids this package hands out: a uuid and an optional extension.
var idPattern = regexp.MustCompile(`^[0-9a-f-]{36}(\.[a-z0-9]{1,8})?$`)

// newID returns a fresh object id carrying the extension of the content type.
func newID(contentType string) string {
	id := uuid.NewString()
	if m := mimetype.Lookup(contentType); m != nil {
		id += m.Extension()
	}
	return id
}

func validID(id string) bool { return idPattern.MatchString(id) }

func publicURL(baseURL, id string) string {
	return fmt.Sprintf("%s/files/%s", strings.TrimRight(baseURL, "/"), id)
}

// idFromURL recovers the object id from a URL built by publicURL.
func idFromURL(url string) (string, bool) {
	i := strings.LastIndex(url, "/files/")
	if i < 0 {
		return "", false
	}
	id := url[i+len("/files/"):]
	return id, validID(id)
}

var (
	_ ports.BlobStore = (*LocalStore)(nil)
	_ ports.BlobStore = (*GridFSStore)(nil)
)
