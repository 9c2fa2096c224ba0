package storage

import (
	"context"
	"io"
)

// DocumentStorage persists uploaded rental documents (ID cards, driving
// licenses, passports) and serves them back by key. Keys are opaque paths
// owned by the service layer.
type DocumentStorage interface {
	Save(ctx context.Context, key string, contentType string, body io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, int64, error)
	Delete(ctx context.Context, key string) error
	// PublicURL returns the URL a stored document is served from.
	PublicURL(key string) string
}
