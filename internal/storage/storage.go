// Package storage provides the object-store boundary for uploaded process
// documents: a BlobStore abstraction, a filesystem-backed implementation, and
// a signer producing time-limited download URLs.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when a blob key does not exist in the store.
var ErrNotFound = errors.New("blob not found")

// BlobStore is the object-storage collaborator. Keys are slash-separated,
// namespaced by process_key.
type BlobStore interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}
