// Package storage holds the backends a collection snapshot can be persisted to.
//
// A backend stores opaque bytes under a collection name and knows nothing about
// the records inside. Every backend reports a missing resource as ErrNotExist so
// that callers can start from an empty collection.
package storage

import (
	"context"
	"errors"
)

var ErrNotExist = errors.New("storage resource does not exist")

type Backend interface {
	// Read returns the stored bytes of the named resource or ErrNotExist.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write replaces the named resource with data.
	Write(ctx context.Context, name string, data []byte) error
	// Driver names the backend for logs and traces.
	Driver() string
	Close() error
}
