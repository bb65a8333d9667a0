// Package persistence loads and saves whole collections through a storage backend.
package persistence

import (
	"bestevents/infras/storage"
	"bestevents/shared/timezone"
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"
)

// Snapshot is the stored form of a collection.
// LastKey keeps the highest key ever issued so removed keys are not handed out again after a restart.
type Snapshot[T any] struct {
	Collection string    `json:"collection" yaml:"collection"`
	LastKey    int       `json:"last_key" yaml:"last_key"`
	SavedAt    time.Time `json:"saved_at" yaml:"saved_at"`
	Records    map[int]T `json:"records" yaml:"records"`
}

type Adapter[T any] struct {
	backend storage.Backend
	codec   Codec
}

func NewAdapter[T any](backend storage.Backend, codec Codec) *Adapter[T] {
	return &Adapter[T]{backend: backend, codec: codec}
}

// Load returns the stored snapshot of a collection.
// A resource that does not exist yet, or is empty, loads as an empty collection.
func (a *Adapter[T]) Load(ctx context.Context, name string) (Snapshot[T], error) {
	empty := Snapshot[T]{Collection: name, Records: map[int]T{}}

	data, err := a.backend.Read(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return empty, nil
		}

		return empty, fmt.Errorf("failed to read collection %s: %w", name, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return empty, nil
	}

	var snapshot Snapshot[T]
	if err := a.codec.Unmarshal(data, &snapshot); err != nil {
		return empty, fmt.Errorf("failed to decode collection %s: %w", name, err)
	}

	if snapshot.Records == nil {
		snapshot.Records = map[int]T{}
	}

	snapshot.Collection = name

	return snapshot, nil
}

// Save replaces the stored collection with snapshot.
func (a *Adapter[T]) Save(ctx context.Context, snapshot Snapshot[T]) error {
	if snapshot.SavedAt.IsZero() {
		snapshot.SavedAt = timezone.Now()
	}

	data, err := a.codec.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", snapshot.Collection, err)
	}

	if err := a.backend.Write(ctx, snapshot.Collection, data); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", snapshot.Collection, err)
	}

	return nil
}
