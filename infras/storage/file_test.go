package storage_test

import (
	"bestevents/infras/storage"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLock struct {
	locked bool
	err    error
}

func (s *stubLock) TryLockContext(_ context.Context, _ time.Duration) (bool, error) {
	return s.locked, s.err
}

func (s *stubLock) TryRLockContext(_ context.Context, _ time.Duration) (bool, error) {
	return s.locked, s.err
}

func (s *stubLock) Unlock() error {
	return nil
}

func TestFileBackend_ReadMissing(t *testing.T) {
	backend := storage.NewFile(t.TempDir(), "json", nil)

	_, err := backend.Read(context.Background(), "guests")

	assert.ErrorIs(t, err, storage.ErrNotExist)
}

func TestFileBackend_WriteThenRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	backend := storage.NewFile(dir, "json", nil)
	ctx := context.Background()

	require.NoError(t, backend.Write(ctx, "guests", []byte(`{"first":1}`)))
	require.NoError(t, backend.Write(ctx, "guests", []byte(`{"second":2}`)))

	data, err := backend.Read(ctx, "guests")
	require.NoError(t, err)
	assert.JSONEq(t, `{"second":2}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp", "temporary files must not be left behind")
	}

	assert.FileExists(t, filepath.Join(dir, "guests.json"))
}

func TestFileBackend_SeparateResources(t *testing.T) {
	backend := storage.NewFile(t.TempDir(), "yaml", nil)
	ctx := context.Background()

	require.NoError(t, backend.Write(ctx, "events", []byte("a")))
	require.NoError(t, backend.Write(ctx, "clients_events", []byte("b")))

	events, err := backend.Read(ctx, "events")
	require.NoError(t, err)
	clients, err := backend.Read(ctx, "clients_events")
	require.NoError(t, err)

	assert.Equal(t, "a", string(events))
	assert.Equal(t, "b", string(clients))
}

func TestFileBackend_LockFailures(t *testing.T) {
	tests := []struct {
		name string
		lock *stubLock
	}{
		{name: "lock error", lock: &stubLock{err: errors.New("permission denied")}},
		{name: "lock timeout", lock: &stubLock{locked: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "venues.json"), []byte("{}"), 0o600))

			backend := storage.NewFile(dir, "json", func(string) storage.FileLock { return tt.lock })

			err := backend.Write(context.Background(), "venues", []byte("{}"))
			assert.Error(t, err)

			_, err = backend.Read(context.Background(), "venues")
			assert.Error(t, err)
			assert.NotErrorIs(t, err, storage.ErrNotExist)
		})
	}
}

func TestFileBackend_UnwritableDirectory(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	backend := storage.NewFile(filepath.Join(blocker, "data"), "json", nil)

	err := backend.Write(context.Background(), "suppliers", []byte("{}"))
	assert.Error(t, err)
}
