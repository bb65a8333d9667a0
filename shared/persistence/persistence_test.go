package persistence_test

import (
	"bestevents/infras/storage"
	"bestevents/shared/persistence"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guest struct {
	FirstName string   `json:"first_name" yaml:"first_name"`
	LastName  string   `json:"last_name" yaml:"last_name"`
	Tags      []string `json:"tags" yaml:"tags"`
}

type failingBackend struct {
	storage.Backend
	readErr  error
	writeErr error
}

func (f *failingBackend) Read(context.Context, string) ([]byte, error) {
	return nil, f.readErr
}

func (f *failingBackend) Write(context.Context, string, []byte) error {
	return f.writeErr
}

func TestNewCodec(t *testing.T) {
	tests := []struct {
		format   string
		wantName string
		wantErr  bool
	}{
		{format: "", wantName: "json"},
		{format: "json", wantName: "json"},
		{format: "YAML", wantName: "yaml"},
		{format: "yml", wantName: "yaml"},
		{format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			codec, err := persistence.NewCodec(tt.format)

			if tt.wantErr {
				assert.ErrorIs(t, err, persistence.ErrUnknownFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, codec.Name())
		})
	}
}

func TestAdapter_RoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			codec, err := persistence.NewCodec(format)
			require.NoError(t, err)

			adapter := persistence.NewAdapter[guest](storage.NewMemory(), codec)
			ctx := context.Background()
			savedAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

			snapshot := persistence.Snapshot[guest]{
				Collection: "guests",
				LastKey:    7,
				SavedAt:    savedAt,
				Records: map[int]guest{
					1: {FirstName: "Ada", LastName: "Lovelace", Tags: []string{"vip"}},
					7: {FirstName: "Alan", LastName: "Turing"},
				},
			}

			require.NoError(t, adapter.Save(ctx, snapshot))

			loaded, err := adapter.Load(ctx, "guests")
			require.NoError(t, err)

			assert.Equal(t, "guests", loaded.Collection)
			assert.Equal(t, 7, loaded.LastKey)
			assert.True(t, savedAt.Equal(loaded.SavedAt))
			assert.Equal(t, snapshot.Records[1], loaded.Records[1])
			assert.Equal(t, "Turing", loaded.Records[7].LastName)
			assert.Len(t, loaded.Records, 2)
		})
	}
}

func TestAdapter_LoadEmpty(t *testing.T) {
	codec, err := persistence.NewCodec("json")
	require.NoError(t, err)

	ctx := context.Background()
	backend := storage.NewMemory()
	adapter := persistence.NewAdapter[guest](backend, codec)

	loaded, err := adapter.Load(ctx, "guests")
	require.NoError(t, err)
	assert.Equal(t, "guests", loaded.Collection)
	assert.Empty(t, loaded.Records)
	assert.NotNil(t, loaded.Records)
	assert.Zero(t, loaded.LastKey)

	require.NoError(t, backend.Write(ctx, "guests", []byte("  \n")))

	loaded, err = adapter.Load(ctx, "guests")
	require.NoError(t, err)
	assert.Empty(t, loaded.Records)

	require.NoError(t, backend.Write(ctx, "guests", []byte(`{"collection":"guests","last_key":0}`)))

	loaded, err = adapter.Load(ctx, "guests")
	require.NoError(t, err)
	assert.NotNil(t, loaded.Records)
}

func TestAdapter_Failures(t *testing.T) {
	codec, err := persistence.NewCodec("json")
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("corrupt payload", func(t *testing.T) {
		backend := storage.NewMemory()
		require.NoError(t, backend.Write(ctx, "guests", []byte("{not json")))

		_, err := persistence.NewAdapter[guest](backend, codec).Load(ctx, "guests")
		assert.Error(t, err)
	})

	t.Run("read failure", func(t *testing.T) {
		backend := &failingBackend{readErr: errors.New("connection refused")}

		_, err := persistence.NewAdapter[guest](backend, codec).Load(ctx, "guests")
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("write failure", func(t *testing.T) {
		backend := &failingBackend{writeErr: errors.New("disk full")}

		err := persistence.NewAdapter[guest](backend, codec).Save(ctx, persistence.Snapshot[guest]{Collection: "guests"})
		assert.ErrorContains(t, err, "disk full")
	})
}
