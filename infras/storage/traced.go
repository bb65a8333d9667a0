package storage

import (
	"bestevents/infras/otel"
	"bestevents/shared/constant"
	"context"
	"errors"
)

type tracedBackend struct {
	Backend
	otel otel.Otel
}

// WithTracing wraps a backend so that every read and write opens a storage scope.
func WithTracing(backend Backend, otel otel.Otel) Backend {
	return &tracedBackend{Backend: backend, otel: otel}
}

func (t *tracedBackend) Read(ctx context.Context, name string) (data []byte, err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Read")
	defer scope.End()
	defer func() {
		if !errors.Is(err, ErrNotExist) {
			scope.TraceIfError(err)
		}
	}()

	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: name,
		"driver":                            t.Driver(),
	})

	return t.Backend.Read(ctx, name) //nolint:wrapcheck
}

func (t *tracedBackend) Write(ctx context.Context, name string, data []byte) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Write")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: name,
		"driver":                            t.Driver(),
		"bytes":                             len(data),
	})

	return t.Backend.Write(ctx, name, data) //nolint:wrapcheck
}
