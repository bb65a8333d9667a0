package storage

import (
	"bestevents/shared"
	"bestevents/shared/constant"
	"context"
	"errors"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
)

type redisBackend struct {
	client goRedis.UniversalClient
	prefix string
}

// NewRedis returns a backend storing each resource under the key <prefix>:<name>.
func NewRedis(client goRedis.UniversalClient, prefix string) Backend {
	return &redisBackend{client: client, prefix: prefix}
}

func (r *redisBackend) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := r.client.Get(ctx, shared.BuildKey(r.prefix, name)).Bytes()
	if err != nil {
		if errors.Is(err, goRedis.Nil) {
			return nil, ErrNotExist
		}

		return nil, fmt.Errorf("failed to read %s from redis: %w", name, err)
	}

	return data, nil
}

func (r *redisBackend) Write(ctx context.Context, name string, data []byte) error {
	if err := r.client.Set(ctx, shared.BuildKey(r.prefix, name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", name, err)
	}

	return nil
}

func (r *redisBackend) Driver() string {
	return constant.StorageDriverRedis
}

func (r *redisBackend) Close() error {
	return r.client.Close()
}
