package storage

import (
	"bestevents/infras/s3"
	"bestevents/shared/constant"
	"context"
	"errors"
	"path"
)

type s3Backend struct {
	client      s3.S3
	prefix      string
	ext         string
	contentType string
}

// NewS3 returns a backend storing each resource as the object <prefix>/<name>.<ext>.
func NewS3(client s3.S3, prefix, ext, contentType string) Backend {
	return &s3Backend{client: client, prefix: prefix, ext: ext, contentType: contentType}
}

func (b *s3Backend) key(name string) string {
	return path.Join(b.prefix, name+"."+b.ext)
}

func (b *s3Backend) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := b.client.Download(ctx, b.key(name))
	if errors.Is(err, s3.ErrObjectNotFound) {
		return nil, ErrNotExist
	}

	return data, err //nolint:wrapcheck
}

func (b *s3Backend) Write(ctx context.Context, name string, data []byte) error {
	return b.client.Upload(ctx, b.key(name), b.contentType, data) //nolint:wrapcheck
}

func (b *s3Backend) Driver() string {
	return constant.StorageDriverS3
}

func (b *s3Backend) Close() error {
	return nil
}
