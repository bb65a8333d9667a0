package storage

import (
	"bestevents/config"
	"bestevents/infras/otel"
	"bestevents/infras/postgres"
	"bestevents/infras/redis"
	"bestevents/infras/s3"
	"bestevents/infras/sqlite"
	"bestevents/shared/constant"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// New builds the backend selected by the storage driver setting.
// Only the selected driver's client is created, the returned cleanup closes it.
func New(ctx context.Context, cfg *config.Config, otel otel.Otel) (Backend, func(), error) {
	ext, contentType := FormatExtension(cfg.Storage.Format)

	var (
		backend Backend
		err     error
	)

	switch strings.ToLower(cfg.Storage.Driver) {
	case constant.StorageDriverFile, constant.Empty:
		backend = NewFile(cfg.Storage.File.Dir, ext, nil)
	case constant.StorageDriverSQLite:
		db, openErr := sqlite.New(cfg)
		if openErr != nil {
			err = openErr
			break
		}
		backend = NewSQL(db, constant.StorageDriverSQLite)
	case constant.StorageDriverPostgres:
		db, openErr := postgres.New(cfg)
		if openErr != nil {
			err = openErr
			break
		}
		backend = NewSQL(db, constant.StorageDriverPostgres)
	case constant.StorageDriverRedis:
		client, openErr := redis.New(ctx, cfg)
		if openErr != nil {
			err = openErr
			break
		}
		backend = NewRedis(client, cfg.Storage.Redis.KeyPrefix)
	case constant.StorageDriverS3:
		client, openErr := s3.New(ctx, cfg, otel)
		if openErr != nil {
			err = openErr
			break
		}
		backend = NewS3(client, cfg.Storage.S3.Prefix, ext, contentType)
	case constant.StorageDriverMemory:
		backend = NewMemory()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
	}

	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to initialize storage")

		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info().Str("driver", backend.Driver()).Str("format", ext).Msg("Storage initialized")

	cleanup := func() {
		if closeErr := backend.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("driver", backend.Driver()).Msg("failed to close storage")
		}
	}

	return WithTracing(backend, otel), cleanup, nil
}

// FormatExtension returns the file extension and content type used for a snapshot format.
func FormatExtension(format string) (ext, contentType string) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return "yaml", constant.ContentTypeYAML
	default:
		return "json", constant.ContentTypeJSON
	}
}
