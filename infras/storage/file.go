package storage

import (
	"bestevents/shared/constant"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockTimeout    = 3 * time.Second
	lockRetryDelay = 50 * time.Millisecond
	filePerm       = 0o644
	dirPerm        = 0o755
)

// FileLock guards a resource file against concurrent writers in other processes.
type FileLock interface {
	TryLockContext(ctx context.Context, retryDelay time.Duration) (bool, error)
	TryRLockContext(ctx context.Context, retryDelay time.Duration) (bool, error)
	Unlock() error
}

// FileLockFactory creates a FileLock for the given lock path.
type FileLockFactory func(path string) FileLock

func flockFactory(path string) FileLock {
	return flock.New(path)
}

type fileBackend struct {
	dir   string
	ext   string
	locks FileLockFactory
}

// NewFile returns a backend storing each resource as <dir>/<name>.<ext>.
// A nil factory uses gofrs/flock.
func NewFile(dir, ext string, locks FileLockFactory) Backend {
	if locks == nil {
		locks = flockFactory
	}

	return &fileBackend{dir: dir, ext: ext, locks: locks}
}

func (f *fileBackend) path(name string) string {
	return filepath.Join(f.dir, name+"."+f.ext)
}

func (f *fileBackend) Read(ctx context.Context, name string) ([]byte, error) {
	path := f.path(name)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}

	unlock, err := f.lock(ctx, path, true)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}

		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}

// Write stores data in a temporary file next to the target and renames it into place,
// so a reader never observes a partially written resource.
func (f *fileBackend) Write(ctx context.Context, name string, data []byte) error {
	if err := os.MkdirAll(f.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	path := f.path(name)

	unlock, err := f.lock(ctx, path, false)
	if err != nil {
		return err
	}
	defer unlock()

	tmp, err := os.CreateTemp(f.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpPath, filePerm)
	}
	if err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

func (f *fileBackend) lock(ctx context.Context, path string, shared bool) (func(), error) {
	if err := os.MkdirAll(f.dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	l := f.locks(path + ".lock")

	var (
		locked bool
		err    error
	)
	if shared {
		locked, err = l.TryRLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = l.TryLockContext(ctx, lockRetryDelay)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock on %s: %w", path, err)
	}

	if !locked {
		return nil, fmt.Errorf("failed to acquire lock on %s: timed out", path)
	}

	return func() { _ = l.Unlock() }, nil
}

func (f *fileBackend) Driver() string {
	return constant.StorageDriverFile
}

func (f *fileBackend) Close() error {
	return nil
}
