package sqlite

import (
	"bestevents/config"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const createCollectionsTable = `CREATE TABLE IF NOT EXISTS collections (
	name TEXT PRIMARY KEY,
	payload BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// New opens the database file configured for the sqlite storage driver.
func New(config *config.Config) (*sqlx.DB, error) {
	return Open(config.Storage.SQLite.Path)
}

// Open opens the database at path and makes sure the collections table exists.
// The special path ":memory:" opens a private in-memory database.
func Open(path string) (*sqlx.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// a single connection keeps ":memory:" databases shared and serialises writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createCollectionsTable); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("failed to create collections table: %w", err)
	}

	log.Info().Str("path", path).Msg("Opened sqlite database")

	return db, nil
}
