package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	queryReadCollection = `SELECT payload FROM collections WHERE name = :name`

	queryWriteCollection = `INSERT INTO collections (name, payload, updated_at)
		VALUES (:name, :payload, :updated_at)
		ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
)

type collectionRow struct {
	Name      string    `db:"name"`
	Payload   []byte    `db:"payload"`
	UpdatedAt time.Time `db:"updated_at"`
}

type sqlBackend struct {
	db     *sqlx.DB
	driver string
}

// NewSQL returns a backend keeping one row per collection in the collections table.
// The same queries serve sqlite and postgres, bind variables are rebound per driver.
func NewSQL(db *sqlx.DB, driver string) Backend {
	return &sqlBackend{db: db, driver: driver}
}

func (s *sqlBackend) Read(ctx context.Context, name string) ([]byte, error) {
	stmt, err := s.db.PrepareNamedContext(ctx, queryReadCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare read query: %w", err)
	}
	defer stmt.Close()

	var payload []byte
	if err := stmt.GetContext(ctx, &payload, map[string]any{"name": name}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotExist
		}

		return nil, fmt.Errorf("failed to read collection %s: %w", name, err)
	}

	return payload, nil
}

func (s *sqlBackend) Write(ctx context.Context, name string, data []byte) error {
	row := collectionRow{
		Name:      name,
		Payload:   data,
		UpdatedAt: time.Now().UTC(),
	}

	if _, err := s.db.NamedExecContext(ctx, queryWriteCollection, row); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}

	return nil
}

func (s *sqlBackend) Driver() string {
	return s.driver
}

func (s *sqlBackend) Close() error {
	return s.db.Close()
}
