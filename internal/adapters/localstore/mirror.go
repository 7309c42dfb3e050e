// Package localstore implements the key-value mirror used for offline
// preference reads, backed by a node-local sqlite file.
package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/spendio/spendio_backend/internal/apperrors"
	portsrepo "github.com/spendio/spendio_backend/internal/core/ports/repositories"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// Mirror is a sqlite-backed LocalMirror. It caches the last-known preferred
// currency and saved currency codes so reads keep working when the primary
// store is unreachable.
type Mirror struct {
	db *sql.DB
}

// Open opens (and if needed creates) the mirror database at path.
// ":memory:" gives an ephemeral mirror, which tests use.
func Open(path string) (*Mirror, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mirror database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize mirror schema: %w", err)
	}
	return &Mirror{db: db}, nil
}

// Close closes the underlying database.
func (m *Mirror) Close() error {
	return m.db.Close()
}

// Get returns the value stored under key, or apperrors.ErrNotFound.
func (m *Mirror) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := m.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to read mirror key %s: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, overwriting any previous value.
func (m *Mirror) Put(ctx context.Context, key string, value string) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;
	`
	if _, err := m.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write mirror key %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (m *Mirror) Delete(ctx context.Context, key string) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete mirror key %s: %w", key, err)
	}
	return nil
}

var _ portsrepo.LocalMirror = (*Mirror)(nil)
