package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Postgres stores each key as a row in the kv_store table. The table is
// created by the boot migrations.
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres creates a Postgres-backed KV over an established connection.
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

// Load retrieves the value stored under key.
func (p *Postgres) Load(ctx context.Context, key string) (string, bool, error) {
	const q = `SELECT value FROM kv_store WHERE key = $1`
	var value string
	if err := p.db.GetContext(ctx, &value, q, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Save upserts the value under key.
func (p *Postgres) Save(ctx context.Context, key, value string) error {
	const q = `
        INSERT INTO kv_store (key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	_, err := p.db.ExecContext(ctx, q, key, value)
	return err
}
