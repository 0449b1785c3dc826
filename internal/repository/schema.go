package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate applies the schema. Every statement is idempotent so this can run
// on each start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'CUSTOMER',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS properties (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			price NUMERIC(14,2) NOT NULL,
			type TEXT NOT NULL,
			location TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			contact_email TEXT NOT NULL DEFAULT '',
			contact_phone TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'PENDING',
			date_listed TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			owner_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS properties_status_idx ON properties (status);`,
		`CREATE INDEX IF NOT EXISTS properties_owner_idx ON properties (owner_id);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}
