package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrations are applied in order at startup. Statements are idempotent so
// repeated boots are safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		event_id              TEXT PRIMARY KEY,
		title                 TEXT NOT NULL,
		description           TEXT NOT NULL,
		date                  TEXT NOT NULL,
		location              TEXT NOT NULL,
		capacity              INTEGER NOT NULL CHECK (capacity > 0),
		organizer             TEXT NOT NULL,
		status                TEXT NOT NULL,
		waitlist_enabled      BOOLEAN NOT NULL DEFAULT FALSE,
		current_registrations INTEGER NOT NULL DEFAULT 0,
		waitlist_count        INTEGER NOT NULL DEFAULT 0,
		waitlist_seq          INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id    TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS registrations (
		event_id        TEXT NOT NULL,
		user_id         TEXT NOT NULL,
		registration_id TEXT NOT NULL,
		status          TEXT NOT NULL,
		position        INTEGER,
		registered_at   TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (event_id, user_id)
	)`,
	// Secondary access path for listing a user's events.
	`CREATE INDEX IF NOT EXISTS registrations_user_id_idx ON registrations (user_id)`,
}

// Migrate applies the schema migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}
	log.Println("✓ Migrations applied")
	return nil
}
