// Package repository implements all database queries for the event
// management API. It uses pgx directly (no ORM) for transparency and
// performance.
//
// Counters on the events row (current_registrations, waitlist_count) are
// shared mutable state contended by concurrent requests. Every mutation of
// them is a single conditional, relative UPDATE (increment/decrement guarded
// by a precondition) rather than a read-compute-overwrite, so concurrent
// requests serialize at the storage layer instead of racing on stale reads.
// Duplicate checks likewise rely on conditional writes (ON CONFLICT DO
// NOTHING) instead of read-then-write.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrEventNotFound is returned when a referenced event does not exist.
var ErrEventNotFound = errors.New("event not found")

// ErrUserNotFound is returned when a referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrRegistrationNotFound is returned when no ledger entry exists for the
// requested (event, user) pair.
var ErrRegistrationNotFound = errors.New("registration not found")

// ErrDuplicateUser is returned when the same userId is created twice.
var ErrDuplicateUser = errors.New("user already exists")

// ErrDuplicateRegistration is returned when a user registers twice for the
// same event.
var ErrDuplicateRegistration = errors.New("user already registered for this event")

// ErrEventFull is returned when an event has no remaining capacity and its
// waitlist is disabled.
var ErrEventFull = errors.New("event is full and waitlist is not enabled")

// DB is the subset of pgxpool.Pool the repositories use. Satisfied by
// *pgxpool.Pool in production and by pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
