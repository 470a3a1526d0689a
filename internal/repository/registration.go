package repository

import (
	"context"
	"errors"
	"fmt"

	"eventmanagement/internal/model"

	"github.com/jackc/pgx/v5"
)

// RegistrationRepository handles persistence for the registration ledger:
// one entry per (event, user) pair, keyed on the pair with a secondary
// lookup path by user.
type RegistrationRepository struct {
	db DB
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create inserts a ledger entry if none exists for the pair. Returns false
// when the pair is already registered or waitlisted; the conditional insert
// is the duplicate check, so two concurrent registrations for the same pair
// cannot both succeed.
func (r *RegistrationRepository) Create(ctx context.Context, reg *model.Registration) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO registrations (event_id, user_id, registration_id, status, position, registered_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (event_id, user_id) DO NOTHING`,
		reg.EventID, reg.UserID, reg.RegistrationID, reg.Status, reg.Position, reg.RegisteredAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert registration: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Get returns the ledger entry for the pair or ErrRegistrationNotFound.
func (r *RegistrationRepository) Get(ctx context.Context, eventID, userID string) (*model.Registration, error) {
	var reg model.Registration
	err := r.db.QueryRow(ctx,
		`SELECT registration_id, event_id, user_id, status, position, registered_at
		 FROM registrations WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	).Scan(&reg.RegistrationID, &reg.EventID, &reg.UserID, &reg.Status, &reg.Position, &reg.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return &reg, nil
}

// Delete removes the ledger entry and reports the status it had. Reading the
// prior status atomically with the delete means a concurrent unregister for
// the same pair gets ErrRegistrationNotFound instead of decrementing a
// counter twice.
func (r *RegistrationRepository) Delete(ctx context.Context, eventID, userID string) (string, error) {
	var status string
	err := r.db.QueryRow(ctx,
		`DELETE FROM registrations WHERE event_id = $1 AND user_id = $2 RETURNING status`,
		eventID, userID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrRegistrationNotFound
		}
		return "", fmt.Errorf("delete registration: %w", err)
	}
	return status, nil
}

// Waitlist moves the entry onto the waitlist at the given position.
func (r *RegistrationRepository) Waitlist(ctx context.Context, eventID, userID string, position int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE registrations SET status = $3, position = $4
		 WHERE event_id = $1 AND user_id = $2`,
		eventID, userID, model.StatusWaitlisted, position,
	)
	if err != nil {
		return fmt.Errorf("waitlist registration: %w", err)
	}
	return nil
}

// OldestWaitlisted returns the waitlisted entry with the minimum assigned
// position for the event, or ErrRegistrationNotFound when none qualifies.
// Entries with a NULL position are excluded: a registration sits in that
// state between its ledger insert and its position update, and promoting it
// there would let the in-flight position update flip it back to waitlisted
// while the seat stays claimed.
func (r *RegistrationRepository) OldestWaitlisted(ctx context.Context, eventID string) (*model.Registration, error) {
	var reg model.Registration
	err := r.db.QueryRow(ctx,
		`SELECT registration_id, event_id, user_id, status, position, registered_at
		 FROM registrations
		 WHERE event_id = $1 AND status = $2 AND position IS NOT NULL
		 ORDER BY position ASC
		 LIMIT 1`,
		eventID, model.StatusWaitlisted,
	).Scan(&reg.RegistrationID, &reg.EventID, &reg.UserID, &reg.Status, &reg.Position, &reg.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("oldest waitlisted: %w", err)
	}
	return &reg, nil
}

// Promote flips a waitlisted entry to registered and clears its position.
// The status guard makes the promote conditional: it reports false when the
// entry was unregistered or already promoted in the meantime.
func (r *RegistrationRepository) Promote(ctx context.Context, eventID, userID string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE registrations SET status = $3, position = NULL
		 WHERE event_id = $1 AND user_id = $2 AND status = $4`,
		eventID, userID, model.StatusRegistered, model.StatusWaitlisted,
	)
	if err != nil {
		return false, fmt.Errorf("promote registration: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByUser returns all ledger entries for a user across events, via the
// user_id index.
func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]model.Registration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT registration_id, event_id, user_id, status, position, registered_at
		 FROM registrations WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrations by user: %w", err)
	}
	defer rows.Close()

	var regs []model.Registration
	for rows.Next() {
		var reg model.Registration
		if err := rows.Scan(&reg.RegistrationID, &reg.EventID, &reg.UserID,
			&reg.Status, &reg.Position, &reg.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
