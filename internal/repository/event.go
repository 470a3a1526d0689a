package repository

import (
	"context"
	"errors"
	"fmt"

	"eventmanagement/internal/model"

	"github.com/jackc/pgx/v5"
)

const eventColumns = `event_id, title, description, date, location, capacity,
	 organizer, status, waitlist_enabled, current_registrations, waitlist_count`

// EventRepository handles persistence for events, including the two derived
// counters the registration coordinator maintains.
type EventRepository struct {
	db DB
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event. Counters start at zero regardless of the
// caller's payload.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO events (event_id, title, description, date, location, capacity,
		 organizer, status, waitlist_enabled, current_registrations, waitlist_count, waitlist_seq)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, 0, 0)`,
		event.EventID, event.Title, event.Description, event.Date, event.Location,
		event.Capacity, event.Organizer, event.Status, event.WaitlistEnabled,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID returns a single event or ErrEventNotFound.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var e model.Event
	err := r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE event_id = $1`,
		id,
	).Scan(&e.EventID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Capacity,
		&e.Organizer, &e.Status, &e.WaitlistEnabled, &e.CurrentRegistrations, &e.WaitlistCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// List returns all events, optionally filtered by exact-match status.
func (r *EventRepository) List(ctx context.Context, status string) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.EventID, &e.Title, &e.Description, &e.Date, &e.Location,
			&e.Capacity, &e.Organizer, &e.Status, &e.WaitlistEnabled,
			&e.CurrentRegistrations, &e.WaitlistCount); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update overwrites the mutable event fields with the merged values the
// service produced. Counters and the waitlist sequence are untouched.
func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events
		 SET title = $2, description = $3, date = $4, location = $5,
		     capacity = $6, organizer = $7, status = $8, waitlist_enabled = $9
		 WHERE event_id = $1`,
		event.EventID, event.Title, event.Description, event.Date, event.Location,
		event.Capacity, event.Organizer, event.Status, event.WaitlistEnabled,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Delete removes an event. Outstanding registrations are NOT cascaded; the
// read side tolerates the orphans (see RegistrationService.ListUserEvents).
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE event_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

// ClaimSeat atomically takes one confirmed seat if capacity allows. Returns
// false when the event is already full (or missing); the guard makes
// concurrent claims serialize so current_registrations never exceeds capacity.
func (r *EventRepository) ClaimSeat(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE events
		 SET current_registrations = current_registrations + 1
		 WHERE event_id = $1 AND current_registrations < capacity`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("claim seat: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseSeat atomically gives one confirmed seat back.
func (r *EventRepository) ReleaseSeat(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE events
		 SET current_registrations = current_registrations - 1
		 WHERE event_id = $1 AND current_registrations > 0`,
		id,
	)
	if err != nil {
		return fmt.Errorf("release seat: %w", err)
	}
	return nil
}

// NextWaitlistPosition increments the waitlist count and returns the next
// value of the event's monotonic position sequence. The sequence only ever
// grows, so positions are never reused even after removals.
func (r *EventRepository) NextWaitlistPosition(ctx context.Context, id string) (int, error) {
	var pos int
	err := r.db.QueryRow(ctx,
		`UPDATE events
		 SET waitlist_count = waitlist_count + 1, waitlist_seq = waitlist_seq + 1
		 WHERE event_id = $1
		 RETURNING waitlist_seq`,
		id,
	).Scan(&pos)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrEventNotFound
		}
		return 0, fmt.Errorf("next waitlist position: %w", err)
	}
	return pos, nil
}

// DecrementWaitlist atomically decreases the waitlist count by one.
func (r *EventRepository) DecrementWaitlist(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE events
		 SET waitlist_count = waitlist_count - 1
		 WHERE event_id = $1 AND waitlist_count > 0`,
		id,
	)
	if err != nil {
		return fmt.Errorf("decrement waitlist: %w", err)
	}
	return nil
}
