// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer. The registration
// coordinator — the state machine tying the ledger and the event counters
// together — lives here.
package service

import (
	"context"
	"fmt"

	"eventmanagement/internal/model"
)

// ValidationError marks caller-correctable input problems, as opposed to
// storage or infrastructure failures.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// EventStore is the event persistence the services depend on. Implemented by
// repository.EventRepository.
type EventStore interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, status string) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error

	// Conditional counter primitives used by the registration coordinator.
	ClaimSeat(ctx context.Context, id string) (bool, error)
	ReleaseSeat(ctx context.Context, id string) error
	NextWaitlistPosition(ctx context.Context, id string) (int, error)
	DecrementWaitlist(ctx context.Context, id string) error
}

// UserStore is the user persistence the services depend on. Implemented by
// repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, userID, name string) (*model.User, error)
	GetByID(ctx context.Context, userID string) (*model.User, error)
}

// RegistrationStore is the ledger persistence the coordinator depends on.
// Implemented by repository.RegistrationRepository.
type RegistrationStore interface {
	Create(ctx context.Context, reg *model.Registration) (bool, error)
	Get(ctx context.Context, eventID, userID string) (*model.Registration, error)
	Delete(ctx context.Context, eventID, userID string) (string, error)
	Waitlist(ctx context.Context, eventID, userID string, position int) error
	OldestWaitlisted(ctx context.Context, eventID string) (*model.Registration, error)
	Promote(ctx context.Context, eventID, userID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]model.Registration, error)
}
