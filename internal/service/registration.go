package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventmanagement/internal/model"
	"eventmanagement/internal/repository"

	"github.com/google/uuid"
)

// promoteAttempts bounds the retry loop when the waitlisted entry picked for
// promotion disappears under a concurrent unregister.
const promoteAttempts = 3

// RegistrationService is the registration coordinator: it owns every write
// to the registration ledger and to the two derived event counters, and it
// drives the per-pair state machine
//
//	absent → registered, absent → waitlisted,
//	registered → absent, waitlisted → absent,
//	waitlisted → registered (promotion on a freed seat).
//
// No lock is held across steps. The ledger write always lands before the
// dependent counter update, and counters only move through conditional
// relative updates, so interleaved requests cannot overbook an event.
type RegistrationService struct {
	events        EventStore
	users         UserStore
	registrations RegistrationStore
}

// NewRegistrationService constructs a RegistrationService with its
// dependencies.
func NewRegistrationService(events EventStore, users UserStore, registrations RegistrationStore) *RegistrationService {
	return &RegistrationService{events: events, users: users, registrations: registrations}
}

// Register registers a user for an event, waitlisting them when the event is
// full and its waitlist is enabled. Re-registering an active participant is
// rejected, not silently accepted.
func (s *RegistrationService) Register(ctx context.Context, eventID, userID string) (*model.Registration, error) {
	if eventID == "" {
		return nil, invalid("event id is required")
	}
	if userID == "" {
		return nil, invalid("userId is required")
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.IsFull() {
		return s.registerConfirmed(ctx, event, userID)
	}
	if event.WaitlistEnabled {
		return s.registerWaitlisted(ctx, eventID, userID)
	}

	// Full with the waitlist disabled: a duplicate still reports as a
	// duplicate, only a genuinely new registrant gets the full rejection.
	if _, err := s.registrations.Get(ctx, eventID, userID); err == nil {
		return nil, repository.ErrDuplicateRegistration
	} else if !errors.Is(err, repository.ErrRegistrationNotFound) {
		return nil, err
	}
	return nil, repository.ErrEventFull
}

// registerConfirmed handles the path where the read showed free capacity.
// The ledger entry goes in first; the guarded seat claim then decides
// whether the entry keeps its confirmed status or falls back to the
// waitlist because concurrent registrations filled the event in between.
func (s *RegistrationService) registerConfirmed(ctx context.Context, event *model.Event, userID string) (*model.Registration, error) {
	reg := newRegistration(event.EventID, userID, model.StatusRegistered)
	created, err := s.registrations.Create(ctx, reg)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, repository.ErrDuplicateRegistration
	}

	claimed, err := s.events.ClaimSeat(ctx, event.EventID)
	if err != nil {
		return nil, err
	}
	if claimed {
		return reg, nil
	}

	if !event.WaitlistEnabled {
		if _, err := s.registrations.Delete(ctx, event.EventID, userID); err != nil &&
			!errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, err
		}
		return nil, repository.ErrEventFull
	}

	pos, err := s.events.NextWaitlistPosition(ctx, event.EventID)
	if err != nil {
		return nil, err
	}
	if err := s.registrations.Waitlist(ctx, event.EventID, userID, pos); err != nil {
		return nil, err
	}
	reg.Status = model.StatusWaitlisted
	reg.Position = &pos
	return reg, nil
}

// registerWaitlisted handles the path where the read showed a full event
// with the waitlist enabled.
func (s *RegistrationService) registerWaitlisted(ctx context.Context, eventID, userID string) (*model.Registration, error) {
	reg := newRegistration(eventID, userID, model.StatusWaitlisted)
	created, err := s.registrations.Create(ctx, reg)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, repository.ErrDuplicateRegistration
	}

	pos, err := s.events.NextWaitlistPosition(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.registrations.Waitlist(ctx, eventID, userID, pos); err != nil {
		return nil, err
	}
	reg.Position = &pos
	return reg, nil
}

// Unregister removes a user's registration for an event. Removing a
// confirmed registration frees a seat and promotes the longest-waiting
// waitlisted user, if any; removing a waitlisted entry only shrinks the
// waitlist.
func (s *RegistrationService) Unregister(ctx context.Context, eventID, userID string) error {
	status, err := s.registrations.Delete(ctx, eventID, userID)
	if err != nil {
		return err
	}

	switch status {
	case model.StatusRegistered:
		if err := s.events.ReleaseSeat(ctx, eventID); err != nil {
			return err
		}
		return s.promoteNext(ctx, eventID)
	case model.StatusWaitlisted:
		return s.events.DecrementWaitlist(ctx, eventID)
	default:
		return fmt.Errorf("registration has unknown status %q", status)
	}
}

// promoteNext moves the minimum-position waitlisted entry into the freed
// seat. The seat is re-claimed with the same guarded increment Register
// uses, so a concurrent registration and a promotion cannot both take it;
// if the registration wins, the promotion is skipped rather than
// overbooking. Net effect on success: current_registrations is back where it
// was, waitlist_count drops by one.
func (s *RegistrationService) promoteNext(ctx context.Context, eventID string) error {
	next, err := s.registrations.OldestWaitlisted(ctx, eventID)
	if errors.Is(err, repository.ErrRegistrationNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	claimed, err := s.events.ClaimSeat(ctx, eventID)
	if err != nil {
		return err
	}
	if !claimed {
		// A concurrent registration took the seat first.
		return nil
	}

	for attempt := 0; attempt < promoteAttempts; attempt++ {
		promoted, err := s.registrations.Promote(ctx, eventID, next.UserID)
		if err != nil {
			return err
		}
		if promoted {
			return s.events.DecrementWaitlist(ctx, eventID)
		}

		// The candidate unregistered between the pick and the promote;
		// pick again.
		next, err = s.registrations.OldestWaitlisted(ctx, eventID)
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return s.events.ReleaseSeat(ctx, eventID)
		}
		if err != nil {
			return err
		}
	}
	return s.events.ReleaseSeat(ctx, eventID)
}

// ListUserEvents returns the events a user is registered or waitlisted for.
// Entries whose event has since been deleted are skipped: event deletion
// does not cascade to the ledger, so orphans are expected.
func (s *RegistrationService) ListUserEvents(ctx context.Context, userID string) (*model.UserEventsResponse, error) {
	if userID == "" {
		return nil, invalid("user id is required")
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	regs, err := s.registrations.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &model.UserEventsResponse{Events: []model.UserEvent{}}
	for _, reg := range regs {
		event, err := s.events.GetByID(ctx, reg.EventID)
		if errors.Is(err, repository.ErrEventNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		resp.Events = append(resp.Events, model.UserEvent{
			EventID:            event.EventID,
			Title:              event.Title,
			Date:               event.Date,
			RegistrationStatus: reg.Status,
		})
	}
	return resp, nil
}

func newRegistration(eventID, userID, status string) *model.Registration {
	return &model.Registration{
		RegistrationID: uuid.New().String(),
		EventID:        eventID,
		UserID:         userID,
		Status:         status,
		RegisteredAt:   time.Now().UTC(),
	}
}
