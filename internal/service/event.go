package service

import (
	"context"
	"strings"

	"eventmanagement/internal/model"

	"github.com/google/uuid"
)

// EventService orchestrates event CRUD operations.
type EventService struct {
	events EventStore
}

// NewEventService constructs an EventService with its dependencies.
func NewEventService(events EventStore) *EventService {
	return &EventService{events: events}
}

// CreateEvent validates the request and delegates to the repository. A
// caller-supplied eventId is honored; otherwise one is generated. The
// derived counters always start at zero whatever the payload says.
func (s *EventService) CreateEvent(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Location = strings.TrimSpace(req.Location)
	req.Organizer = strings.TrimSpace(req.Organizer)
	req.Status = strings.TrimSpace(req.Status)

	switch {
	case req.Title == "":
		return nil, invalid("event title is required")
	case req.Description == "":
		return nil, invalid("event description is required")
	case req.Date == "":
		return nil, invalid("event date is required")
	case req.Location == "":
		return nil, invalid("event location is required")
	case req.Organizer == "":
		return nil, invalid("event organizer is required")
	case req.Status == "":
		return nil, invalid("event status is required")
	}
	if req.Capacity <= 0 {
		return nil, invalid("capacity must be a positive integer")
	}
	if req.Capacity > 100_000 {
		return nil, invalid("capacity cannot exceed 100,000")
	}

	id := req.EventID
	if id == "" {
		id = uuid.New().String()
	}

	event := &model.Event{
		EventID:         id,
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Location:        req.Location,
		Capacity:        req.Capacity,
		Organizer:       req.Organizer,
		Status:          req.Status,
		WaitlistEnabled: req.WaitlistEnabled,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents returns all events, optionally filtered by exact-match status.
func (s *EventService) ListEvents(ctx context.Context, status string) ([]model.Event, error) {
	return s.events.List(ctx, status)
}

// GetEvent returns a single event by ID.
func (s *EventService) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	if id == "" {
		return nil, invalid("event id is required")
	}
	return s.events.GetByID(ctx, id)
}

// UpdateEvent applies a partial update: nil fields leave the stored value
// unchanged. Counters are not reachable through this path.
func (s *EventService) UpdateEvent(ctx context.Context, id string, req model.UpdateEventRequest) (*model.Event, error) {
	if id == "" {
		return nil, invalid("event id is required")
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		return nil, invalid("capacity must be a positive integer")
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}
	if req.Organizer != nil {
		event.Organizer = *req.Organizer
	}
	if req.Status != nil {
		event.Status = *req.Status
	}
	if req.WaitlistEnabled != nil {
		event.WaitlistEnabled = *req.WaitlistEnabled
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event. Registrations for it are intentionally left
// behind, matching the non-cascading delete of the source system.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return invalid("event id is required")
	}
	return s.events.Delete(ctx, id)
}
