package service

import (
	"context"
	"errors"
	"testing"

	"eventmanagement/internal/model"
	"eventmanagement/internal/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func validCreateRequest() model.CreateEventRequest {
	return model.CreateEventRequest{
		Title:           "Go Meetup",
		Description:     "monthly meetup",
		Date:            "2026-10-01T18:00:00Z",
		Location:        "Community Hall",
		Capacity:        50,
		Organizer:       "gophers",
		Status:          "published",
		WaitlistEnabled: true,
	}
}

func TestCreateEvent_GeneratesIDAndZeroesCounters(t *testing.T) {
	store := newMemStore()
	svc := NewEventService(memEvents{store})

	req := validCreateRequest()
	// Derived counters in the payload must be ignored.
	req.CurrentRegistrations = 7
	req.WaitlistCount = 3

	event, err := svc.CreateEvent(context.Background(), req)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if event.EventID == "" {
		t.Error("expected a generated eventId")
	}
	if event.CurrentRegistrations != 0 || event.WaitlistCount != 0 {
		t.Errorf("expected zero counters, got %d/%d", event.CurrentRegistrations, event.WaitlistCount)
	}
}

func TestCreateEvent_HonorsCallerSuppliedID(t *testing.T) {
	store := newMemStore()
	svc := NewEventService(memEvents{store})

	req := validCreateRequest()
	req.EventID = "my-event"

	event, err := svc.CreateEvent(context.Background(), req)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if event.EventID != "my-event" {
		t.Errorf("expected eventId my-event, got %s", event.EventID)
	}
}

func TestCreateEvent_RoundTrip(t *testing.T) {
	store := newMemStore()
	svc := NewEventService(memEvents{store})

	created, err := svc.CreateEvent(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	fetched, err := svc.GetEvent(context.Background(), created.EventID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if *fetched != *created {
		t.Errorf("round-trip mismatch:\ncreated %+v\nfetched %+v", created, fetched)
	}
}

func TestCreateEvent_Validation(t *testing.T) {
	store := newMemStore()
	svc := NewEventService(memEvents{store})

	cases := []struct {
		name   string
		mutate func(*model.CreateEventRequest)
	}{
		{"empty title", func(r *model.CreateEventRequest) { r.Title = "  " }},
		{"empty description", func(r *model.CreateEventRequest) { r.Description = "" }},
		{"empty date", func(r *model.CreateEventRequest) { r.Date = "" }},
		{"empty location", func(r *model.CreateEventRequest) { r.Location = "" }},
		{"empty organizer", func(r *model.CreateEventRequest) { r.Organizer = "" }},
		{"empty status", func(r *model.CreateEventRequest) { r.Status = "" }},
		{"zero capacity", func(r *model.CreateEventRequest) { r.Capacity = 0 }},
		{"negative capacity", func(r *model.CreateEventRequest) { r.Capacity = -5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			if _, err := svc.CreateEvent(context.Background(), req); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestListEvents_StatusFilter(t *testing.T) {
	store := newMemStore()
	svc := NewEventService(memEvents{store})

	for _, status := range []string{"draft", "published", "published"} {
		req := validCreateRequest()
		req.Status = status
		if _, err := svc.CreateEvent(context.Background(), req); err != nil {
			t.Fatalf("create event: %v", err)
		}
	}

	published, err := svc.ListEvents(context.Background(), "published")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(published) != 2 {
		t.Errorf("expected 2 published events, got %d", len(published))
	}

	all, err := svc.ListEvents(context.Background(), "")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 events, got %d", len(all))
	}
}

func TestUpdateEvent_MergesOnlySuppliedFields(t *testing.T) {
	store := newMemStore()
	svc := NewEventService(memEvents{store})

	created, err := svc.CreateEvent(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	updated, err := svc.UpdateEvent(context.Background(), created.EventID, model.UpdateEventRequest{
		Title:           strPtr("Go Conference"),
		Capacity:        intPtr(200),
		WaitlistEnabled: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("update event: %v", err)
	}

	if updated.Title != "Go Conference" {
		t.Errorf("title not updated: %s", updated.Title)
	}
	if updated.Capacity != 200 {
		t.Errorf("capacity not updated: %d", updated.Capacity)
	}
	if updated.WaitlistEnabled {
		t.Error("waitlistEnabled not updated")
	}
	// Unset fields keep their stored values. Unset means nil, not empty:
	// an explicit empty string would overwrite.
	if updated.Description != created.Description {
		t.Errorf("description changed: %s", updated.Description)
	}
	if updated.Location != created.Location {
		t.Errorf("location changed: %s", updated.Location)
	}
	if updated.Status != created.Status {
		t.Errorf("status changed: %s", updated.Status)
	}
}

func TestUpdateEvent_Missing(t *testing.T) {
	store := newMemStore()
	svc := NewEventService(memEvents{store})

	_, err := svc.UpdateEvent(context.Background(), "nope", model.UpdateEventRequest{Title: strPtr("x")})
	if !errors.Is(err, repository.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestUpdateEvent_RejectsNonPositiveCapacity(t *testing.T) {
	store := newMemStore()
	svc := NewEventService(memEvents{store})

	created, err := svc.CreateEvent(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if _, err := svc.UpdateEvent(context.Background(), created.EventID, model.UpdateEventRequest{Capacity: intPtr(0)}); err == nil {
		t.Error("expected a validation error for zero capacity")
	}
}

func TestDeleteEvent(t *testing.T) {
	store := newMemStore()
	svc := NewEventService(memEvents{store})

	created, err := svc.CreateEvent(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if err := svc.DeleteEvent(context.Background(), created.EventID); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if err := svc.DeleteEvent(context.Background(), created.EventID); !errors.Is(err, repository.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound on second delete, got %v", err)
	}
}

func TestUserService(t *testing.T) {
	store := newMemStore()
	svc := NewUserService(memUsers{store})

	user, err := svc.CreateUser(context.Background(), model.CreateUserRequest{UserID: "alice", Name: "Alice"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.UserID != "alice" || user.Name != "Alice" {
		t.Errorf("unexpected user %+v", user)
	}

	if _, err := svc.CreateUser(context.Background(), model.CreateUserRequest{UserID: "alice", Name: "Alice"}); !errors.Is(err, repository.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}

	if _, err := svc.CreateUser(context.Background(), model.CreateUserRequest{Name: "No ID"}); err == nil {
		t.Error("expected a validation error for missing userId")
	}

	if _, err := svc.GetUser(context.Background(), "ghost"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
