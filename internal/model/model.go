// Package model defines the core domain types for the event management API.
package model

import "time"

// Registration statuses. An entry only exists while the user participates;
// "not registered" is represented by the absence of an entry.
const (
	StatusRegistered = "registered"
	StatusWaitlisted = "waitlisted"
)

// Event represents a managed event with a capacity-bounded registration set
// and an optional waitlist.
type Event struct {
	EventID              string `json:"eventId"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	Date                 string `json:"date"`
	Location             string `json:"location"`
	Capacity             int    `json:"capacity"`
	Organizer            string `json:"organizer"`
	Status               string `json:"status"`
	WaitlistEnabled      bool   `json:"waitlistEnabled"`
	CurrentRegistrations int    `json:"currentRegistrations"`
	WaitlistCount        int    `json:"waitlistCount"`
}

// Remaining returns the number of available seats.
func (e *Event) Remaining() int {
	return e.Capacity - e.CurrentRegistrations
}

// IsFull returns true when no seats remain.
func (e *Event) IsFull() bool {
	return e.Remaining() <= 0
}

// User represents a participant identity. User IDs are caller-supplied.
type User struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Registration is a ledger entry for one (event, user) pair. Position is set
// only while the entry is waitlisted; lower positions promote first.
type Registration struct {
	RegistrationID string    `json:"registrationId"`
	EventID        string    `json:"eventId"`
	UserID         string    `json:"userId"`
	Status         string    `json:"status"`
	RegisteredAt   time.Time `json:"registeredAt"`
	Position       *int      `json:"position,omitempty"`
}

// CreateEventRequest is the payload for creating a new event.
// The counter fields are accepted for compatibility but ignored:
// currentRegistrations and waitlistCount are derived state and always
// initialize to zero.
type CreateEventRequest struct {
	EventID              string `json:"eventId,omitempty"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	Date                 string `json:"date"`
	Location             string `json:"location"`
	Capacity             int    `json:"capacity"`
	Organizer            string `json:"organizer"`
	Status               string `json:"status"`
	WaitlistEnabled      bool   `json:"waitlistEnabled"`
	CurrentRegistrations int    `json:"currentRegistrations,omitempty"`
	WaitlistCount        int    `json:"waitlistCount,omitempty"`
}

// UpdateEventRequest is the payload for a partial event update. A nil field
// leaves the stored value unchanged; counters are never settable here.
type UpdateEventRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Date            *string `json:"date"`
	Location        *string `json:"location"`
	Capacity        *int    `json:"capacity"`
	Organizer       *string `json:"organizer"`
	Status          *string `json:"status"`
	WaitlistEnabled *bool   `json:"waitlistEnabled"`
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// RegisterRequest is the payload for registering a user for an event.
type RegisterRequest struct {
	UserID string `json:"userId"`
}

// UserEvent projects one of a user's events with their registration status.
type UserEvent struct {
	EventID            string `json:"eventId"`
	Title              string `json:"title"`
	Date               string `json:"date"`
	RegistrationStatus string `json:"registrationStatus"`
}

// UserEventsResponse is the envelope returned by the user-events listing.
type UserEventsResponse struct {
	Events []UserEvent `json:"events"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
