package model

import "testing"

func TestEventRemaining(t *testing.T) {
	e := Event{Capacity: 3, CurrentRegistrations: 1}
	if got := e.Remaining(); got != 2 {
		t.Errorf("expected 2 remaining, got %d", got)
	}
	if e.IsFull() {
		t.Error("event with free seats reported full")
	}

	e.CurrentRegistrations = 3
	if got := e.Remaining(); got != 0 {
		t.Errorf("expected 0 remaining, got %d", got)
	}
	if !e.IsFull() {
		t.Error("event at capacity not reported full")
	}
}
