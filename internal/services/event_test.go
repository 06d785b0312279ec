package services

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCreateEventParsesISOTimes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	user := createTestUser(t, db, "organizer")

	event, err := svc.CreateEvent(user.ID, CreateEventRequest{
		Title:       "Farmers market",
		Description: "Weekly market",
		StartTime:   "2026-09-05T09:00:00Z",
		EndTime:     "2026-09-05T14:00:00Z",
		Location:    "Town square",
	})
	if err != nil {
		t.Fatalf("create event failed: %v", err)
	}
	if event.UserID != user.ID {
		t.Errorf("organizer = %d, want %d", event.UserID, user.ID)
	}
	if !event.EndTime.After(event.StartTime) {
		t.Error("end time should follow start time for this input")
	}
}

func TestCreateEventAcceptsInvertedRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	user := createTestUser(t, db, "organizer")

	// End before start is stored as-is; no range validation exists.
	event, err := svc.CreateEvent(user.ID, CreateEventRequest{
		Title:       "Time traveler meetup",
		Description: "d",
		StartTime:   "2026-09-05T14:00:00Z",
		EndTime:     "2026-09-05T09:00:00Z",
	})
	if err != nil {
		t.Fatalf("inverted range rejected: %v", err)
	}
	if !event.EndTime.Before(event.StartTime) {
		t.Error("inverted range was altered on store")
	}
}

func TestCreateEventRejectsUnparsableTimes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	user := createTestUser(t, db, "organizer")

	_, err := svc.CreateEvent(user.ID, CreateEventRequest{
		Title:       "Bad",
		Description: "d",
		StartTime:   "next tuesday",
		EndTime:     "2026-09-05T09:00:00Z",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestCalendarFeedContract(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	user := createTestUser(t, db, "organizer")

	created, err := svc.CreateEvent(user.ID, CreateEventRequest{
		Title:       "Concert",
		Description: "d",
		StartTime:   "2026-09-05T19:00:00Z",
		EndTime:     "2026-09-05T22:00:00Z",
	})
	if err != nil {
		t.Fatalf("create event failed: %v", err)
	}

	entries, err := svc.CalendarFeed("http://localhost:8080")
	if err != nil {
		t.Fatalf("CalendarFeed failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	entry := entries[0]
	if entry.Title != "Concert" {
		t.Errorf("title = %q, want Concert", entry.Title)
	}
	if _, err := time.Parse(time.RFC3339, entry.Start); err != nil {
		t.Errorf("start %q is not RFC 3339: %v", entry.Start, err)
	}
	if _, err := time.Parse(time.RFC3339, entry.End); err != nil {
		t.Errorf("end %q is not RFC 3339: %v", entry.End, err)
	}
	if !strings.Contains(entry.URL, "/events/") {
		t.Errorf("url %q does not link to the event detail", entry.URL)
	}
	if created.ID == 0 {
		t.Error("event id not assigned")
	}
}
