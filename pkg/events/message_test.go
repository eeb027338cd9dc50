package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewMessage(t *testing.T) {
	payload := BookingEvent{
		BookingID: "TR-482913",
		Email:     "guest@example.com",
		ResortID:  "r1",
		Status:    "active",
	}

	msg, err := NewMessage(TypeBookingCreated, payload.BookingID, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Key != "TR-482913" {
		t.Errorf("expected key TR-482913, got %s", msg.Key)
	}
	if msg.Headers[HeaderEventType] != TypeBookingCreated {
		t.Errorf("expected event type %s, got %s", TypeBookingCreated, msg.Headers[HeaderEventType])
	}
	if msg.Headers[HeaderEventID] == "" {
		t.Error("expected a generated event ID")
	}
	if _, err := time.Parse(time.RFC3339, msg.Headers[HeaderTimestamp]); err != nil {
		t.Errorf("timestamp header is not RFC3339: %v", err)
	}

	var decoded BookingEvent
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("value is not valid JSON: %v", err)
	}
	if decoded.BookingID != payload.BookingID {
		t.Errorf("expected bookingId %s, got %s", payload.BookingID, decoded.BookingID)
	}
}

func TestNewMessage_UniqueEventIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		msg, err := NewMessage(TypeBookingCancelled, "TR-000001", BookingEvent{BookingID: "TR-000001"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		id := msg.Headers[HeaderEventID]
		if seen[id] {
			t.Fatalf("duplicate event ID %s", id)
		}
		seen[id] = true
	}
}
