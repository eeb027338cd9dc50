// Package events publishes booking lifecycle events to Kafka. When no
// brokers are configured the service runs with a no-op publisher.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"

	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// Message is a single lifecycle event. Key is the booking reference so
// all events for one booking land on the same partition, in order.
type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

// NewMessage builds an event message with a fresh UUID event ID. The
// payload is JSON-encoded; an encoding failure is returned rather than
// silently publishing an empty value.
func NewMessage(eventType, key string, payload any) (Message, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	now := time.Now().UTC()
	return Message{
		Key:       key,
		Value:     value,
		Timestamp: now,
		Headers: map[string]string{
			HeaderEventID:   uuid.New().String(),
			HeaderEventType: eventType,
			HeaderSource:    "resortly-api",
			HeaderTimestamp: now.Format(time.RFC3339),
		},
	}, nil
}

// BookingEvent is the payload for both created and cancelled events.
type BookingEvent struct {
	BookingID      string    `json:"bookingId"`
	Email          string    `json:"email"`
	ResortID       string    `json:"resortId"`
	Status         string    `json:"status"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	RefundEligible *bool     `json:"refundEligible,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}
