// Package audit emits compliance events for alert creation and review
// decisions. Publishing is best-effort: a failed emission is logged, never
// propagated, so audit infrastructure outages cannot block detection.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType labels what happened.
type EventType string

const (
	EventAlertCreated  EventType = "alert.created"
	EventAlertReviewed EventType = "alert.reviewed"
)

// Event is one compliance trail entry.
type Event struct {
	ID         string         `json:"id"`
	Type       EventType      `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Actor      string         `json:"actor,omitempty"`
	Subject    string         `json:"subject"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// NewEvent stamps a new event with an ID and timestamp.
func NewEvent(eventType EventType, subject string, payload map[string]any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now(),
		Subject:    subject,
		Payload:    payload,
	}
}

// Publisher records compliance events.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}
