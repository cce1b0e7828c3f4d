// Package events publishes allocation engine events.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type names an allocation event; it is also the subject suffix
type Type string

const (
	ReleaseAllocated Type = "release.allocated"
	QAAllocated      Type = "qa.allocated"
	QARemoved        Type = "qa.removed"
	ReleaseCompleted Type = "release.completed"
)

// Event is the JSON payload published for every allocation change
type Event struct {
	ID          uuid.UUID   `json:"id"`
	Type        Type        `json:"type"`
	ReleaseID   uuid.UUID   `json:"release_id"`
	QAID        *uuid.UUID  `json:"qa_id,omitempty"`
	TestCaseIDs []uuid.UUID `json:"test_case_ids"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

// NewEvent creates an event stamped with a fresh id and the current time
func NewEvent(eventType Type, releaseID uuid.UUID, testCaseIDs []uuid.UUID) Event {
	if testCaseIDs == nil {
		testCaseIDs = []uuid.UUID{}
	}
	return Event{
		ID:          uuid.New(),
		Type:        eventType,
		ReleaseID:   releaseID,
		TestCaseIDs: testCaseIDs,
		OccurredAt:  time.Now().UTC(),
	}
}

// WithQA sets the QA owner the event refers to
func (e Event) WithQA(qaID uuid.UUID) Event {
	e.QAID = &qaID
	return e
}

//go:generate mockgen -source=events.go -destination=../mocks/events_mocks.go -package=mocks

// Publisher delivers events to subscribers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}

// NopPublisher drops every event. Used when NATS_URL is empty.
type NopPublisher struct{}

var _ Publisher = NopPublisher{}

// Publish discards the event
func (NopPublisher) Publish(context.Context, Event) error { return nil }

// Close does nothing
func (NopPublisher) Close() {}
