// Package event publishes user lifecycle events.
package event

import (
	"context"
	"time"
)

type Type string

const (
	UserCreated     Type = "user.created"
	UserUpdated     Type = "user.updated"
	UserDeactivated Type = "user.deactivated"
	UserReactivated Type = "user.reactivated"
	UserDeleted     Type = "user.deleted"
)

type Event struct {
	Type       Type           `json:"type"`
	Subject    string         `json:"subject"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

func New(typ Type, subject string, data map[string]any) Event {
	return Event{
		Type:       typ,
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

var _ Publisher = NopPublisher{}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
