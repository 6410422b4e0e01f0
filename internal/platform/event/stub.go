package event

import (
	"context"
	"errors"
)

var _ Publisher = (*StubPublisher)(nil)

type StubPublisher struct {
	PublishFunc func(ctx context.Context, e Event) error
}

func (s *StubPublisher) Publish(ctx context.Context, e Event) error {
	if s.PublishFunc == nil {
		return errors.New("Publish() not implemented by stub")
	}
	return s.PublishFunc(ctx, e)
}

func (s *StubPublisher) Close() error { return nil }
