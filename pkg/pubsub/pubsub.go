package pubsub

import (
	"context"
	"time"
)

type Pack struct {
	Key []byte
	Msg []byte
}

type Publisher interface {
	Publish(context.Context, string, *Pack) error
}

type SubscribeHandler func(context.Context, *Pack, time.Time)

type Subscriber interface {
	// Subscribe starts consuming in background and returns when the
	// subscriber is ready.
	Subscribe(context.Context) error
	Stop(context.Context) error
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher which drops every message.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, string, *Pack) error {
	return nil
}
