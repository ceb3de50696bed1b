package testutil

import (
	"context"
	"sync"

	"github.com/loterias-lab/backend/pkg/pubsub"
)

type MockPublisher struct {
	PublishFunc func(context.Context, string, *pubsub.Pack) error
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, pack *pubsub.Pack) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, pack)
	}

	return nil
}

// RecordPublisher keeps every published pack in memory.
type RecordPublisher struct {
	mutex sync.Mutex
	Packs []*pubsub.Pack
}

func (p *RecordPublisher) Publish(ctx context.Context, topic string, pack *pubsub.Pack) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.Packs = append(p.Packs, pack)
	return nil
}

func (p *RecordPublisher) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return len(p.Packs)
}
