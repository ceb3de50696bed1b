package nats

import (
	"context"
	"time"

	"github.com/loterias-lab/backend/pkg/pubsub"
	"github.com/nats-io/nats.go"
)

const keyHeader = "Pack-Key"

type publisher struct {
	conn *nats.Conn
}

func Connect(url, name string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}

func NewPublisher(conn *nats.Conn) *publisher {
	return &publisher{conn: conn}
}

func (p *publisher) Publish(ctx context.Context, topic string, pack *pubsub.Pack) error {
	msg := nats.NewMsg(topic)
	msg.Data = pack.Msg
	if len(pack.Key) > 0 {
		msg.Header.Set(keyHeader, string(pack.Key))
	}

	return p.conn.PublishMsg(msg)
}

type subscriber struct {
	conn    *nats.Conn
	queue   string
	topics  []string
	handler pubsub.SubscribeHandler
	subs    []*nats.Subscription
}

// NewSubscriber creates a queue subscriber, each message of the topics is
// delivered to only one member of the queue group.
func NewSubscriber(
	conn *nats.Conn, queue string, topics []string, handler pubsub.SubscribeHandler,
) *subscriber {
	return &subscriber{conn: conn, queue: queue, topics: topics, handler: handler}
}

func (s *subscriber) Subscribe(ctx context.Context) error {
	for _, topic := range s.topics {
		sub, err := s.conn.QueueSubscribe(topic, s.queue, func(msg *nats.Msg) {
			s.handler(ctx, &pubsub.Pack{
				Key: []byte(msg.Header.Get(keyHeader)),
				Msg: msg.Data,
			}, time.Now())
		})
		if err != nil {
			return err
		}

		s.subs = append(s.subs, sub)
	}

	return s.conn.Flush()
}

func (s *subscriber) Stop(ctx context.Context) error {
	for _, sub := range s.subs {
		if err := sub.Unsubscribe(); err != nil {
			return err
		}
	}

	return s.conn.Drain()
}
