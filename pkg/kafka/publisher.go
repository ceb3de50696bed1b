package kafka

import (
	"context"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/loterias-lab/backend/pkg/pubsub"
)

const maxSendRetries = 3

// publisher sends each pack synchronously and waits for every in-sync replica.
type publisher struct {
	producer sarama.SyncProducer
}

func NewPublisher(clientID string, brokerAddrs []string) (*publisher, error) {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = maxSendRetries
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokerAddrs, cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot create kafka producer: %w", err)
	}

	return &publisher{producer: producer}, nil
}

func (p *publisher) Publish(ctx context.Context, topic string, pack *pubsub.Pack) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(pack.Key),
		Value: sarama.ByteEncoder(pack.Msg),
	})
	if err != nil {
		return fmt.Errorf("cannot send message to %s: %w", topic, err)
	}

	return nil
}

func (p *publisher) Close() error {
	return p.producer.Close()
}
