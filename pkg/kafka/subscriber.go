package kafka

import (
	"context"
	"errors"

	"github.com/Shopify/sarama"
	"github.com/loterias-lab/backend/pkg/pubsub"
	"github.com/loterias-lab/backend/pkg/xcontext"
)

type subscriber struct {
	groupID string
	topics  []string
	client  sarama.ConsumerGroup
	handler pubsub.SubscribeHandler
}

func NewSubscriber(
	groupID string,
	brokerAddrs []string,
	topics []string,
	handler pubsub.SubscribeHandler,
) (*subscriber, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRoundRobin
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	client, err := sarama.NewConsumerGroup(brokerAddrs, groupID, config)
	if err != nil {
		return nil, err
	}

	return &subscriber{
		groupID: groupID,
		topics:  topics,
		client:  client,
		handler: handler,
	}, nil
}

func (s *subscriber) Stop(ctx context.Context) error {
	return s.client.Close()
}

func (s *subscriber) Subscribe(ctx context.Context) error {
	consumer := consumerGroupHandler{
		ready: make(chan bool),
		fn:    s.handler,
	}

	go func() {
		// Consume returns on every server-side rebalance, so it must be called
		// again to join the new session.
		for {
			err := s.client.Consume(ctx, s.topics, &consumer)
			if errors.Is(err, sarama.ErrClosedConsumerGroup) || ctx.Err() != nil {
				return
			}

			if err != nil {
				xcontext.Logger(ctx).Errorf("Error from consumer: %v", err)
			}
			consumer.ready = make(chan bool)
		}
	}()

	select {
	case <-consumer.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type consumerGroupHandler struct {
	ready chan bool
	fn    pubsub.SubscribeHandler
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error {
	close(h.ready)
	return nil
}

func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) ConsumeClaim(
	session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim,
) error {
	for message := range claim.Messages() {
		h.fn(session.Context(), &pubsub.Pack{
			Key: message.Key,
			Msg: message.Value,
		}, message.Timestamp)
		session.MarkMessage(message, "")
	}

	return nil
}
