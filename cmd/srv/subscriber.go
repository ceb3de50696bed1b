package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/pkg/kafka"
	"github.com/loterias-lab/backend/pkg/nats"
	"github.com/loterias-lab/backend/pkg/pubsub"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

const notificationGroup = "loterias-notify"

// startNotify consumes the notification events. Delivering them to users is
// left to an external channel, the consumer only logs them.
func (s *srv) startNotify(*cli.Context) error {
	cfg := xcontext.Configs(s.ctx).Notification

	var subscriber pubsub.Subscriber
	switch cfg.Broker {
	case "kafka":
		var err error
		subscriber, err = kafka.NewSubscriber(
			notificationGroup, cfg.KafkaAddrs, []string{cfg.Topic}, s.handleNotification)
		if err != nil {
			return err
		}
	case "nats":
		conn, err := nats.Connect(cfg.NatsURL, notificationGroup)
		if err != nil {
			return err
		}
		subscriber = nats.NewSubscriber(conn, notificationGroup, []string{cfg.Topic}, s.handleNotification)
	default:
		return errors.New("notification broker is not configured")
	}

	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := subscriber.Subscribe(ctx); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Start consuming notifications on %s", cfg.Topic)
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return subscriber.Stop(stopCtx)
}

func (s *srv) handleNotification(ctx context.Context, pack *pubsub.Pack, t time.Time) {
	var notification model.Notification
	if err := json.Unmarshal(pack.Msg, &notification); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot unmarshal notification: %v", err)
		return
	}

	xcontext.Logger(ctx).Infof("Notification %s for user %s at %s: %s",
		notification.Event, string(pack.Key), t.Format(time.RFC3339), string(pack.Msg))
}
