package common

import (
	"context"
	"encoding/json"
	"time"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/pkg/pubsub"
	"github.com/loterias-lab/backend/pkg/xcontext"
)

// Notifier publishes user facing events. Failures are only logged.
type Notifier struct {
	publisher pubsub.Publisher
	topic     string
}

func NewNotifier(publisher pubsub.Publisher, topic string) *Notifier {
	return &Notifier{publisher: publisher, topic: topic}
}

func (n *Notifier) PrizeFound(ctx context.Context, pick *entity.SavedPick, seq int64, matchCount int) {
	n.publish(ctx, pick.UserID, model.Notification{
		Event: model.EventPrizeFound,
		Data: model.PrizeFoundEvent{
			UserID:         pick.UserID,
			PickID:         pick.ID,
			GameType:       string(pick.GameType),
			SequenceNumber: seq,
			MatchCount:     matchCount,
		},
	})
}

func (n *Notifier) PlanChanged(ctx context.Context, user *entity.User, reason entity.PlanChangeReason) {
	event := model.PlanChangedEvent{
		UserID: user.ID,
		Plan:   string(user.Plan),
		Reason: string(reason),
	}
	if user.PlanExpiresAt != nil {
		event.ExpiresAt = user.PlanExpiresAt.Format(time.RFC3339Nano)
	}

	n.publish(ctx, user.ID, model.Notification{Event: model.EventPlanChanged, Data: event})
}

func (n *Notifier) publish(ctx context.Context, key string, notification model.Notification) {
	if n == nil || n.publisher == nil {
		return
	}

	b, err := json.Marshal(notification)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal notification %s: %v", notification.Event, err)
		return
	}

	err = n.publisher.Publish(ctx, n.topic, &pubsub.Pack{Key: []byte(key), Msg: b})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot publish notification %s: %v", notification.Event, err)
	}
}
