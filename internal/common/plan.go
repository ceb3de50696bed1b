package common

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/xcontext"
)

const DefaultPlanDurationDays = 30

// PlanManager is the only place where the plan of a user is changed, every
// change is recorded in the plan history and notified.
type PlanManager struct {
	userRepo        repository.UserRepository
	planHistoryRepo repository.PlanHistoryRepository
	notifier        *Notifier
}

func NewPlanManager(
	userRepo repository.UserRepository,
	planHistoryRepo repository.PlanHistoryRepository,
	notifier *Notifier,
) *PlanManager {
	return &PlanManager{
		userRepo:        userRepo,
		planHistoryRepo: planHistoryRepo,
		notifier:        notifier,
	}
}

// ActivatePro sets the pro plan for days counted from now. A non positive
// days falls back to the configured default duration.
func (m *PlanManager) ActivatePro(
	ctx context.Context, user *entity.User, days int,
	reason entity.PlanChangeReason, changedBy string,
) error {
	if days <= 0 {
		days = xcontext.Configs(ctx).Plan.DefaultDurationDays
	}
	if days <= 0 {
		days = DefaultPlanDurationDays
	}

	expiresAt := time.Now().AddDate(0, 0, days)
	return m.change(ctx, user, entity.PlanPro, &expiresAt, reason, changedBy)
}

func (m *PlanManager) Downgrade(
	ctx context.Context, user *entity.User,
	reason entity.PlanChangeReason, changedBy string,
) error {
	return m.change(ctx, user, entity.PlanFree, nil, reason, changedBy)
}

// ExpireAll downgrades every pro user whose plan expired before now and
// returns how many users were downgraded.
func (m *PlanManager) ExpireAll(ctx context.Context, now time.Time) (int, error) {
	users, err := m.userRepo.GetExpiredPro(ctx, now)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range users {
		if err := m.Downgrade(ctx, &users[i], entity.PlanChangeExpired, ""); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot downgrade expired user %s: %v", users[i].ID, err)
			continue
		}
		count++
	}

	return count, nil
}

func (m *PlanManager) change(
	ctx context.Context, user *entity.User, plan entity.Plan, expiresAt *time.Time,
	reason entity.PlanChangeReason, changedBy string,
) error {
	previous := user.Plan

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := m.userRepo.UpdatePlan(ctx, user.ID, plan, expiresAt); err != nil {
		return err
	}

	err := m.planHistoryRepo.Create(ctx, &entity.PlanHistory{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       user.ID,
		PreviousPlan: previous,
		NewPlan:      plan,
		Reason:       reason,
		ChangedBy:    changedBy,
		ExpiresAt:    expiresAt,
	})
	if err != nil {
		return err
	}

	xcontext.WithCommitDBTransaction(ctx)

	user.Plan = plan
	user.PlanExpiresAt = expiresAt
	m.notifier.PlanChanged(ctx, user, reason)

	return nil
}
