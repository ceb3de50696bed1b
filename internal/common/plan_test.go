package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestPlanManager(publisher *testutil.RecordPublisher) *PlanManager {
	return NewPlanManager(
		repository.NewUserRepository(),
		repository.NewPlanHistoryRepository(),
		NewNotifier(publisher, "notification"),
	)
}

func Test_PlanManager_ActivatePro(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	publisher := &testutil.RecordPublisher{}
	manager := newTestPlanManager(publisher)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)

	require.NoError(t, manager.ActivatePro(ctx, user, 0, entity.PlanChangeUpgrade, user.ID))
	require.Equal(t, entity.PlanPro, user.Plan)
	require.NotNil(t, user.PlanExpiresAt)
	require.WithinDuration(t, time.Now().AddDate(0, 0, 30), *user.PlanExpiresAt, time.Minute)

	stored, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PlanPro, stored.Plan)
	require.True(t, stored.ActivePro(time.Now()))

	histories, err := repository.NewPlanHistoryRepository().GetList(ctx, user.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	require.Equal(t, entity.PlanFree, histories[0].PreviousPlan)
	require.Equal(t, entity.PlanPro, histories[0].NewPlan)
	require.Equal(t, entity.PlanChangeUpgrade, histories[0].Reason)

	require.Equal(t, 1, publisher.Len())
	require.Equal(t, []byte(user.ID), publisher.Packs[0].Key)

	var notification struct {
		Event string                 `json:"event"`
		Data  model.PlanChangedEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(publisher.Packs[0].Msg, &notification))
	require.Equal(t, model.EventPlanChanged, notification.Event)
	require.Equal(t, "pro", notification.Data.Plan)
	require.Equal(t, "upgrade", notification.Data.Reason)
}

func Test_PlanManager_ExpireAll(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	publisher := &testutil.RecordPublisher{}
	manager := newTestPlanManager(publisher)

	count, err := manager.ExpireAll(ctx, time.Now())
	require.NoError(t, err)
	require.Equal(t, 1, count)

	expired, err := repository.NewUserRepository().GetByID(ctx, testutil.User3.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PlanFree, expired.Plan)
	require.Nil(t, expired.PlanExpiresAt)

	active, err := repository.NewUserRepository().GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PlanPro, active.Plan)

	histories, err := repository.NewPlanHistoryRepository().GetList(ctx, "", 0, 10)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	require.Equal(t, entity.PlanChangeExpired, histories[0].Reason)
	require.Equal(t, testutil.User3.Email, histories[0].User.Email)
	require.Equal(t, 1, publisher.Len())

	count, err = manager.ExpireAll(ctx, time.Now())
	require.NoError(t, err)
	require.Equal(t, 0, count)
}
