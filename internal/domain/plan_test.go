package domain

import (
	"testing"

	"github.com/loterias-lab/backend/internal/common"
	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/testutil"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestPlanDomain(publisher *testutil.RecordPublisher) *planDomain {
	userRepo := repository.NewUserRepository()
	planHistoryRepo := repository.NewPlanHistoryRepository()
	return NewPlanDomain(
		userRepo,
		common.NewPlanManager(userRepo, planHistoryRepo, common.NewNotifier(publisher, "notification")),
	)
}

func Test_planDomain_GetMyPlan(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.InsertUsers(ctx)
	d := newTestPlanDomain(&testutil.RecordPublisher{})

	tests := []struct {
		name string
		user string
		want *model.GetMyPlanResponse
	}{
		{
			name: "free",
			user: testutil.User1.ID,
			want: &model.GetMyPlanResponse{Plan: "free"},
		},
		{
			name: "active pro",
			user: testutil.User2.ID,
			want: &model.GetMyPlanResponse{Plan: "pro", DaysRemaining: 5},
		},
		{
			name: "expired pro",
			user: testutil.User3.ID,
			want: &model.GetMyPlanResponse{Plan: "pro", Expired: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.GetMyPlan(xcontext.WithRequestUserID(ctx, tt.user), &model.GetMyPlanRequest{})
			require.NoError(t, err)
			require.Equal(t, tt.want.Plan, got.Plan)
			require.Equal(t, tt.want.DaysRemaining, got.DaysRemaining)
			require.Equal(t, tt.want.Expired, got.Expired)
		})
	}
}

func Test_planDomain_UpgradeAndDowngrade(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.InsertUsers(ctx)
	publisher := &testutil.RecordPublisher{}
	d := newTestPlanDomain(publisher)
	ctxUser1 := xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	_, err := d.Downgrade(ctxUser1, &model.DowngradePlanRequest{})
	require.True(t, errorx.Is(err, errorx.BadRequest))

	_, err = d.Upgrade(ctxUser1, &model.UpgradePlanRequest{DurationDays: -1})
	require.True(t, errorx.Is(err, errorx.BadRequest))

	upgraded, err := d.Upgrade(ctxUser1, &model.UpgradePlanRequest{})
	require.NoError(t, err)
	require.Equal(t, "pro", upgraded.Plan)
	require.NotEmpty(t, upgraded.PlanExpiresAt)

	plan, err := d.GetMyPlan(ctxUser1, &model.GetMyPlanRequest{})
	require.NoError(t, err)
	require.Equal(t, common.DefaultPlanDurationDays, plan.DaysRemaining)

	downgraded, err := d.Downgrade(ctxUser1, &model.DowngradePlanRequest{})
	require.NoError(t, err)
	require.Equal(t, "free", downgraded.Plan)

	histories, err := repository.NewPlanHistoryRepository().GetList(ctx, testutil.User1.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, histories, 2)
	require.Equal(t, 2, publisher.Len())

	features, err := d.GetFeatures(ctxUser1, &model.GetPlanFeaturesRequest{})
	require.NoError(t, err)
	require.Len(t, features.Plans, 2)
}
