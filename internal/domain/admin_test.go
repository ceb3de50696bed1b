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

func newTestAdminDomain(publisher *testutil.RecordPublisher) *adminDomain {
	userRepo := repository.NewUserRepository()
	planHistoryRepo := repository.NewPlanHistoryRepository()
	return NewAdminDomain(
		userRepo,
		planHistoryRepo,
		repository.NewPickRepository(),
		repository.NewDrawRepository(),
		common.NewPlanManager(userRepo, planHistoryRepo, common.NewNotifier(publisher, "notification")),
	)
}

func Test_adminDomain_GetDashboard(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestAdminDomain(&testutil.RecordPublisher{})

	resp, err := d.GetDashboard(xcontext.WithRequestUserID(ctx, testutil.Admin.ID), &model.GetDashboardRequest{})
	require.NoError(t, err)
	require.Equal(t, &model.GetDashboardResponse{
		TotalUsers:      4,
		TotalFree:       2,
		TotalProActive:  1,
		TotalProExpired: 1,
		ExpiringIn7Days: 1,
		TotalPicks:      4,
		TotalDraws:      4,
	}, resp)
}

func Test_adminDomain_GetListUser(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestAdminDomain(&testutil.RecordPublisher{})
	ctxAdmin := xcontext.WithRequestUserID(ctx, testutil.Admin.ID)

	tests := []struct {
		name      string
		req       *model.GetListUserRequest
		wantTotal int64
		wantErr   bool
	}{
		{name: "all", req: &model.GetListUserRequest{}, wantTotal: 4},
		{name: "search", req: &model.GetListUserRequest{Search: "user"}, wantTotal: 3},
		{name: "plan", req: &model.GetListUserRequest{Plan: "pro"}, wantTotal: 2},
		{name: "active", req: &model.GetListUserRequest{Status: "active"}, wantTotal: 1},
		{name: "expired", req: &model.GetListUserRequest{Status: "expired"}, wantTotal: 1},
		{name: "free", req: &model.GetListUserRequest{Status: "free"}, wantTotal: 2},
		{name: "invalid status", req: &model.GetListUserRequest{Status: "gold"}, wantErr: true},
		{name: "invalid plan", req: &model.GetListUserRequest{Plan: "gold"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := d.GetListUser(ctxAdmin, tt.req)
			if tt.wantErr {
				require.True(t, errorx.Is(err, errorx.BadRequest))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantTotal, resp.Total)
			require.Len(t, resp.Users, int(tt.wantTotal))
		})
	}
}

func Test_adminDomain_ProActivation(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	publisher := &testutil.RecordPublisher{}
	d := newTestAdminDomain(publisher)
	ctxAdmin := xcontext.WithRequestUserID(ctx, testutil.Admin.ID)

	activated, err := d.ActivatePro(ctxAdmin, &model.ActivateProRequest{
		UserID:       testutil.User1.ID,
		DurationDays: 90,
	})
	require.NoError(t, err)
	require.Equal(t, "pro", activated.User.Plan)
	require.NotEmpty(t, activated.User.PlanExpiresAt)

	user, err := d.GetUser(ctxAdmin, &model.GetUserRequest{ID: testutil.User1.ID})
	require.NoError(t, err)
	require.Equal(t, "pro", user.User.Plan)
	require.Equal(t, int64(3), user.TotalPicks)

	deactivated, err := d.DeactivatePro(ctxAdmin, &model.DeactivateProRequest{UserID: testutil.User1.ID})
	require.NoError(t, err)
	require.Equal(t, "free", deactivated.User.Plan)
	require.Empty(t, deactivated.User.PlanExpiresAt)

	_, err = d.DeactivatePro(ctxAdmin, &model.DeactivateProRequest{UserID: testutil.User1.ID})
	require.True(t, errorx.Is(err, errorx.BadRequest))

	_, err = d.ActivatePro(ctxAdmin, &model.ActivateProRequest{UserID: "unknown"})
	require.True(t, errorx.Is(err, errorx.NotFound))

	_, err = d.ActivatePro(ctxAdmin, &model.ActivateProRequest{UserID: testutil.User1.ID, DurationDays: 5000})
	require.True(t, errorx.Is(err, errorx.BadRequest))

	history, err := d.GetPlanHistory(ctxAdmin, &model.GetPlanHistoryRequest{UserID: testutil.User1.ID})
	require.NoError(t, err)
	require.Len(t, history.History, 2)
	for _, h := range history.History {
		require.Equal(t, "admin", h.Reason)
		require.Equal(t, testutil.Admin.ID, h.ChangedBy)
		require.Equal(t, testutil.User1.Email, h.UserEmail)
	}

	require.Equal(t, 2, publisher.Len())
}
