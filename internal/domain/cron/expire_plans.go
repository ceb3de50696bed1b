package cron

import (
	"context"
	"time"

	"github.com/loterias-lab/backend/internal/common"
	"github.com/loterias-lab/backend/pkg/xcontext"
)

type ExpirePlansCronJob struct {
	planManager *common.PlanManager
}

func NewExpirePlansCronJob(planManager *common.PlanManager) *ExpirePlansCronJob {
	return &ExpirePlansCronJob{planManager: planManager}
}

func (job *ExpirePlansCronJob) Do(ctx context.Context) {
	count, err := job.planManager.ExpireAll(ctx, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot expire pro plans: %v", err)
		return
	}

	if count > 0 {
		xcontext.Logger(ctx).Infof("Downgraded %d expired pro plans", count)
	}
}

func (job *ExpirePlansCronJob) RunNow() bool {
	return true
}

// Next is the beginning of the next hour.
func (job *ExpirePlansCronJob) Next() time.Time {
	return time.Now().Truncate(time.Hour).Add(time.Hour)
}
