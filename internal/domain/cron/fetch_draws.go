package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/loterias-lab/backend/internal/common"
	"github.com/loterias-lab/backend/internal/domain/drawupdater"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/robfig/cron/v3"
)

// FetchDrawsCronJob pulls the new draws of every game type from Caixa.
type FetchDrawsCronJob struct {
	updater     drawupdater.Updater
	resultCache common.ResultCache
	schedule    cron.Schedule
}

// NewFetchDrawsCronJob parses expr as a standard five fields cron expression.
func NewFetchDrawsCronJob(
	updater drawupdater.Updater,
	resultCache common.ResultCache,
	expr string,
) (*FetchDrawsCronJob, error) {
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", expr, err)
	}

	return &FetchDrawsCronJob{
		updater:     updater,
		resultCache: resultCache,
		schedule:    schedule,
	}, nil
}

func (job *FetchDrawsCronJob) Do(ctx context.Context) {
	total := 0
	for _, gameType := range entity.AllGameTypes() {
		inserted, err := job.updater.Update(ctx, gameType)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot fetch draws of %s: %v", gameType, err)
			continue
		}

		if inserted > 0 {
			xcontext.Logger(ctx).Infof("Fetched %d new draws of %s", inserted, gameType)
		}
		total += inserted
	}

	// Prize amounts of the latest draws may have changed even without new
	// draws.
	job.resultCache.Invalidate(ctx, common.LatestResultsCacheKey)
	xcontext.Logger(ctx).Debugf("Draw fetching finished with %d new draws", total)
}

func (job *FetchDrawsCronJob) RunNow() bool {
	return true
}

func (job *FetchDrawsCronJob) Next() time.Time {
	return job.schedule.Next(time.Now())
}
