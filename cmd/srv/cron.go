package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/loterias-lab/backend/internal/domain/cron"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(*cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadResultCache()
	s.loadPublisher()
	s.loadRepos()
	s.loadUpdater()
	s.loadDomains()

	fetchDrawsJob, err := cron.NewFetchDrawsCronJob(
		s.updater, s.resultCache, xcontext.Configs(s.ctx).Ingestion.Schedule)
	if err != nil {
		return err
	}

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(fetchDrawsJob)
	cronJobManager.Register(cron.NewExpirePlansCronJob(s.planManager))

	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cronJobManager.Start(ctx)
	return nil
}
