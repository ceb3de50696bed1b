package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/loterias-lab/backend/internal/middleware"
	"github.com/loterias-lab/backend/pkg/prometheus"
	"github.com/loterias-lab/backend/pkg/router"
	"github.com/loterias-lab/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadResultCache()
	s.loadPublisher()
	s.loadRepos()
	s.loadUpdater()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx).ApiServer
	httpSrv := &http.Server{
		Addr:    cfg.Address(),
		Handler: middleware.AllowCors(s.router.Handler(), cfg.AllowOrigins),
	}

	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot shutdown api server: %v", err)
		}
	}()

	xcontext.Logger(s.ctx).Infof("Starting api server on %s", cfg.Address())
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if closer, ok := s.publisher.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot close publisher: %v", err)
		}
	}

	xcontext.Logger(s.ctx).Infof("Api server stopped")
	return nil
}

func (s *srv) loadRouter() {
	cfg := xcontext.Configs(s.ctx)

	s.router = router.New(s.ctx)
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	s.router.Handle(http.MethodGet, "/metrics", prometheus.NewHandler())
	s.router.Handle(http.MethodGet, "/health", http.HandlerFunc(s.health))

	// Public API.
	{
		router.POST(s.router, "/register", s.authDomain.Register)
		router.POST(s.router, "/login", s.authDomain.Login)
		router.GET(s.router, "/getPlanFeatures", s.planDomain.GetFeatures)
		router.GET(s.router, "/getListDraw", s.drawDomain.GetList)
		router.GET(s.router, "/getLatestDraw", s.drawDomain.GetLatest)
		router.GET(s.router, "/getNumberFrequency", s.drawDomain.GetNumberFrequency)
		router.GET(s.router, "/getLatestResults", s.drawDomain.GetLatestResults)
	}

	// These following APIs need authentication.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.NewAuthVerifier().Middleware())
	{
		// User and plan API
		router.GET(authRouter, "/getMe", s.authDomain.GetMe)
		router.GET(authRouter, "/getMyPlan", s.planDomain.GetMyPlan)
		router.POST(authRouter, "/upgradePlan", s.planDomain.Upgrade)
		router.POST(authRouter, "/downgradePlan", s.planDomain.Downgrade)

		// Pick API
		router.POST(authRouter, "/savePick", s.pickDomain.Save)
		router.POST(authRouter, "/savePicks", s.pickDomain.SaveMany)
		router.GET(authRouter, "/getListPick", s.pickDomain.GetList)
		router.GET(authRouter, "/getPick", s.pickDomain.Get)
		router.POST(authRouter, "/updatePick", s.pickDomain.Update)
		router.POST(authRouter, "/deletePick", s.pickDomain.Delete)
		router.POST(authRouter, "/deletePicks", s.pickDomain.DeleteMany)
		router.GET(authRouter, "/getPickHistory", s.pickDomain.GetHistory)
		router.POST(authRouter, "/generatePick", s.pickDomain.Generate)
		router.POST(authRouter, "/checkPick", s.pickDomain.Check)
		router.POST(authRouter, "/checkAllPicks", s.pickDomain.CheckAll)

		// Group API
		router.GET(authRouter, "/getListGroup", s.groupDomain.GetList)
		router.POST(authRouter, "/createGroup", s.groupDomain.Create)
		router.POST(authRouter, "/renameGroup", s.groupDomain.Rename)
		router.POST(authRouter, "/deleteGroup", s.groupDomain.Delete)
	}

	// Analysis is open to every signed-in user, rate limited per user.
	analysisRouter := authRouter.Branch()
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	analysisRouter.Before(rateLimiter.Middleware())
	{
		router.POST(analysisRouter, "/analyzeCombinations", s.analysisDomain.AnalyzeCombinations)
		router.POST(analysisRouter, "/analyzeNumbers", s.analysisDomain.AnalyzeNumbers)
	}

	// These following APIs are only for users with an active pro plan.
	proRouter := authRouter.Branch()
	proRouter.Before(middleware.NewPlanVerifier(s.userRepo, s.planManager).RequirePro())
	{
		router.GET(proRouter, "/getDraw", s.drawDomain.Get)
		router.GET(proRouter, "/getDrawsByNumber", s.drawDomain.GetByNumber)
	}

	adminRouter := authRouter.Branch()
	adminRouter.Before(middleware.NewOnlyAdmin(s.userRepo).Middleware())
	{
		router.GET(adminRouter, "/getDashboard", s.adminDomain.GetDashboard)
		router.GET(adminRouter, "/getListUser", s.adminDomain.GetListUser)
		router.GET(adminRouter, "/getUser", s.adminDomain.GetUser)
		router.POST(adminRouter, "/activatePro", s.adminDomain.ActivatePro)
		router.POST(adminRouter, "/deactivatePro", s.adminDomain.DeactivatePro)
		router.GET(adminRouter, "/getPlanHistory", s.adminDomain.GetPlanHistory)
		router.POST(adminRouter, "/createDraw", s.drawDomain.Create)
		router.POST(adminRouter, "/deleteDraw", s.drawDomain.Delete)
		router.POST(adminRouter, "/refreshDraws", s.drawDomain.Refresh)
	}
}

func (s *srv) health(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := xcontext.DB(s.ctx).DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		xcontext.Logger(s.ctx).Errorf("Health check failed: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"unavailable"}`))
		return
	}

	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
