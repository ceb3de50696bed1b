package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/loterias-lab/backend/config"
	"github.com/loterias-lab/backend/internal/client"
	"github.com/loterias-lab/backend/internal/common"
	"github.com/loterias-lab/backend/internal/domain"
	"github.com/loterias-lab/backend/internal/domain/drawupdater"
	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/migration"
	"github.com/loterias-lab/backend/pkg/authenticator"
	"github.com/loterias-lab/backend/pkg/kafka"
	"github.com/loterias-lab/backend/pkg/logger"
	"github.com/loterias-lab/backend/pkg/nats"
	"github.com/loterias-lab/backend/pkg/pubsub"
	"github.com/loterias-lab/backend/pkg/router"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/loterias-lab/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	router *router.Router

	redisClient xredis.Client
	publisher   pubsub.Publisher
	resultCache common.ResultCache
	caixaClient client.CaixaClient
	updater     drawupdater.Updater
	planManager *common.PlanManager
	notifier    *common.Notifier

	userRepo        repository.UserRepository
	planHistoryRepo repository.PlanHistoryRepository
	drawRepo        repository.DrawRepository
	pickRepo        repository.PickRepository
	matchRecordRepo repository.MatchRecordRepository
	pickGroupRepo   repository.PickGroupRepository

	authDomain     domain.AuthDomain
	planDomain     domain.PlanDomain
	drawDomain     domain.DrawDomain
	pickDomain     domain.PickDomain
	groupDomain    domain.GroupDomain
	analysisDomain domain.AnalysisDomain
	adminDomain    domain.AdminDomain
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	level := logger.INFO
	if cfg.Env == "local" {
		level = logger.DEBUG
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
	s.ctx = xcontext.WithSnowFlake(s.ctx, node)
	s.ctx = xcontext.WithTokenEngine(s.ctx, authenticator.NewTokenEngine[model.AccessToken](
		cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration))

	return nil
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx).Database

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.ConnectionString(),
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		})
	case "postgres":
		dialector = postgres.Open(cfg.ConnectionString())
	case "sqlite":
		dialector = sqlite.Open(cfg.ConnectionString())
	default:
		panic(fmt.Sprintf("unsupported database driver %s", cfg.Driver))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) migrateDB() {
	if err := migration.Migrate(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx, xcontext.Configs(s.ctx).Redis.Addr)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadResultCache() {
	cfg := xcontext.Configs(s.ctx).Cache
	switch cfg.Backend {
	case "redis":
		s.loadRedisClient()
		s.resultCache = common.NewRedisCache(s.redisClient, cfg.LatestResultsTTL)
	default:
		s.resultCache = common.NewMemoryCache(cfg.LatestResultsTTL)
	}
}

func (s *srv) loadPublisher() {
	cfg := xcontext.Configs(s.ctx).Notification
	switch cfg.Broker {
	case "kafka":
		publisher, err := kafka.NewPublisher("loterias-api", cfg.KafkaAddrs)
		if err != nil {
			panic(err)
		}
		s.publisher = publisher
	case "nats":
		conn, err := nats.Connect(cfg.NatsURL, "loterias-api")
		if err != nil {
			panic(err)
		}
		s.publisher = nats.NewPublisher(conn)
	default:
		xcontext.Logger(s.ctx).Infof("No notification broker, notifications are dropped")
		s.publisher = pubsub.NewNoopPublisher()
	}

	s.notifier = common.NewNotifier(s.publisher, cfg.Topic)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.planHistoryRepo = repository.NewPlanHistoryRepository()
	s.drawRepo = repository.NewDrawRepository()
	s.pickRepo = repository.NewPickRepository()
	s.matchRecordRepo = repository.NewMatchRecordRepository()
	s.pickGroupRepo = repository.NewPickGroupRepository()
}

func (s *srv) loadUpdater() {
	cfg := xcontext.Configs(s.ctx).Ingestion
	s.caixaClient = client.NewCaixaClient(cfg.CaixaBaseURL, cfg.Timeout)
	s.updater = drawupdater.New(s.drawRepo, s.caixaClient)
}

func (s *srv) loadDomains() {
	s.planManager = common.NewPlanManager(s.userRepo, s.planHistoryRepo, s.notifier)

	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.planDomain = domain.NewPlanDomain(s.userRepo, s.planManager)
	s.drawDomain = domain.NewDrawDomain(s.drawRepo, s.resultCache, s.updater)
	s.pickDomain = domain.NewPickDomain(s.pickRepo, s.drawRepo, s.matchRecordRepo, s.notifier)
	s.groupDomain = domain.NewGroupDomain(s.pickGroupRepo, s.pickRepo)
	s.analysisDomain = domain.NewAnalysisDomain(s.drawRepo)
	s.adminDomain = domain.NewAdminDomain(
		s.userRepo, s.planHistoryRepo, s.pickRepo, s.drawRepo, s.planManager)
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Error
	}
}

// shutdownTimeout bounds the graceful shutdown of servers and subscribers.
const shutdownTimeout = 10 * time.Second
