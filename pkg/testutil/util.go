package testutil

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/loterias-lab/backend/config"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/pkg/authenticator"
	"github.com/loterias-lab/backend/pkg/logger"
	"github.com/loterias-lab/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func MockConfigs() config.Configs {
	cfg := config.Default()
	cfg.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.ApiServer.MaxLimit = 50
	cfg.ApiServer.DefaultLimit = 10
	cfg.Auth.TokenSecret = "secret"
	cfg.Auth.AccessToken = config.TokenConfigs{
		Name:       "access_token",
		Expiration: time.Minute,
	}
	cfg.Cache.LatestResultsTTL = time.Minute
	cfg.Ingestion.MaxBackfill = 10

	return cfg
}

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	// Every connection to ":memory:" opens a new database.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	node, err := snowflake.NewNode(0)
	if err != nil {
		panic(err)
	}

	cfg := MockConfigs()

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine[model.AccessToken](
		cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration))
	ctx = xcontext.WithDB(ctx, db)
	ctx = xcontext.WithSnowFlake(ctx, node)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
