package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

func Default() Configs {
	return Configs{
		Env: "local",
		Database: DatabaseConfigs{
			Driver:   "mysql",
			Host:     "localhost",
			Port:     "3306",
			Database: "loterias",
			User:     "root",
			LogLevel: "error",
		},
		ApiServer: APIServerConfigs{
			ServerConfigs: ServerConfigs{Host: "", Port: "8080"},
			MaxLimit:      100,
			DefaultLimit:  20,
			AllowOrigins:  []string{"*"},
		},
		Auth: AuthConfigs{
			TokenSecret: "secret",
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
		},
		Redis: RedisConfigs{Addr: "localhost:6379"},
		Cache: CacheConfigs{
			Backend:          "memory",
			LatestResultsTTL: 5 * time.Minute,
		},
		RateLimit: RateLimitConfigs{RequestsPerSecond: 5, Burst: 10},
		Ingestion: IngestionConfigs{
			CaixaBaseURL: "https://servicebus2.caixa.gov.br/portaldeloterias/api",
			Timeout:      15 * time.Second,
			Schedule:     "0 21,22,23 * * 1-6",
			MaxBackfill:  50,
		},
		Notification: NotificationConfigs{Topic: "loterias.notification"},
		Plan:         PlanConfigs{DefaultDurationDays: 30},
	}
}

// Load reads the TOML file at path (skipped when it does not exist), then
// applies the environment variables, including those declared in a .env file.
func Load(path string) (Configs, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func applyEnv(cfg *Configs) error {
	setString(&cfg.Env, "ENV")

	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.Database, "DB_NAME")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.LogLevel, "DB_LOG_LEVEL")

	setString(&cfg.ApiServer.Host, "API_HOST")
	setString(&cfg.ApiServer.Port, "API_PORT")
	setList(&cfg.ApiServer.AllowOrigins, "API_ALLOW_ORIGINS")

	setString(&cfg.Auth.TokenSecret, "TOKEN_SECRET")
	if err := setDuration(&cfg.Auth.AccessToken.Expiration, "ACCESS_TOKEN_EXPIRATION"); err != nil {
		return err
	}

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Cache.Backend, "CACHE_BACKEND")
	if err := setDuration(&cfg.Cache.LatestResultsTTL, "CACHE_LATEST_RESULTS_TTL"); err != nil {
		return err
	}

	if v, ok := os.LookupEnv("RATE_LIMIT_RPS"); ok {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		cfg.RateLimit.RequestsPerSecond = rps
	}
	if err := setInt(&cfg.RateLimit.Burst, "RATE_LIMIT_BURST"); err != nil {
		return err
	}

	setString(&cfg.Ingestion.CaixaBaseURL, "CAIXA_BASE_URL")
	setString(&cfg.Ingestion.Schedule, "INGESTION_SCHEDULE")
	if err := setDuration(&cfg.Ingestion.Timeout, "INGESTION_TIMEOUT"); err != nil {
		return err
	}
	if err := setInt(&cfg.Ingestion.MaxBackfill, "INGESTION_MAX_BACKFILL"); err != nil {
		return err
	}

	setString(&cfg.Notification.Broker, "NOTIFICATION_BROKER")
	setString(&cfg.Notification.Topic, "NOTIFICATION_TOPIC")
	setList(&cfg.Notification.KafkaAddrs, "KAFKA_ADDRS")
	setString(&cfg.Notification.NatsURL, "NATS_URL")

	return setInt(&cfg.Plan.DefaultDurationDays, "PLAN_DEFAULT_DURATION_DAYS")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setList(dst *[]string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = strings.Split(v, ",")
	}
}

func setInt(dst *int, key string) error {
	if v, ok := os.LookupEnv(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
	}

	return nil
}

func setDuration(dst *time.Duration, key string) error {
	if v, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*dst = d
	}

	return nil
}
