package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	Database     DatabaseConfigs
	ApiServer    APIServerConfigs
	Auth         AuthConfigs
	Redis        RedisConfigs
	Cache        CacheConfigs
	RateLimit    RateLimitConfigs
	Ingestion    IngestionConfigs
	Notification NotificationConfigs
	Plan         PlanConfigs
}

type DatabaseConfigs struct {
	Driver   string
	Host     string
	Port     string
	Database string
	User     string
	Password string
	LogLevel string
}

func (d *DatabaseConfigs) ConnectionString() string {
	switch d.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=America/Sao_Paulo",
			d.Host,
			d.Port,
			d.User,
			d.Password,
			d.Database,
		)
	case "sqlite":
		return d.Database
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User,
			d.Password,
			d.Host,
			d.Port,
			d.Database,
		)
	}
}

type APIServerConfigs struct {
	ServerConfigs

	MaxLimit     int
	DefaultLimit int
	AllowOrigins []string
}

type ServerConfigs struct {
	Host string
	Port string
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AuthConfigs struct {
	TokenSecret string
	AccessToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type RedisConfigs struct {
	Addr string
}

type CacheConfigs struct {
	// Backend is either "memory" or "redis".
	Backend          string
	LatestResultsTTL time.Duration
}

type RateLimitConfigs struct {
	RequestsPerSecond float64
	Burst             int
}

type IngestionConfigs struct {
	CaixaBaseURL string
	Timeout      time.Duration
	Schedule     string
	MaxBackfill  int
}

type NotificationConfigs struct {
	// Broker is "kafka", "nats" or empty to disable notifications.
	Broker     string
	Topic      string
	KafkaAddrs []string
	NatsURL    string
}

type PlanConfigs struct {
	DefaultDurationDays int
}
