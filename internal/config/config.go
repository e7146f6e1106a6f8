package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Gateway  GatewayConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Worker   WorkerConfig
	Feed     FeedConfig
	Server   ServerConfig
	Sandbox  SandboxConfig
	Log      LogConfig
}

type GatewayConfig struct {
	BaseURL         string        `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
	Timeout         time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	AppVersion      string        `env:"APP_VERSION" envDefault:"1.2.0"`
	BuildNumber     string        `env:"APP_BUILD_NUMBER" envDefault:"26"`
	BreakerFailures uint32        `env:"API_BREAKER_FAILURES" envDefault:"5"`
	BreakerOpenFor  time.Duration `env:"API_BREAKER_OPEN_FOR" envDefault:"30s"`
	BreakerHalfOpen uint32        `env:"API_BREAKER_HALF_OPEN_REQUESTS" envDefault:"1"`
	BreakerInterval time.Duration `env:"API_BREAKER_INTERVAL" envDefault:"60s"`
}

// StorageConfig selects the key-value backend: memory, file, postgres or redis.
type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND" envDefault:"file"`
	Dir     string `env:"STORAGE_DIR" envDefault:".ticket-engine"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"ticket_engine"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"5"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"1"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"ticket-engine:"`
}

type WorkerConfig struct {
	BalanceRefreshInterval time.Duration `env:"WORKER_BALANCE_REFRESH_INTERVAL" envDefault:"5m"`
}

type FeedConfig struct {
	Enabled        bool          `env:"FEED_ENABLED" envDefault:"false"`
	ReconnectDelay time.Duration `env:"FEED_RECONNECT_DELAY" envDefault:"2s"`
	MaxBackoff     time.Duration `env:"FEED_MAX_BACKOFF" envDefault:"1m"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	AllowedOrigins  []string      `env:"SERVER_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// SandboxConfig seeds the wallets of the development gateway.
type SandboxConfig struct {
	RequireAuth         bool    `env:"SANDBOX_REQUIRE_AUTH" envDefault:"false"`
	SubscriptionCredits int     `env:"SANDBOX_SUBSCRIPTION_CREDITS" envDefault:"20"`
	PurchasedCredits    int     `env:"SANDBOX_PURCHASED_CREDITS" envDefault:"0"`
	Tier                string  `env:"SANDBOX_TIER" envDefault:"premium"`
	AIChatTokenLimit    int     `env:"SANDBOX_AI_CHAT_TOKEN_LIMIT" envDefault:"10000"`
	TokensPerCredit     int     `env:"SANDBOX_TOKENS_PER_CREDIT" envDefault:"1000"`
	RateLimit           float64 `env:"SANDBOX_RATE_LIMIT" envDefault:"0"`
	RateBurst           int     `env:"SANDBOX_RATE_BURST" envDefault:"20"`
}

type LogConfig struct {
	Pretty bool   `env:"LOG_PRETTY" envDefault:"true"`
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
