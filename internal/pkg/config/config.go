package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// MutationDelayMS injects simulated processing latency ahead of every
	// ledger write. Useful for exercising ordering and cancellation; leave
	// at 0 in production.
	MutationDelayMS int `env:"MUTATION_DELAY_MS, default=0"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Portfolio PortfolioConfig
}

// MongoConfig configures the persistent credential directory. An empty URI
// means unconfigured: authentication then uses only the built-in demo
// directory and registration is disabled.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB,  default=zamreal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// PortfolioConfig holds the configuration-level summary figures shown on
// the dashboard. They are not derived from the ledger; only the
// maintenance backlog is.
type PortfolioConfig struct {
	TotalUnits int     `env:"PORTFOLIO_TOTAL_UNITS, default=42"`
	Occupied   int     `env:"PORTFOLIO_OCCUPIED,    default=38"`
	ArrearsZMW float64 `env:"PORTFOLIO_ARREARS_ZMW, default=72000"`
}

// MutationDelay returns the injected write latency as a duration.
func (c *Config) MutationDelay() time.Duration {
	return time.Duration(c.MutationDelayMS) * time.Millisecond
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
