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

	Booking BookingConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type BookingConfig struct {
	// TaxesAndFees is the fixed charge added to every booking total.
	TaxesAndFees            float64       `env:"BOOKING_TAXES_AND_FEES,    default=25"`
	CompletionSweepInterval time.Duration `env:"COMPLETION_SWEEP_INTERVAL, default=1h"`
	SummaryCacheTTL         time.Duration `env:"SUMMARY_CACHE_TTL,         default=5m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=booking_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
