package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// StoreDriver selects the EntityStore backend: "mongo" or "memory".
	StoreDriver string `env:"STORE_DRIVER, default=mongo"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=clinic_system"`
}

type RedisConfig struct {
	// Addr enables the Redis document cache when non-empty.
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB,        default=0"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL, default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
