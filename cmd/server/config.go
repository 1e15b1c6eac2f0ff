package main

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/webapp/pkg/logger"
)

// config is read from the environment.
type config struct {
	Sentry          logger.SentryConfig
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	AppName         string        `env:"APP_NAME" envDefault:"webapp"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	RedisURL        string        `env:"REDIS_URL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	OutputCacheTTL  time.Duration `env:"OUTPUT_CACHE_TTL" envDefault:"5m"`
	OutputCacheMax  int           `env:"OUTPUT_CACHE_MAX_ENTRIES" envDefault:"1024"`
}

func loadConfig() (config, error) {
	return env.ParseAs[config]()
}
