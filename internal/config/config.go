// README: Config loader with env defaults for HTTP, Redis, rate limiting, and demo seeding.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr string
	}
	RateLimit RateLimitConfig
	Demo      struct {
		Seed bool
	}
}

func Load() (Config, error) {
	// Missing .env is fine, real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("GAMEDAY_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("GAMEDAY_REDIS_ADDR", "")
	cfg.RateLimit.Enabled = envOrDefaultBool("GAMEDAY_RATE_LIMIT_ENABLED", false)
	cfg.RateLimit.Capacity = envOrDefaultInt("GAMEDAY_RATE_LIMIT_CAPACITY", 60)
	cfg.RateLimit.RefillTokens = envOrDefaultInt("GAMEDAY_RATE_LIMIT_REFILL_TOKENS", 1)
	cfg.RateLimit.RefillInterval = envOrDefaultDuration("GAMEDAY_RATE_LIMIT_REFILL_INTERVAL", time.Second)
	cfg.RateLimit.TTL = envOrDefaultDuration("GAMEDAY_RATE_LIMIT_TTL", 10*time.Minute)
	cfg.Demo.Seed = envOrDefaultBool("GAMEDAY_DEMO_SEED", true)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
