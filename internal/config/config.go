// Package config resolves runtime settings from environment variables,
// optionally seeded from a .env file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config carries the runtime settings for the API server, the record store,
// and the operational endpoints. Every value has a default, so a bare start
// works out of the box.
//
// The master key is deliberately absent. It is a secret, and the crypto
// domain reads it from the environment on its own.
type Config struct {
	// ServerHost and ServerPort form the API listen address.
	ServerHost string
	ServerPort int

	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string

	// StorageDriver selects the record store backend ("memory" or "redis").
	StorageDriver string
	// RedisURL is the connection URL for the redis record store.
	RedisURL string

	// RateLimitEnabled turns per-client-IP rate limiting on or off.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the sustained request rate allowed per IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst capacity of each per-IP bucket.
	RateLimitBurst int

	// CORSEnabled turns the CORS middleware on or off.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins.
	CORSAllowOrigins string

	// MetricsEnabled turns metric collection and the metrics listener on or off.
	MetricsEnabled bool
	// MetricsNamespace prefixes every metric name.
	MetricsNamespace string
	// MetricsPort is the listen port of the metrics server.
	MetricsPort int

	// ShutdownTimeout bounds how long graceful shutdown waits for in-flight
	// requests.
	ShutdownTimeout time.Duration
}

// Load reads the configuration from environment variables, after loading the
// nearest .env file if one exists.
func Load() *Config {
	loadDotEnv()

	return &Config{
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		LogLevel: env.GetString("LOG_LEVEL", "info"),

		StorageDriver: env.GetString("STORAGE_DRIVER", "memory"),
		RedisURL:      env.GetString("REDIS_URL", "redis://localhost:6379/0"),

		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "mirfa"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 30, time.Second),
	}
}

// GetGinMode maps the log level to a gin mode. Debug logging turns on gin's
// verbose mode, everything else runs in release mode.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv walks from the working directory toward the filesystem root and
// loads the first .env file it finds. Not finding one is fine, the process
// environment is simply used as is.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			_ = godotenv.Load(candidate)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
