// Package app wires the application together. The Container builds each
// component lazily on first request and memoizes it, so construction order
// follows the dependency graph and every component is a singleton.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Arpan-gl/mirfa-test-app/internal/config"
	cryptoDomain "github.com/Arpan-gl/mirfa-test-app/internal/crypto/domain"
	cryptoService "github.com/Arpan-gl/mirfa-test-app/internal/crypto/service"
	envelopeHTTP "github.com/Arpan-gl/mirfa-test-app/internal/envelope/http"
	envelopeService "github.com/Arpan-gl/mirfa-test-app/internal/envelope/service"
	envelopeUseCase "github.com/Arpan-gl/mirfa-test-app/internal/envelope/usecase"
	"github.com/Arpan-gl/mirfa-test-app/internal/http"
	"github.com/Arpan-gl/mirfa-test-app/internal/metrics"
)

// lazy memoizes one value together with its construction error.
type lazy[T any] struct {
	once  sync.Once
	value T
	err   error
}

// get builds the value on first call; later calls return the memoized
// result, error included.
func (l *lazy[T]) get(init func() (T, error)) (T, error) {
	l.once.Do(func() {
		l.value, l.err = init()
	})
	return l.value, l.err
}

// Container is the dependency injection root.
type Container struct {
	config *config.Config

	logger     *slog.Logger
	loggerOnce sync.Once

	aeadManager     cryptoService.AEADManager
	aeadManagerOnce sync.Once
	keyManager      cryptoService.KeyManager
	keyManagerOnce  sync.Once

	redisClient      lazy[*redis.Client]
	masterKey        lazy[*cryptoDomain.MasterKey]
	envelopeService  lazy[envelopeService.EnvelopeService]
	recordRepository lazy[envelopeUseCase.RecordRepository]
	recordUseCase    lazy[envelopeUseCase.RecordUseCase]
	recordHandler    lazy[*envelopeHTTP.RecordHandler]
	metricsProvider  lazy[*metrics.Provider]
	businessMetrics  lazy[metrics.BusinessMetrics]
	httpServer       lazy[*http.Server]
	metricsServer    lazy[*http.MetricsServer]
}

// NewContainer creates a container around the given configuration. Nothing
// is constructed until first use.
func NewContainer(cfg *config.Config) *Container {
	return &Container{config: cfg}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the process-wide structured logger, created on first use
// from the configured level.
func (c *Container) Logger() *slog.Logger {
	c.loggerOnce.Do(func() {
		c.logger = newLogger(c.config.LogLevel)
	})
	return c.logger
}

// RedisClient returns the client used by the redis record store. The first
// call connects and pings the server.
func (c *Container) RedisClient() (*redis.Client, error) {
	return c.redisClient.get(c.initRedisClient)
}

// MetricsProvider returns the OpenTelemetry metrics provider.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	return c.metricsProvider.get(c.initMetricsProvider)
}

// BusinessMetrics returns the business metrics recorder. When metrics are
// disabled it returns a no-op recorder, so callers never branch on
// configuration.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	return c.businessMetrics.get(c.initBusinessMetrics)
}

// HTTPServer returns the API server with all routes configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	return c.httpServer.get(c.initHTTPServer)
}

// MetricsServer returns the Prometheus metrics server, or nil when metrics
// are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	return c.metricsServer.get(c.initMetricsServer)
}

// Shutdown tears down every resource that was actually built. Call it after
// the servers have stopped serving.
func (c *Container) Shutdown(ctx context.Context) error {
	var errs []error

	if srv := c.httpServer.value; srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
		}
	}
	if srv := c.metricsServer.value; srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}
	if provider := c.metricsProvider.value; provider != nil {
		if err := provider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}
	if client := c.redisClient.value; client != nil {
		if err := client.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}

	return errors.Join(errs...)
}

// newLogger builds a JSON logger at the given level. Unknown levels fall
// back to info.
func newLogger(level string) *slog.Logger {
	logLevel := slog.LevelInfo
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func (c *Container) initRedisClient() (*redis.Client, error) {
	opts, err := redis.ParseURL(c.config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	provider, err := metrics.NewProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	recordHandler, err := c.RecordHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get record handler for http server: %w", err)
	}

	recordRepository, err := c.RecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get record repository for http server: %w", err)
	}

	server := http.NewServer(recordRepository, c.config.ServerHost, c.config.ServerPort, logger)

	var rateLimitMiddleware gin.HandlerFunc
	if c.config.RateLimitEnabled {
		rateLimitMiddleware = http.RateLimitMiddleware(
			c.config.RateLimitRequestsPerSec,
			c.config.RateLimitBurst,
			logger,
		)
	}

	var metricsMiddleware gin.HandlerFunc
	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		metricsMiddleware = metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace)
	}

	server.SetupRouter(
		recordHandler,
		rateLimitMiddleware,
		metricsMiddleware,
		c.config.CORSEnabled,
		c.config.CORSAllowOrigins,
	)

	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
