package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arpan-gl/mirfa-test-app/internal/config"
	envelopeRepository "github.com/Arpan-gl/mirfa-test-app/internal/envelope/repository"
	"github.com/Arpan-gl/mirfa-test-app/internal/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:              "localhost",
		ServerPort:              8080,
		LogLevel:                "error",
		StorageDriver:           "memory",
		RateLimitEnabled:        false,
		RateLimitRequestsPerSec: 10.0,
		RateLimitBurst:          20,
		MetricsEnabled:          false,
		MetricsNamespace:        "mirfa",
		MetricsPort:             8081,
		ShutdownTimeout:         30 * time.Second,
	}
}

func TestNewContainer(t *testing.T) {
	cfg := testConfig()

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainer_Logger(t *testing.T) {
	t.Run("Success_ReturnsSameInstance", func(t *testing.T) {
		container := NewContainer(testConfig())

		logger := container.Logger()

		require.NotNil(t, logger)
		assert.Same(t, logger, container.Logger())
	})

	t.Run("Success_UnknownLevelDefaultsToInfo", func(t *testing.T) {
		cfg := testConfig()
		cfg.LogLevel = "not-a-level"
		container := NewContainer(cfg)

		require.NotNil(t, container.Logger())
	})
}

func TestContainer_MasterKey(t *testing.T) {
	t.Run("Success_ValidKey", func(t *testing.T) {
		t.Setenv("MASTER_KEY", strings.Repeat("ab", 32))
		container := NewContainer(testConfig())

		masterKey, err := container.MasterKey()

		require.NoError(t, err)
		require.NotNil(t, masterKey)

		// Repeated access returns the cached instance.
		again, err := container.MasterKey()
		require.NoError(t, err)
		assert.Same(t, masterKey, again)
	})

	t.Run("Error_MissingKey", func(t *testing.T) {
		t.Setenv("MASTER_KEY", "")
		container := NewContainer(testConfig())

		_, err := container.MasterKey()
		require.Error(t, err)

		// The error is cached and returned on subsequent calls.
		_, err = container.MasterKey()
		require.Error(t, err)
	})
}

func TestContainer_RecordRepository(t *testing.T) {
	t.Run("Success_MemoryDriver", func(t *testing.T) {
		container := NewContainer(testConfig())

		repo, err := container.RecordRepository()

		require.NoError(t, err)
		assert.IsType(t, &envelopeRepository.MemoryRecordRepository{}, repo)
	})

	t.Run("Success_RedisDriver", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := testConfig()
		cfg.StorageDriver = "redis"
		cfg.RedisURL = "redis://" + mr.Addr()
		container := NewContainer(cfg)

		repo, err := container.RecordRepository()

		require.NoError(t, err)
		assert.IsType(t, &envelopeRepository.RedisRecordRepository{}, repo)
		require.NoError(t, container.Shutdown(context.Background()))
	})

	t.Run("Error_UnsupportedDriver", func(t *testing.T) {
		cfg := testConfig()
		cfg.StorageDriver = "cassandra"
		container := NewContainer(cfg)

		_, err := container.RecordRepository()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported storage driver")
	})

	t.Run("Error_RedisUnreachable", func(t *testing.T) {
		cfg := testConfig()
		cfg.StorageDriver = "redis"
		cfg.RedisURL = "redis://localhost:1"
		container := NewContainer(cfg)

		_, err := container.RecordRepository()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to redis")
	})
}

func TestContainer_RecordUseCase(t *testing.T) {
	t.Run("Success_WithoutMetrics", func(t *testing.T) {
		t.Setenv("MASTER_KEY", strings.Repeat("ab", 32))
		container := NewContainer(testConfig())

		useCase, err := container.RecordUseCase()

		require.NoError(t, err)
		require.NotNil(t, useCase)

		again, err := container.RecordUseCase()
		require.NoError(t, err)
		assert.Same(t, useCase, again)
	})

	t.Run("Success_WithMetrics", func(t *testing.T) {
		t.Setenv("MASTER_KEY", strings.Repeat("ab", 32))
		cfg := testConfig()
		cfg.MetricsEnabled = true
		container := NewContainer(cfg)

		useCase, err := container.RecordUseCase()

		require.NoError(t, err)
		require.NotNil(t, useCase)
		require.NoError(t, container.Shutdown(context.Background()))
	})

	t.Run("Error_MasterKeyNotConfigured", func(t *testing.T) {
		t.Setenv("MASTER_KEY", "")
		container := NewContainer(testConfig())

		_, err := container.RecordUseCase()

		require.Error(t, err)
	})
}

func TestContainer_BusinessMetrics(t *testing.T) {
	t.Run("Success_NoOpWhenDisabled", func(t *testing.T) {
		container := NewContainer(testConfig())

		businessMetrics, err := container.BusinessMetrics()

		require.NoError(t, err)
		assert.IsType(t, metrics.NewNoOpBusinessMetrics(), businessMetrics)
	})

	t.Run("Success_RealWhenEnabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = true
		container := NewContainer(cfg)

		businessMetrics, err := container.BusinessMetrics()

		require.NoError(t, err)
		require.NotNil(t, businessMetrics)
		require.NoError(t, container.Shutdown(context.Background()))
	})
}

func TestContainer_HTTPServer(t *testing.T) {
	t.Setenv("MASTER_KEY", strings.Repeat("ab", 32))
	container := NewContainer(testConfig())

	server, err := container.HTTPServer()

	require.NoError(t, err)
	require.NotNil(t, server)

	again, err := container.HTTPServer()
	require.NoError(t, err)
	assert.Same(t, server, again)
}

func TestContainer_MetricsServer(t *testing.T) {
	t.Run("Success_NilWhenDisabled", func(t *testing.T) {
		container := NewContainer(testConfig())

		metricsServer, err := container.MetricsServer()

		require.NoError(t, err)
		assert.Nil(t, metricsServer)
	})

	t.Run("Success_CreatedWhenEnabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = true
		container := NewContainer(cfg)

		metricsServer, err := container.MetricsServer()

		require.NoError(t, err)
		require.NotNil(t, metricsServer)
		require.NoError(t, container.Shutdown(context.Background()))
	})
}

func TestContainer_Shutdown(t *testing.T) {
	container := NewContainer(testConfig())

	// Shutdown is safe when no components were initialized.
	require.NoError(t, container.Shutdown(context.Background()))
}
