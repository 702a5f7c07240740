package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// scrape serves the provider's handler once and returns the exposition body.
func scrape(t *testing.T, provider *Provider) string {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestNewProvider(t *testing.T) {
	t.Run("Success_ServesExposition", func(t *testing.T) {
		provider, err := NewProvider()
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		output := scrape(t, provider)
		assert.Contains(t, output, "# ")
	})

	t.Run("Success_RegistryCarriesRuntimeCollectors", func(t *testing.T) {
		provider, err := NewProvider()
		require.NoError(t, err)

		output := scrape(t, provider)
		assert.Contains(t, output, "go_goroutines")
		assert.Contains(t, output, "go_memstats_alloc_bytes")
	})
}

func TestProvider_MeterProvider(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	// An instrument created through the provider must surface in the scrape.
	meter := provider.MeterProvider().Meter("test_app")
	counter, err := meter.Int64Counter("test_app_probe_total")
	require.NoError(t, err)

	counter.Add(context.Background(), 3, metric.WithAttributes(attribute.String("source", "unit")))

	output := scrape(t, provider)
	assert.Regexp(t, `test_app_probe_total\{[^}]*source="unit"[^}]*\} 3`, output)
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_AfterUse", func(t *testing.T) {
		provider, err := NewProvider()
		require.NoError(t, err)

		_ = scrape(t, provider)
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("Success_ZeroValueProvider", func(t *testing.T) {
		provider := &Provider{}
		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}
