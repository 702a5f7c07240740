package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// requestDurationBuckets are the histogram boundaries, in seconds, for HTTP
// request durations.
var requestDurationBuckets = []float64{
	0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
}

// httpMetrics holds the per-request instruments.
type httpMetrics struct {
	requestCounter   metric.Int64Counter
	durationHisto    metric.Float64Histogram
	requestsInFlight metric.Int64UpDownCounter
}

func newHTTPMetrics(meterProvider metric.MeterProvider, namespace string) (*httpMetrics, error) {
	meter := meterProvider.Meter(namespace)

	requestCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", namespace),
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", namespace),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(requestDurationBuckets...),
	)
	if err != nil {
		return nil, err
	}

	requestsInFlight, err := meter.Int64UpDownCounter(
		fmt.Sprintf("%s_http_requests_in_flight", namespace),
		metric.WithDescription("Number of HTTP requests currently being served"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{
		requestCounter:   requestCounter,
		durationHisto:    durationHisto,
		requestsInFlight: requestsInFlight,
	}, nil
}

// HTTPMetricsMiddleware returns a Gin middleware recording request totals,
// durations, and the in-flight count. The path label is the matched route
// pattern (for example /v1/records/:id), never the raw URL, which keeps the
// label cardinality bounded. When instrument creation fails the middleware
// degrades to a pass-through instead of failing the server.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string) gin.HandlerFunc {
	instruments, err := newHTTPMetrics(meterProvider, namespace)
	if err != nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := sanitizePath(c.FullPath())
		routeAttrs := metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		)

		instruments.requestsInFlight.Add(c.Request.Context(), 1, routeAttrs)
		c.Next()
		instruments.requestsInFlight.Add(c.Request.Context(), -1, routeAttrs)

		attrs := metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
			attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
		)

		instruments.requestCounter.Add(c.Request.Context(), 1, attrs)
		instruments.durationHisto.Record(c.Request.Context(), time.Since(start).Seconds(), attrs)
	}
}

// sanitizePath maps a request to its route pattern for the path label.
// Requests that matched no route report "unknown".
func sanitizePath(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return fullPath
}
