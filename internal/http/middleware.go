package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CustomLoggerMiddleware logs one structured line per request after the
// handler chain finishes. The request id set by the requestid middleware is
// included when present.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		logger.Info("http request",
			slog.String("request_id", requestid.Get(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// rateLimiterStore keeps one token bucket per client IP. Entries idle for
// over an hour are dropped by a background sweep so address churn cannot grow
// the map without bound.
type rateLimiterStore struct {
	limiters sync.Map // client IP -> *rateLimiterEntry
	rps      float64
	burst    int
}

type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// RateLimitMiddleware enforces a per-client-IP token bucket on the API
// routes. Client identity comes from c.ClientIP(), which honors
// X-Forwarded-For and X-Real-IP before falling back to the socket address.
//
// Rejected requests get a 429 with a Retry-After hint in whole seconds.
func RateLimitMiddleware(rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := &rateLimiterStore{
		rps:   rps,
		burst: burst,
	}

	go store.sweepIdle(context.Background(), 5*time.Minute, time.Hour)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := store.limiterFor(clientIP)

		if !limiter.Allow() {
			res := limiter.Reserve()
			retryAfter := int(res.Delay().Seconds())
			res.Cancel()

			logger.Debug("rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": "Too many requests from this IP. Please retry after the specified delay.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// limiterFor returns the token bucket for an IP, creating it on first use and
// refreshing its last-access time.
func (s *rateLimiterStore) limiterFor(ip string) *rate.Limiter {
	val, ok := s.limiters.Load(ip)
	if !ok {
		val, _ = s.limiters.LoadOrStore(ip, &rateLimiterEntry{
			limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
			lastAccess: time.Now(),
		})
	}

	entry := val.(*rateLimiterEntry)
	entry.mu.Lock()
	entry.lastAccess = time.Now()
	entry.mu.Unlock()

	return entry.limiter
}

// sweepIdle periodically deletes limiters that have not been touched within
// maxIdle.
func (s *rateLimiterStore) sweepIdle(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-maxIdle)
			s.limiters.Range(func(key, value any) bool {
				entry := value.(*rateLimiterEntry)
				entry.mu.Lock()
				idle := entry.lastAccess.Before(cutoff)
				entry.mu.Unlock()

				if idle {
					s.limiters.Delete(key)
				}
				return true
			})
		}
	}
}
