// Package http provides the HTTP API server, routing, and middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	envelopeHTTP "github.com/Arpan-gl/mirfa-test-app/internal/envelope/http"
	envelopeUseCase "github.com/Arpan-gl/mirfa-test-app/internal/envelope/usecase"
)

// Server represents the HTTP API server.
type Server struct {
	recordRepository envelopeUseCase.RecordRepository // Storage backend checked by the readiness endpoint
	host             string
	port             int
	logger           *slog.Logger
	router           *gin.Engine
	server           *http.Server
}

// NewServer creates a new HTTP server. The record repository is only used by
// the readiness endpoint to verify the storage backend is reachable.
func NewServer(
	recordRepository envelopeUseCase.RecordRepository,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		recordRepository: recordRepository,
		host:             host,
		port:             port,
		logger:           logger,
	}
}

// SetupRouter configures the Gin router with all routes and middleware.
// Must be called before Start.
func (s *Server) SetupRouter(
	recordHandler *envelopeHTTP.RecordHandler,
	rateLimitMiddleware gin.HandlerFunc,
	metricsMiddleware gin.HandlerFunc,
	corsEnabled bool,
	corsAllowOrigins string,
) {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(corsEnabled, corsAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsMiddleware != nil {
		router.Use(metricsMiddleware)
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// API routes
	v1 := router.Group("/v1")
	if rateLimitMiddleware != nil {
		v1.Use(rateLimitMiddleware)
	}

	records := v1.Group("/records")
	{
		records.POST("", recordHandler.EncryptHandler)
		records.GET("", recordHandler.ListHandler)
		records.POST("/decrypt", recordHandler.DecryptRecordHandler)
		records.GET("/:id", recordHandler.GetHandler)
		records.POST("/:id/decrypt", recordHandler.DecryptHandler)
	}

	s.router = router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic. The storage
// backend must answer a ping for the server to be considered ready.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.recordRepository == nil {
		components["storage"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := s.recordRepository.Ping(ctx); err != nil {
			s.logger.Warn("storage ping failed", slog.Any("error", err))
			components["storage"] = "error"
			ready = false
		} else {
			components["storage"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// GetHandler returns the http.Handler for testing purposes.
// It returns nil until SetupRouter has been called.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Start starts the HTTP server. Blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured, call SetupRouter first")
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.host, s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
