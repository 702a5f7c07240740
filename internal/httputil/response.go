// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Arpan-gl/mirfa-test-app/internal/errors"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// classify maps an error to its HTTP status and client-facing body. Client
// input errors carry the error text, server-side faults get a generic
// message so internals never leak.
func classify(err error) (int, ErrorResponse) {
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "The requested resource was not found",
		}
	case apperrors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, ErrorResponse{
			Error:   "conflict",
			Message: "A conflict occurred with existing data",
		}
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "invalid_input",
			Message: err.Error(),
		}
	case apperrors.Is(err, apperrors.ErrConfiguration):
		return http.StatusInternalServerError, ErrorResponse{
			Error:   "configuration_error",
			Message: "The server is not correctly configured",
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		}
	}
}

// HandleErrorGin writes the JSON error reply for a failed operation, mapping
// the domain error class to a status code. A nil error writes nothing.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	status, body := classify(err)

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", status),
			slog.String("error_code", body.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(status, body)
}

// HandleBadRequestGin replies 400 for requests whose body or parameters could
// not be parsed at all.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	})
}

// HandleValidationErrorGin replies 422 for well-formed requests that fail
// field validation.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}
