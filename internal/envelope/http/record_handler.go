// Package http provides HTTP handlers for envelope encryption operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Arpan-gl/mirfa-test-app/internal/envelope/http/dto"
	envelopeUseCase "github.com/Arpan-gl/mirfa-test-app/internal/envelope/usecase"
	"github.com/Arpan-gl/mirfa-test-app/internal/httputil"
	customValidation "github.com/Arpan-gl/mirfa-test-app/internal/validation"
)

// RecordHandler handles HTTP requests for encrypted record operations.
type RecordHandler struct {
	recordUseCase envelopeUseCase.RecordUseCase // Business logic for encryption and decryption operations
	logger        *slog.Logger                  // Structured logger for request handling and error reporting
}

// NewRecordHandler creates a new record handler with required dependencies.
func NewRecordHandler(
	recordUseCase envelopeUseCase.RecordUseCase,
	logger *slog.Logger,
) *RecordHandler {
	return &RecordHandler{
		recordUseCase: recordUseCase,
		logger:        logger,
	}
}

// EncryptHandler encrypts a payload into a new record owned by the given party.
// POST /v1/records
// Returns 201 Created with the full encrypted record.
func (h *RecordHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	record, err := h.recordUseCase.Encrypt(c.Request.Context(), req.PartyID, req.Payload)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapRecordToResponse(record)
	c.JSON(http.StatusCreated, response)
}

// GetHandler retrieves a stored record by ID without decrypting it.
// GET /v1/records/:id
// Returns 200 OK with the encrypted record.
func (h *RecordHandler) GetHandler(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	record, err := h.recordUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapRecordToResponse(record)
	c.JSON(http.StatusOK, response)
}

// ListHandler retrieves stored records with pagination support, newest first.
// GET /v1/records?offset=0&limit=50
// Returns 200 OK with the record page and the total count.
func (h *RecordHandler) ListHandler(c *gin.Context) {
	// Parse offset and limit query parameters
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	records, total, err := h.recordUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapRecordsToListResponse(records, total)
	c.JSON(http.StatusOK, response)
}

// DecryptHandler loads a stored record by ID and recovers its payload.
// POST /v1/records/:id/decrypt
// Returns 200 OK with the decrypted payload.
func (h *RecordHandler) DecryptHandler(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	payload, err := h.recordUseCase.Decrypt(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapDecryptedPayloadToResponse(payload)
	c.JSON(http.StatusOK, response)
}

// DecryptRecordHandler recovers the payload of a record supplied in the
// request body. Nothing is read from or written to storage.
// POST /v1/records/decrypt
// Returns 200 OK with the decrypted payload.
func (h *RecordHandler) DecryptRecordHandler(c *gin.Context) {
	var req dto.DecryptRecordRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// The use case validates the record before any cryptographic work
	payload, err := h.recordUseCase.DecryptRecord(c.Request.Context(), req.ToRecord())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapDecryptedPayloadToResponse(payload)
	c.JSON(http.StatusOK, response)
}

// parseRecordID extracts and parses the record ID from the URL parameter.
func parseRecordID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid record id: %w", err)
	}
	return id, nil
}
