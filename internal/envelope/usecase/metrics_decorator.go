package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	envelopeDomain "github.com/Arpan-gl/mirfa-test-app/internal/envelope/domain"
	"github.com/Arpan-gl/mirfa-test-app/internal/metrics"
)

// recordUseCaseWithMetrics decorates RecordUseCase with metrics instrumentation.
type recordUseCaseWithMetrics struct {
	next    RecordUseCase
	metrics metrics.BusinessMetrics
}

// NewRecordUseCaseWithMetrics wraps a RecordUseCase with metrics recording.
func NewRecordUseCaseWithMetrics(useCase RecordUseCase, m metrics.BusinessMetrics) RecordUseCase {
	return &recordUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encrypt records metrics for encryption operations.
func (r *recordUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	partyID string,
	payload any,
) (*envelopeDomain.EncryptedRecord, error) {
	start := time.Now()
	record, err := r.next.Encrypt(ctx, partyID, payload)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "envelope", "record_encrypt", status)
	r.metrics.RecordDuration(ctx, "envelope", "record_encrypt", time.Since(start), status)

	return record, err
}

// Get records metrics for record retrieval operations.
func (r *recordUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*envelopeDomain.EncryptedRecord, error) {
	start := time.Now()
	record, err := r.next.Get(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "envelope", "record_get", status)
	r.metrics.RecordDuration(ctx, "envelope", "record_get", time.Since(start), status)

	return record, err
}

// List records metrics for record listing operations.
func (r *recordUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*envelopeDomain.EncryptedRecord, int64, error) {
	start := time.Now()
	records, total, err := r.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "envelope", "record_list", status)
	r.metrics.RecordDuration(ctx, "envelope", "record_list", time.Since(start), status)

	return records, total, err
}

// Decrypt records metrics for stored-record decryption operations.
func (r *recordUseCaseWithMetrics) Decrypt(
	ctx context.Context,
	id uuid.UUID,
) (*envelopeDomain.DecryptedPayload, error) {
	start := time.Now()
	payload, err := r.next.Decrypt(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "envelope", "record_decrypt", status)
	r.metrics.RecordDuration(ctx, "envelope", "record_decrypt", time.Since(start), status)

	return payload, err
}

// DecryptRecord records metrics for direct record decryption operations.
func (r *recordUseCaseWithMetrics) DecryptRecord(
	ctx context.Context,
	record *envelopeDomain.EncryptedRecord,
) (*envelopeDomain.DecryptedPayload, error) {
	start := time.Now()
	payload, err := r.next.DecryptRecord(ctx, record)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "envelope", "record_decrypt_direct", status)
	r.metrics.RecordDuration(ctx, "envelope", "record_decrypt_direct", time.Since(start), status)

	return payload, err
}
