package usecase

import (
	"context"

	"github.com/google/uuid"

	envelopeDomain "github.com/Arpan-gl/mirfa-test-app/internal/envelope/domain"
	envelopeService "github.com/Arpan-gl/mirfa-test-app/internal/envelope/service"
)

// recordUseCase implements RecordUseCase. Encryption and decryption are
// delegated to the envelope service; this layer adds persistence and lookup.
type recordUseCase struct {
	envelopeService envelopeService.EnvelopeService
	recordRepo      RecordRepository
}

// Encrypt seals payload into a new record and persists it.
func (u *recordUseCase) Encrypt(
	ctx context.Context,
	partyID string,
	payload any,
) (*envelopeDomain.EncryptedRecord, error) {
	record, err := u.envelopeService.Encrypt(partyID, payload)
	if err != nil {
		return nil, err
	}

	if err := u.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Get retrieves a stored record by ID.
func (u *recordUseCase) Get(ctx context.Context, id uuid.UUID) (*envelopeDomain.EncryptedRecord, error) {
	return u.recordRepo.GetByID(ctx, id)
}

// List returns stored records newest first, along with the total count.
func (u *recordUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*envelopeDomain.EncryptedRecord, int64, error) {
	records, err := u.recordRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := u.recordRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Decrypt loads the record with the given ID and recovers its payload.
func (u *recordUseCase) Decrypt(ctx context.Context, id uuid.UUID) (*envelopeDomain.DecryptedPayload, error) {
	record, err := u.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u.envelopeService.Decrypt(record)
}

// DecryptRecord recovers the payload of a caller-supplied record without
// touching storage.
func (u *recordUseCase) DecryptRecord(
	ctx context.Context,
	record *envelopeDomain.EncryptedRecord,
) (*envelopeDomain.DecryptedPayload, error) {
	return u.envelopeService.Decrypt(record)
}

// NewRecordUseCase creates a RecordUseCase backed by the given envelope
// service and record repository.
func NewRecordUseCase(
	envelopeService envelopeService.EnvelopeService,
	recordRepo RecordRepository,
) RecordUseCase {
	return &recordUseCase{
		envelopeService: envelopeService,
		recordRepo:      recordRepo,
	}
}
