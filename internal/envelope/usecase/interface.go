// Package usecase orchestrates envelope encryption operations, combining the
// cryptographic core with record persistence. Use cases depend on interfaces
// so storage backends and instrumentation can be swapped without touching
// the encryption flow.
package usecase

import (
	"context"

	"github.com/google/uuid"

	envelopeDomain "github.com/Arpan-gl/mirfa-test-app/internal/envelope/domain"
)

// RecordRepository defines persistence operations for encrypted records.
// Records are immutable once stored, so there is no update operation.
type RecordRepository interface {
	// Create persists a new encrypted record. Returns ErrRecordAlreadyExists
	// if a record with the same ID is already stored.
	Create(ctx context.Context, record *envelopeDomain.EncryptedRecord) error

	// GetByID retrieves a record by its unique identifier. Returns
	// ErrRecordNotFound if no record exists with the given ID.
	GetByID(ctx context.Context, id uuid.UUID) (*envelopeDomain.EncryptedRecord, error)

	// List returns records ordered from newest to oldest with pagination.
	List(ctx context.Context, offset, limit int) ([]*envelopeDomain.EncryptedRecord, error)

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int64, error)

	// Ping verifies the storage backend is reachable.
	Ping(ctx context.Context) error
}

// RecordUseCase defines the application operations over encrypted records.
type RecordUseCase interface {
	// Encrypt seals payload into a new record owned by partyID and persists it.
	Encrypt(ctx context.Context, partyID string, payload any) (*envelopeDomain.EncryptedRecord, error)

	// Get retrieves a stored record by ID without decrypting it.
	Get(ctx context.Context, id uuid.UUID) (*envelopeDomain.EncryptedRecord, error)

	// List returns stored records newest first, along with the total count.
	List(ctx context.Context, offset, limit int) ([]*envelopeDomain.EncryptedRecord, int64, error)

	// Decrypt loads the record with the given ID and recovers its payload.
	Decrypt(ctx context.Context, id uuid.UUID) (*envelopeDomain.DecryptedPayload, error)

	// DecryptRecord recovers the payload of a caller-supplied record without
	// touching storage. The record is validated before any cryptographic work.
	DecryptRecord(ctx context.Context, record *envelopeDomain.EncryptedRecord) (*envelopeDomain.DecryptedPayload, error)
}
