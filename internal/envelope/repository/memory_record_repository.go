// Package repository implements data persistence for encrypted records.
// A Redis-backed repository serves production deployments; an in-memory
// repository serves development and tests. Both keep records immutable:
// create and read only, no update.
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	envelopeDomain "github.com/Arpan-gl/mirfa-test-app/internal/envelope/domain"
)

// MemoryRecordRepository implements record persistence in process memory.
// Records are stored by value so callers cannot mutate stored state through
// retained pointers.
type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]envelopeDomain.EncryptedRecord
}

// Create stores a new record.
func (m *MemoryRecordRepository) Create(ctx context.Context, record *envelopeDomain.EncryptedRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; ok {
		return envelopeDomain.ErrRecordAlreadyExists
	}

	m.records[record.ID] = *record
	return nil
}

// GetByID retrieves a record by its unique identifier.
func (m *MemoryRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*envelopeDomain.EncryptedRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, envelopeDomain.ErrRecordNotFound
	}

	return &record, nil
}

// List returns records ordered from newest to oldest with pagination.
func (m *MemoryRecordRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*envelopeDomain.EncryptedRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]envelopeDomain.EncryptedRecord, 0, len(m.records))
	for _, record := range m.records {
		all = append(all, record)
	}

	// Newest first; IDs are time-ordered, so they break creation time ties.
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.String() > all[j].ID.String()
	})

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	page := make([]*envelopeDomain.EncryptedRecord, 0, end-offset)
	for i := offset; i < end; i++ {
		record := all[i]
		page = append(page, &record)
	}

	return page, nil
}

// Count returns the total number of stored records.
func (m *MemoryRecordRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.records)), nil
}

// Ping always succeeds; process memory has no backend to reach.
func (m *MemoryRecordRepository) Ping(ctx context.Context) error {
	return nil
}

// NewMemoryRecordRepository creates an empty in-memory record repository.
func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{
		records: make(map[uuid.UUID]envelopeDomain.EncryptedRecord),
	}
}
