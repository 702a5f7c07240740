package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	envelopeDomain "github.com/Arpan-gl/mirfa-test-app/internal/envelope/domain"
	apperrors "github.com/Arpan-gl/mirfa-test-app/internal/errors"
)

// Redis key layout: each record is a JSON string under its own key, and a
// sorted set indexes record IDs by creation time for newest-first listing.
const (
	recordKeyPrefix = "envelope:record:"
	recordIndexKey  = "envelope:records"
)

// RedisRecordRepository implements record persistence on Redis.
type RedisRecordRepository struct {
	client *redis.Client
}

// recordKey builds the storage key for a record ID.
func recordKey(id uuid.UUID) string {
	return recordKeyPrefix + id.String()
}

// Create stores a new record and indexes it for listing.
func (r *RedisRecordRepository) Create(ctx context.Context, record *envelopeDomain.EncryptedRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize record")
	}

	created, err := r.client.SetNX(ctx, recordKey(record.ID), data, 0).Result()
	if err != nil {
		return apperrors.Wrap(err, "failed to store record")
	}
	if !created {
		return envelopeDomain.ErrRecordAlreadyExists
	}

	score := float64(record.CreatedAt.UnixMicro())
	err = r.client.ZAdd(ctx, recordIndexKey, redis.Z{Score: score, Member: record.ID.String()}).Err()
	if err != nil {
		// Remove the orphaned record key so a retry can succeed.
		r.client.Del(ctx, recordKey(record.ID))
		return apperrors.Wrap(err, "failed to index record")
	}

	return nil
}

// GetByID retrieves a record by its unique identifier.
func (r *RedisRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*envelopeDomain.EncryptedRecord, error) {
	data, err := r.client.Get(ctx, recordKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, envelopeDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record")
	}

	var record envelopeDomain.EncryptedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to deserialize record")
	}

	return &record, nil
}

// List returns records ordered from newest to oldest with pagination.
func (r *RedisRecordRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*envelopeDomain.EncryptedRecord, error) {
	if limit <= 0 {
		return []*envelopeDomain.EncryptedRecord{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	ids, err := r.client.ZRevRange(ctx, recordIndexKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records")
	}
	if len(ids) == 0 {
		return []*envelopeDomain.EncryptedRecord{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = recordKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to fetch records")
	}

	records := make([]*envelopeDomain.EncryptedRecord, 0, len(values))
	for _, value := range values {
		data, ok := value.(string)
		if !ok {
			continue
		}
		var record envelopeDomain.EncryptedRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return nil, apperrors.Wrap(err, "failed to deserialize record")
		}
		records = append(records, &record)
	}

	return records, nil
}

// Count returns the total number of stored records.
func (r *RedisRecordRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.client.ZCard(ctx, recordIndexKey).Result()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count records")
	}

	return count, nil
}

// Ping verifies the Redis backend is reachable.
func (r *RedisRecordRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return apperrors.Wrap(err, "redis ping failed")
	}

	return nil
}

// NewRedisRecordRepository creates a record repository backed by the given
// Redis client.
func NewRedisRecordRepository(client *redis.Client) *RedisRecordRepository {
	return &RedisRecordRepository{client: client}
}
