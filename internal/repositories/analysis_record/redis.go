package analysisrecord

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/errors"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/pkg/clock"
	redisclient "github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/redis"
)

const (
	// Key patterns: analysis:{id} for records,
	// analysis_history:{entity_id} for the per-entity index
	recordKeyPrefix = "analysis:"
	indexKeyPrefix  = "analysis_history:"

	defaultTTL       = 24 * time.Hour
	defaultListLimit = 20

	errRecordNil  = "record cannot be nil"
	errIDEmpty    = "analysis ID cannot be empty"
	errEntityMiss = "entity ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for analysis records
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a new analysis record with the specified TTL. Records
// with an entity ID are also added to that entity's history index.
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	record := *input.Record
	record.CreatedAt = now
	record.ExpiresAt = now.Add(ttl)

	recordJSON, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal record")
	}

	key := r.recordKey(record.ID)
	if err := r.client.Set(ctx, key, recordJSON, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store record in Redis")
	}

	if record.EntityID != "" {
		indexKey := r.indexKey(record.EntityID)
		if err := r.client.ZAdd(ctx, indexKey, redis.Z{
			Score:  float64(now.UnixNano()),
			Member: record.ID,
		}).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to index record in Redis")
		}
		// Keep the index alive as long as its newest record
		if err := r.client.Expire(ctx, indexKey, ttl).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to set index TTL")
		}
	}

	return &CreateOutput{Record: &record}, nil
}

// Get retrieves a record by analysis ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := r.recordKey(input.ID)
	recordJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("analysis record not found")
		}
		return nil, errors.Wrapf(err, "failed to get record from Redis")
	}

	var record Record
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal record")
	}

	// Redis TTL should have evicted it already, but the clock is the
	// source of truth
	if r.clock.Now().After(record.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("analysis record has expired")
	}

	return &GetOutput{Record: &record}, nil
}

// List returns an entity's records, newest first. Expired entries still
// present in the index are pruned and skipped.
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityMiss)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	indexKey := r.indexKey(input.EntityID)
	ids, err := r.client.ZRevRange(ctx, indexKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read history index from Redis")
	}

	records := make([]*Record, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				_ = r.client.ZRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		records = append(records, out.Record)
	}

	return &ListOutput{Records: records}, nil
}

// Delete removes a record and its index entry
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	// Fetch first so the index entry can be cleaned up too
	getOutput, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &DeleteOutput{Deleted: false}, nil
		}
		return nil, err
	}

	if getOutput.Record.EntityID != "" {
		_ = r.client.ZRem(ctx, r.indexKey(getOutput.Record.EntityID), input.ID)
	}

	deleted, err := r.client.Del(ctx, r.recordKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete record from Redis")
	}

	return &DeleteOutput{Deleted: deleted > 0}, nil
}

func (r *redisRepository) recordKey(id string) string {
	return fmt.Sprintf("%s%s", recordKeyPrefix, id)
}

func (r *redisRepository) indexKey(entityID string) string {
	return fmt.Sprintf("%s%s", indexKeyPrefix, entityID)
}
