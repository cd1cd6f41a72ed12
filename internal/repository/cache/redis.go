package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Pesokrava/tournament_registry/internal/domain"
)

// ErrMiss is returned when an entity is not cached
var ErrMiss = errors.New("cache miss")

// tombstone marks an invalidated key. It is not valid JSON, so it can never
// collide with an encoded entity.
const tombstone = "~"

// DefaultTombstoneTTL outlasts a read-through load started before the write
const DefaultTombstoneTTL = 30 * time.Second

// RedisCache stores entities as JSON keyed by concept and ID.
//
// Invalidate leaves a short-lived tombstone instead of deleting the key. Add
// only fills absent keys, so a reader that loaded the entity before a write
// cannot put its copy back over the tombstone. Set always overwrites and is
// reserved for writers that read after the change.
type RedisCache struct {
	client       redis.Cmdable
	ttl          time.Duration
	tombstoneTTL time.Duration
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client:       client,
		ttl:          ttl,
		tombstoneTTL: DefaultTombstoneTTL,
	}
}

// Key returns the cache key of an entity
func Key(concept domain.Concept, id int64) string {
	return fmt.Sprintf("%s:%d", concept.Key(), id)
}

// Get decodes the cached entity into dst
func (c *RedisCache) Get(ctx context.Context, concept domain.Concept, id int64, dst any) error {
	val, err := c.client.Get(ctx, Key(concept, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	if string(val) == tombstone {
		return ErrMiss
	}

	if err := json.Unmarshal(val, dst); err != nil {
		return fmt.Errorf("failed to decode cached %s %d: %w", concept, id, err)
	}
	return nil
}

// Set stores an entity with the configured TTL
func (c *RedisCache) Set(ctx context.Context, concept domain.Concept, id int64, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, Key(concept, id), data, c.ttl).Err()
}

// Add stores an entity unless the key holds a value or a tombstone.
// It reports whether the entity was stored.
func (c *RedisCache) Add(ctx context.Context, concept domain.Concept, id int64, v any) (bool, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return false, err
	}
	return c.client.SetNX(ctx, Key(concept, id), data, c.ttl).Result()
}

// Invalidate replaces the cached entity with a tombstone
func (c *RedisCache) Invalidate(ctx context.Context, concept domain.Concept, id int64) error {
	return c.client.Set(ctx, Key(concept, id), tombstone, c.tombstoneTTL).Err()
}
