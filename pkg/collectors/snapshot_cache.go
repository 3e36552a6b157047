package collectors

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/planz/planz/pkg/domain"
	"github.com/planz/planz/pkg/logger"
	"github.com/planz/planz/pkg/metrics"
)

const snapshotKeyPrefix = "planz:catalog:"

// CachedSource serves catalog queries from Redis and falls back to the
// wrapped source on a miss. Redis failures are logged and never returned.
type CachedSource struct {
	source domain.CatalogSource
	redis  *RedisClient
	ttl    time.Duration
	log    logger.Logger
}

func NewCachedSource(source domain.CatalogSource, redis *RedisClient, ttl time.Duration, log logger.Logger) *CachedSource {
	return &CachedSource{
		source: source,
		redis:  redis,
		ttl:    ttl,
		log:    log.WithFields(map[string]interface{}{"component": "snapshot-cache"}),
	}
}

func (c *CachedSource) Query(ctx context.Context, conditions ...domain.Condition) ([]domain.Event, error) {
	key, err := snapshotKey(conditions)
	if err != nil {
		return nil, err
	}

	if events, ok := c.lookup(ctx, key); ok {
		return events, nil
	}

	events, err := c.source.Query(ctx, conditions...)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, events)
	return events, nil
}

// Invalidate drops every cached snapshot so the next Query reads through.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	iter := c.redis.Client.Scan(ctx, 0, snapshotKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan snapshot keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.redis.Client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot keys: %w", err)
	}
	return nil
}

func (c *CachedSource) lookup(ctx context.Context, key string) ([]domain.Event, bool) {
	data, err := c.redis.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CatalogCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		metrics.CatalogCacheLookups.WithLabelValues("error").Inc()
		c.log.WithError(err).Warn("snapshot cache read failed", map[string]interface{}{"key": key})
		return nil, false
	}

	var events []domain.Event
	if err := json.Unmarshal(data, &events); err != nil {
		metrics.CatalogCacheLookups.WithLabelValues("error").Inc()
		c.log.WithError(err).Warn("discarding corrupt snapshot", map[string]interface{}{"key": key})
		return nil, false
	}

	metrics.CatalogCacheLookups.WithLabelValues("hit").Inc()
	return events, true
}

func (c *CachedSource) store(ctx context.Context, key string, events []domain.Event) {
	data, err := json.Marshal(events)
	if err != nil {
		c.log.WithError(err).Warn("failed to encode snapshot", nil)
		return
	}
	if err := c.redis.Client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.WithError(err).Warn("snapshot cache write failed", map[string]interface{}{"key": key})
	}
}

func snapshotKey(conditions []domain.Condition) (string, error) {
	if len(conditions) == 0 {
		return snapshotKeyPrefix + domain.EventsCollection, nil
	}
	data, err := json.Marshal(conditions)
	if err != nil {
		return "", fmt.Errorf("failed to encode conditions: %w", err)
	}
	sum := sha256.Sum256(data)
	return snapshotKeyPrefix + domain.EventsCollection + ":" + hex.EncodeToString(sum[:8]), nil
}
