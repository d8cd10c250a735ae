package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/airspace_alert_system/internal/models"
)

const snapshotKey = "simulation:snapshot"

// SnapshotCache хранит последний снимок симуляции в Redis с TTL
type SnapshotCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSnapshotCache(redisClient *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Publish сохраняет снимок в Redis
func (c *SnapshotCache) Publish(ctx context.Context, snapshot models.Snapshot) error {
	val, err := models.EncodeSnapshot(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, snapshotKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot in cache: %w", err)
	}
	return nil
}

// Latest возвращает последний снимок из кеша; nil, если снимка нет или он истёк
func (c *SnapshotCache) Latest(ctx context.Context) (*models.Snapshot, error) {
	val, err := c.redisClient.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	snapshot, err := models.DecodeSnapshot(val)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot from cache: %w", err)
	}
	return &snapshot, nil
}
