package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/airspace_alert_system/internal/models"
)

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSnapshotCache_PublishError(t *testing.T) {
	cache := NewSnapshotCache(unreachableRedis(t), time.Second)

	err := cache.Publish(context.Background(), models.Snapshot{Tick: 1})

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to set snapshot in cache")
}

func TestSnapshotCache_LatestError(t *testing.T) {
	cache := NewSnapshotCache(unreachableRedis(t), time.Second)

	snapshot, err := cache.Latest(context.Background())

	require.Error(t, err)
	assert.Nil(t, snapshot)
	assert.ErrorContains(t, err, "failed to get snapshot from cache")
}
