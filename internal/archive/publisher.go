package archive

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/airspace_alert_system/internal/models"
)

const (
	archiveQueueKey = "collision_archive"
)

// RedisArchiveQueue - очередь записей архива в Redis; сохраняет записи в БД воркер.
// Тик не ждёт записи в Postgres.
type RedisArchiveQueue struct {
	redisClient *redis.Client
}

// NewRedisArchiveQueue создает новую очередь архива
func NewRedisArchiveQueue(client *redis.Client) *RedisArchiveQueue {
	return &RedisArchiveQueue{
		redisClient: client,
	}
}

// Archive ставит запись о столкновении в очередь Redis
func (q *RedisArchiveQueue) Archive(ctx context.Context, record *models.HistoryRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal history record: %w", err)
	}

	// LPUSH кладёт в голову списка, воркер забирает с хвоста через BRPOP
	if err := q.redisClient.LPush(ctx, archiveQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue history record: %w", err)
	}
	return nil
}
