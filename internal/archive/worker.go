package archive

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/airspace_alert_system/internal/config"
	"github.com/shenikar/airspace_alert_system/internal/models"
	"github.com/shenikar/airspace_alert_system/internal/service"
)

const popTimeout = time.Second

// Worker - переносит записи из очереди Redis в постоянное хранилище
type Worker struct {
	redisClient *redis.Client
	store       service.CollisionArchiver
	logger      *logrus.Logger
	retryDelay  time.Duration
	maxRetries  int
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, store service.CollisionArchiver, logger *logrus.Logger, cfg *config.Config) *Worker {
	maxRetries := cfg.ArchiveMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Worker{
		redisClient: redisClient,
		store:       store,
		logger:      logger,
		retryDelay:  cfg.ArchiveRetryDelay,
		maxRetries:  maxRetries,
	}
}

// Start запускает горутину обработки очереди архива
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting archive worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping archive worker.")
				return
			default:
				// BRPOP с таймаутом, чтобы регулярно проверять отмену контекста
				result, err := w.redisClient.BRPop(ctx, popTimeout, archiveQueueKey).Result()
				if err != nil {
					if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop history record from Redis")
					w.sleep(ctx, w.retryDelay)
					continue
				}

				// result[0] - ключ, result[1] - значение
				w.handlePayload(ctx, result[1])
			}
		}
	}()
}

func (w *Worker) handlePayload(ctx context.Context, payload string) bool {
	var record models.HistoryRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal history record from Redis")
		return false
	}
	return w.persist(ctx, &record)
}

// persist сохраняет запись с экспоненциальной задержкой между попытками
func (w *Worker) persist(ctx context.Context, record *models.HistoryRecord) bool {
	log := w.logger.WithFields(logrus.Fields{
		"run_id":      record.RunID,
		"aircraft_id": record.AircraftID,
	})
	log.Debug("Archiving history record...")

	delay := w.retryDelay
	for i := 0; i < w.maxRetries; i++ {
		err := w.store.Archive(ctx, record)
		if err == nil {
			log.Info("History record archived.")
			return true
		}

		left := w.maxRetries - 1 - i
		if left == 0 {
			log.WithError(err).Errorf("Dropping history record after %d attempts.", w.maxRetries)
			break
		}
		log.WithError(err).Warnf("Failed to archive history record. Retrying in %v. Retries left: %d", delay, left)
		if !w.sleep(ctx, delay) {
			return false
		}
		delay *= 2 // Экспоненциальная задержка
	}
	return false
}

func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
