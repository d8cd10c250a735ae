package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/airspace_alert_system/internal/archive"
	"github.com/shenikar/airspace_alert_system/internal/config"
	"github.com/shenikar/airspace_alert_system/internal/detector"
	v1 "github.com/shenikar/airspace_alert_system/internal/handler/http/v1"
	"github.com/shenikar/airspace_alert_system/internal/metrics"
	"github.com/shenikar/airspace_alert_system/internal/repository"
	"github.com/shenikar/airspace_alert_system/internal/service"
	"github.com/shenikar/airspace_alert_system/internal/simulation"
	"github.com/shenikar/airspace_alert_system/internal/stream"
	"github.com/shenikar/airspace_alert_system/pkg/logger"
	"github.com/shenikar/airspace_alert_system/pkg/postgres"
	redisclient "github.com/shenikar/airspace_alert_system/pkg/redis"

	_ "github.com/shenikar/airspace_alert_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Airspace Alert System API
// @version 1.0
// @description Aircraft proximity and collision alert simulation.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newRand - RANDOM_SEED = 0 означает сид от текущего времени
func newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1)), seed
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	collector := metrics.New()

	// Ядро симуляции
	det := detector.New(detector.Config{ParallelCutoff: cfg.ParallelCutoff})
	sim := simulation.New(det)
	rng, seed := newRand(cfg.RandomSeed)
	spawner := simulation.NewSpawner(simulation.SpawnConfig{
		MinCount:    cfg.AircraftMin,
		MaxCount:    cfg.AircraftMax,
		MaxAttempts: cfg.SpawnMaxAttempts,
	}, rng)
	log.WithField("seed", seed).Info("Simulation core initialized")

	// WebSocket-рассылка снимков
	hub := stream.NewHub(log)
	go hub.Run(ctx)
	publishers := []service.SnapshotPublisher{hub}

	var archiver service.CollisionArchiver
	var snapshotReader v1.SnapshotReader

	// Архив столкновений в PostgreSQL (опционально)
	if cfg.ArchiveEnabled() {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		archiver = repository.NewHistoryRepository(dbpool)
	} else {
		log.Warn("DATABASE_URL is not set, collision archive disabled")
	}

	// Кеш снимков и очередь архива в Redis (опционально)
	if cfg.RedisEnabled() {
		redisClient, err := redisclient.NewClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		cache := repository.NewSnapshotCache(redisClient, cfg.SnapshotTTL)
		publishers = append(publishers, cache)
		snapshotReader = cache

		// Тик ставит записи в очередь, в БД их переносит воркер
		if archiver != nil {
			worker := archive.NewWorker(redisClient, archiver, log, cfg)
			worker.Start(ctx)
			archiver = archive.NewRedisArchiveQueue(redisClient)
		}
	}

	// Инициализация сервисов
	simulationService := service.NewSimulationService(sim, spawner, log, cfg, collector, archiver, publishers...)
	if _, err := simulationService.Reset(ctx, 0); err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}

	simDone := make(chan struct{})
	go func() {
		defer close(simDone)
		if err := simulationService.Run(ctx); err != nil {
			log.WithError(err).Error("Simulation loop stopped with error")
		}
	}()

	// Инициализация хэндлеров
	handler := v1.NewHandler(simulationService, log, cfg, hub, snapshotReader)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(collector.Gatherer(), promhttp.HandlerOpts{})))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем цикл симуляции: начатый тик завершается вместе с записью в архив и кеш
	cancel()
	<-simDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
