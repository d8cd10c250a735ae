package service

//go:generate mockgen -source=simulation.go -destination=mocks/mock_simulation.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/airspace_alert_system/internal/config"
	"github.com/shenikar/airspace_alert_system/internal/metrics"
	"github.com/shenikar/airspace_alert_system/internal/models"
	"github.com/shenikar/airspace_alert_system/internal/simulation"
)

// CollisionArchiver определяет контракт для архива столкновений
type CollisionArchiver interface {
	Archive(ctx context.Context, record *models.HistoryRecord) error
}

// SnapshotPublisher определяет контракт для приёмников снимков состояния
type SnapshotPublisher interface {
	Publish(ctx context.Context, snapshot models.Snapshot) error
}

// SimulationService определяет контракт управления симуляцией
type SimulationService interface {
	Reset(ctx context.Context, count int) ([]models.Aircraft, error)
	Step(ctx context.Context) (*models.TickReport, error)
	Run(ctx context.Context) error
	ListAircraft(ctx context.Context) ([]models.Aircraft, error)
	ListHistory(ctx context.Context) ([]models.HistoryRecord, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}

// sinkTimeout ограничивает приёмники тика, запущенного циклом Run
const sinkTimeout = 5 * time.Second

type simulationService struct {
	sim        *simulation.Simulation
	spawner    *simulation.Spawner
	archiver   CollisionArchiver
	publishers []SnapshotPublisher
	metrics    *metrics.Collector
	logger     *logrus.Logger
	interval   time.Duration

	spawnMu sync.Mutex
	// tickMu держит тик и раздачу его снимка вместе: приёмники видят тики по порядку
	tickMu sync.Mutex
}

// NewSimulationService собирает сервис. archiver может быть nil, если архив отключён.
func NewSimulationService(
	sim *simulation.Simulation,
	spawner *simulation.Spawner,
	logger *logrus.Logger,
	cfg *config.Config,
	m *metrics.Collector,
	archiver CollisionArchiver,
	publishers ...SnapshotPublisher,
) SimulationService {
	return &simulationService{
		sim:        sim,
		spawner:    spawner,
		archiver:   archiver,
		publishers: publishers,
		metrics:    m,
		logger:     logger,
		interval:   cfg.TickInterval,
	}
}

// Reset расставляет новый набор судов и начинает новый прогон.
// count <= 0 означает случайное количество.
func (s *simulationService) Reset(ctx context.Context, count int) ([]models.Aircraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: reset cancelled: %w", err)
	}

	s.spawnMu.Lock()
	if count <= 0 {
		count = s.spawner.RandomCount()
	}
	fleet := s.spawner.Spawn(count)
	s.spawnMu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service":   "simulation",
		"method":    "Reset",
		"requested": count,
		"spawned":   len(fleet),
	})
	if len(fleet) < count {
		log.Warn("Could not place all requested aircraft, starting with fewer")
	}

	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	runID := s.sim.Reset(fleet)
	s.metrics.ObserveReset(fleet)
	log.WithField("run_id", runID).Info("Simulation run started")

	if err := s.publish(ctx, s.sim.Snapshot()); err != nil {
		log.WithError(err).Warn("Failed to publish initial snapshot")
	}
	return s.sim.Aircraft(), nil
}

// Step выполняет один тик и раздаёт результат приёмникам.
// Ошибки приёмников не откатывают тик: отчёт возвращается вместе с ошибкой.
func (s *simulationService) Step(ctx context.Context) (*models.TickReport, error) {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	started := time.Now()
	report := s.sim.Tick()

	log := s.logger.WithFields(logrus.Fields{
		"service": "simulation",
		"method":  "Step",
		"run_id":  report.RunID,
		"tick":    report.Tick,
	})

	s.logAlerts(log, report.Alerts)
	for _, record := range report.NewRecords {
		log.WithFields(logrus.Fields{
			"aircraft_id": record.AircraftID,
			"callsign":    record.Callsign,
			"passengers":  record.Passengers,
		}).Warn("Collision recorded")
	}

	var errs []error
	if err := s.archive(ctx, log, report.NewRecords); err != nil {
		errs = append(errs, err)
	}
	if err := s.publish(ctx, s.sim.Snapshot()); err != nil {
		errs = append(errs, err)
	}

	s.metrics.ObserveTick(&report, time.Since(started))
	log.WithFields(logrus.Fields{
		"alerts":     len(report.Alerts),
		"collisions": len(report.NewRecords),
	}).Debug("Tick completed")

	if err := errors.Join(errs...); err != nil {
		log.WithError(err).Error("Tick sinks failed")
		return &report, fmt.Errorf("service: tick %d sinks failed: %w", report.Tick, err)
	}
	return &report, nil
}

// Run тикает с интервалом TICK_INTERVAL до отмены контекста. Начатый тик всегда завершается,
// включая запись в приёмники: они получают контекст, не зависящий от отмены ctx.
func (s *simulationService) Run(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "simulation",
		"method":   "Run",
		"interval": s.interval.String(),
	})
	log.Info("Starting simulation loop...")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping simulation loop.")
			return nil
		case <-ticker.C:
			stepCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sinkTimeout)
			// ошибки приёмников уже залогированы в Step
			_, _ = s.Step(stepCtx)
			cancel()
		}
	}
}

// ListAircraft возвращает текущий набор судов
func (s *simulationService) ListAircraft(ctx context.Context) ([]models.Aircraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: could not list aircraft: %w", err)
	}
	return s.sim.Aircraft(), nil
}

// ListHistory возвращает историю столкновений текущего прогона
func (s *simulationService) ListHistory(ctx context.Context) ([]models.HistoryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: could not list history: %w", err)
	}
	return s.sim.History(), nil
}

func (s *simulationService) GetStats(ctx context.Context) (*models.Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	stats := s.sim.Stats()
	return &stats, nil
}

func (s *simulationService) logAlerts(log *logrus.Entry, alerts []models.Alert) {
	for _, alert := range alerts {
		entry := log.WithFields(logrus.Fields{
			"aircraft_id": alert.Aircraft.ID,
			"callsign":    alert.Aircraft.Callsign,
			"severity":    alert.Aircraft.Severity,
			"priority":    alert.Priority,
			"x":           alert.Aircraft.X,
			"y":           alert.Aircraft.Y,
		})
		if alert.Aircraft.Severity == models.SeverityWarning {
			entry.Info("Proximity alert")
			continue
		}
		entry.Warn("Proximity alert")
	}
}

func (s *simulationService) archive(ctx context.Context, log *logrus.Entry, records []models.HistoryRecord) error {
	if s.archiver == nil {
		return nil
	}

	var errs []error
	for i := range records {
		record := &records[i]
		if err := s.archiver.Archive(ctx, record); err != nil {
			s.metrics.SinkFailed("archive")
			log.WithError(err).WithField("aircraft_id", record.AircraftID).Error("Failed to archive collision")
			errs = append(errs, fmt.Errorf("archive %s: %w", record.AircraftID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *simulationService) publish(ctx context.Context, snapshot models.Snapshot) error {
	var errs []error
	for _, p := range s.publishers {
		if err := p.Publish(ctx, snapshot); err != nil {
			s.metrics.SinkFailed("snapshot")
			errs = append(errs, fmt.Errorf("publish snapshot: %w", err))
		}
	}
	return errors.Join(errs...)
}
