// Package simulation - ядро симуляции: один тик = движение, поиск сближений,
// классификация, обновление состояний, очередь алертов и архив столкновений.
// Ядро не обращается к внешним ресурсам; всё состояние в памяти.
package simulation

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/airspace_alert_system/internal/alertqueue"
	"github.com/shenikar/airspace_alert_system/internal/detector"
	"github.com/shenikar/airspace_alert_system/internal/models"
	"github.com/shenikar/airspace_alert_system/internal/motion"
)

// Simulation хранит авторитетное состояние прогона.
// Тики выполняются строго последовательно под блокировкой на запись.
type Simulation struct {
	mu       sync.RWMutex
	detector *detector.Detector
	now      func() time.Time

	runID    uuid.UUID
	tick     uint64
	aircraft []models.Aircraft
	history  []models.HistoryRecord
	recorded map[string]struct{}
	alerts   *alertqueue.Queue
}

// Option настраивает Simulation
type Option func(*Simulation)

// WithClock подменяет источник времени для записей истории
func WithClock(now func() time.Time) Option {
	return func(s *Simulation) {
		s.now = now
	}
}

func New(d *detector.Detector, opts ...Option) *Simulation {
	s := &Simulation{
		detector: d,
		now:      time.Now,
		runID:    uuid.New(),
		recorded: make(map[string]struct{}),
		alerts:   alertqueue.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset начинает новый прогон с данным набором судов: история и очередь очищаются
func (s *Simulation) Reset(aircraft []models.Aircraft) uuid.UUID {
	fleet := make([]models.Aircraft, len(aircraft))
	for i, ac := range aircraft {
		if ac.Severity == "" {
			ac.Severity = models.SeveritySafe
		}
		fleet[i] = ac
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.runID = uuid.New()
	s.tick = 0
	s.aircraft = fleet
	s.history = nil
	s.recorded = make(map[string]struct{})
	s.alerts = alertqueue.New()
	return s.runID
}

// Tick выполняет один шаг симуляции целиком
func (s *Simulation) Tick() models.TickReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tick++

	moved := motion.AdvanceAll(s.aircraft)

	// Очередь и карта уровней живут только в пределах тика
	queue := alertqueue.New()
	states := s.detector.Detect(moved, queue)

	report := models.TickReport{
		RunID:  s.runID,
		Tick:   s.tick,
		Counts: make(map[models.Severity]int, 4),
	}

	now := s.now()
	next := make([]models.Aircraft, len(moved))
	for i, ac := range moved {
		severity, ok := states[ac.ID]
		if !ok {
			severity = models.SeveritySafe
		}
		if ac.IsFrozen() {
			severity = models.SeverityCollision
		}

		if severity.IsTerminal() {
			if _, done := s.recorded[ac.ID]; !done {
				record := models.NewHistoryRecord(s.runID, ac, models.SeverityCollision, s.tick, now)
				s.history = append(s.history, record)
				s.recorded[ac.ID] = struct{}{}
				report.NewRecords = append(report.NewRecords, record)
			}
		}

		next[i] = ac.WithSeverity(severity)
		report.Counts[severity]++
	}

	s.aircraft = next
	s.alerts = queue
	report.Alerts = queue.Items()
	return report
}

func (s *Simulation) RunID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runID
}

func (s *Simulation) CurrentTick() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tick
}

// Aircraft возвращает копию текущего набора судов
func (s *Simulation) Aircraft() []models.Aircraft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Aircraft, len(s.aircraft))
	copy(out, s.aircraft)
	return out
}

// History возвращает копию истории столкновений (только дополняется)
func (s *Simulation) History() []models.HistoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.HistoryRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Alerts возвращает алерты последнего тика в порядке извлечения
func (s *Simulation) Alerts() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alerts.Items()
}

// Snapshot собирает read-only снимок для внешних потребителей
func (s *Simulation) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	aircraft := make([]models.Aircraft, len(s.aircraft))
	copy(aircraft, s.aircraft)
	history := make([]models.HistoryRecord, len(s.history))
	copy(history, s.history)

	return models.Snapshot{
		RunID:    s.runID,
		Tick:     s.tick,
		Aircraft: aircraft,
		History:  history,
		TakenAt:  s.now(),
	}
}

// Stats возвращает сводку по прогону
func (s *Simulation) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[models.Severity]int{
		models.SeveritySafe:      0,
		models.SeverityWarning:   0,
		models.SeverityDanger:    0,
		models.SeverityCollision: 0,
	}
	for _, ac := range s.aircraft {
		counts[ac.Severity]++
	}

	return models.Stats{
		RunID:        s.runID,
		Tick:         s.tick,
		Aircraft:     len(s.aircraft),
		Counts:       counts,
		Collisions:   len(s.history),
		QueuedAlerts: s.alerts.Len(),
	}
}
