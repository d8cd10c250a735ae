package models

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot - read-only состояние симуляции после тика для внешних потребителей.
// Алерты намеренно не входят в снимок: они остаются внутри процесса.
type Snapshot struct {
	RunID    uuid.UUID       `json:"run_id"`
	Tick     uint64          `json:"tick"`
	Aircraft []Aircraft      `json:"aircraft"`
	History  []HistoryRecord `json:"history"`
	TakenAt  time.Time       `json:"taken_at"`
}

// TickReport - результат одного тика
type TickReport struct {
	RunID      uuid.UUID
	Tick       uint64
	Alerts     []Alert
	NewRecords []HistoryRecord
	Counts     map[Severity]int
}

// Stats - сводка по текущему прогону
type Stats struct {
	RunID        uuid.UUID        `json:"run_id"`
	Tick         uint64           `json:"tick"`
	Aircraft     int              `json:"aircraft"`
	Counts       map[Severity]int `json:"counts"`
	Collisions   int              `json:"collisions"`
	QueuedAlerts int              `json:"queued_alerts"`
}
