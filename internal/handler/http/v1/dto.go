package v1

import (
	"time"

	"github.com/google/uuid"
)

// AircraftResponse DTO с состоянием воздушного судна
// @Description DTO с состоянием воздушного судна
type AircraftResponse struct {
	ID             string  `json:"id"`
	Callsign       string  `json:"callsign"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	DX             float64 `json:"dx"`
	DY             float64 `json:"dy"`
	Passengers     int     `json:"passengers"`
	PilotName      string  `json:"pilot_name"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	CollisionState string  `json:"collision_state" example:"warning"`
}

// HistoryRecordResponse DTO записи истории столкновений
// @Description DTO записи истории столкновений
type HistoryRecordResponse struct {
	ID                  uuid.UUID `json:"id"`
	RunID               uuid.UUID `json:"run_id"`
	AircraftID          string    `json:"aircraft_id"`
	Callsign            string    `json:"callsign"`
	X                   float64   `json:"x"`
	Y                   float64   `json:"y"`
	DX                  float64   `json:"dx"`
	DY                  float64   `json:"dy"`
	Passengers          int       `json:"passengers"`
	PilotName           string    `json:"pilot_name"`
	Origin              string    `json:"origin"`
	Destination         string    `json:"destination"`
	FinalCollisionState string    `json:"final_collision_state" example:"collision"`
	Tick                uint64    `json:"tick"`
	RecordedAt          time.Time `json:"recorded_at"`
}

// StatsResponse DTO для ответа со статистикой прогона
// @Description DTO для ответа со статистикой прогона
type StatsResponse struct {
	RunID        uuid.UUID      `json:"run_id"`
	Tick         uint64         `json:"tick"`
	Aircraft     int            `json:"aircraft"`
	Counts       map[string]int `json:"counts"`
	Collisions   int            `json:"collisions"`
	QueuedAlerts int            `json:"queued_alerts"`
}

// ResetSimulationRequest DTO для запуска нового прогона. Count = 0 - случайное количество.
// @Description DTO для запуска нового прогона
type ResetSimulationRequest struct {
	Count int `json:"count" validate:"gte=0,lte=50" example:"15"`
}

// ResetSimulationResponse DTO с начальным набором судов
// @Description DTO с начальным набором судов
type ResetSimulationResponse struct {
	Count    int                 `json:"count"`
	Aircraft []*AircraftResponse `json:"aircraft"`
}

// TickResponse DTO с итогом тика
// @Description DTO с итогом тика
type TickResponse struct {
	RunID         uuid.UUID      `json:"run_id"`
	Tick          uint64         `json:"tick"`
	Alerts        int            `json:"alerts"`
	NewCollisions int            `json:"new_collisions"`
	Counts        map[string]int `json:"counts"`
}

// HealthResponse DTO состояния сервиса
// @Description DTO состояния сервиса
type HealthResponse struct {
	Status        string  `json:"status" example:"ok"`
	StreamClients int     `json:"stream_clients"`
	CachedTick    *uint64 `json:"cached_tick,omitempty"`
}
