package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord - неизменяемый снимок судна в момент первого столкновения.
// Для одного ID в рамках прогона создаётся не более одной записи.
type HistoryRecord struct {
	ID            uuid.UUID `json:"id"`
	RunID         uuid.UUID `json:"run_id"`
	AircraftID    string    `json:"aircraft_id"`
	X             float64   `json:"x"`
	Y             float64   `json:"y"`
	DX            float64   `json:"dx"`
	DY            float64   `json:"dy"`
	Callsign      string    `json:"callsign"`
	Passengers    int       `json:"passengers"`
	PilotName     string    `json:"pilot_name"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	FinalSeverity Severity  `json:"final_collision_state"`
	Tick          uint64    `json:"tick"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// NewHistoryRecord фиксирует снимок судна с итоговым уровнем опасности
func NewHistoryRecord(runID uuid.UUID, ac Aircraft, final Severity, tick uint64, at time.Time) HistoryRecord {
	return HistoryRecord{
		ID:            uuid.New(),
		RunID:         runID,
		AircraftID:    ac.ID,
		X:             ac.X,
		Y:             ac.Y,
		DX:            ac.DX,
		DY:            ac.DY,
		Callsign:      ac.Callsign,
		Passengers:    ac.Passengers,
		PilotName:     ac.PilotName,
		Origin:        ac.Origin,
		Destination:   ac.Destination,
		FinalSeverity: final,
		Tick:          tick,
		RecordedAt:    at,
	}
}
