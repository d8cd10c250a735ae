package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/airspace_alert_system/internal/models"
	"github.com/shenikar/airspace_alert_system/internal/service"
)

// HistoryRepository - архив столкновений в PostgreSQL. Только запись: состояние симуляции
// из архива не восстанавливается.
type HistoryRepository struct {
	db *pgxpool.Pool
}

func NewHistoryRepository(db *pgxpool.Pool) service.CollisionArchiver {
	return &HistoryRepository{
		db: db,
	}
}

// Archive сохраняет запись о столкновении. Повторная запись того же судна в том же прогоне игнорируется.
func (r *HistoryRepository) Archive(ctx context.Context, record *models.HistoryRecord) error {
	query := `
		INSERT INTO collision_history (
			id, run_id, aircraft_id, callsign, x, y, dx, dy,
			passengers, pilot_name, origin, destination, final_state, tick, recorded_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (run_id, aircraft_id) DO NOTHING;
	`
	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.RunID,
		record.AircraftID,
		record.Callsign,
		record.X,
		record.Y,
		record.DX,
		record.DY,
		record.Passengers,
		record.PilotName,
		record.Origin,
		record.Destination,
		string(record.FinalSeverity),
		int64(record.Tick),
		record.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to archive collision record: %w", err)
	}
	return nil
}
