package v1

import "github.com/shenikar/airspace_alert_system/internal/models"

// ModelToAircraftResponse преобразует доменную модель в DTO для ответа
func ModelToAircraftResponse(model models.Aircraft) *AircraftResponse {
	return &AircraftResponse{
		ID:             model.ID,
		Callsign:       model.Callsign,
		X:              model.X,
		Y:              model.Y,
		DX:             model.DX,
		DY:             model.DY,
		Passengers:     model.Passengers,
		PilotName:      model.PilotName,
		Origin:         model.Origin,
		Destination:    model.Destination,
		CollisionState: string(model.Severity),
	}
}

// ModelsToAircraftResponses преобразует слайс моделей в слайс DTO
func ModelsToAircraftResponses(fleet []models.Aircraft) []*AircraftResponse {
	responses := make([]*AircraftResponse, len(fleet))
	for i, model := range fleet {
		responses[i] = ModelToAircraftResponse(model)
	}
	return responses
}

func ModelToHistoryRecordResponse(model models.HistoryRecord) *HistoryRecordResponse {
	return &HistoryRecordResponse{
		ID:                  model.ID,
		RunID:               model.RunID,
		AircraftID:          model.AircraftID,
		Callsign:            model.Callsign,
		X:                   model.X,
		Y:                   model.Y,
		DX:                  model.DX,
		DY:                  model.DY,
		Passengers:          model.Passengers,
		PilotName:           model.PilotName,
		Origin:              model.Origin,
		Destination:         model.Destination,
		FinalCollisionState: string(model.FinalSeverity),
		Tick:                model.Tick,
		RecordedAt:          model.RecordedAt,
	}
}

func ModelsToHistoryRecordResponses(records []models.HistoryRecord) []*HistoryRecordResponse {
	responses := make([]*HistoryRecordResponse, len(records))
	for i, model := range records {
		responses[i] = ModelToHistoryRecordResponse(model)
	}
	return responses
}

// ModelToStatsResponse - в ответе всегда присутствуют все четыре уровня
func ModelToStatsResponse(model *models.Stats) *StatsResponse {
	return &StatsResponse{
		RunID:        model.RunID,
		Tick:         model.Tick,
		Aircraft:     model.Aircraft,
		Counts:       countsToDTO(model.Counts),
		Collisions:   model.Collisions,
		QueuedAlerts: model.QueuedAlerts,
	}
}

func ReportToTickResponse(report *models.TickReport) *TickResponse {
	return &TickResponse{
		RunID:         report.RunID,
		Tick:          report.Tick,
		Alerts:        len(report.Alerts),
		NewCollisions: len(report.NewRecords),
		Counts:        countsToDTO(report.Counts),
	}
}

func countsToDTO(counts map[models.Severity]int) map[string]int {
	out := map[string]int{
		string(models.SeveritySafe):      0,
		string(models.SeverityWarning):   0,
		string(models.SeverityDanger):    0,
		string(models.SeverityCollision): 0,
	}
	for severity, n := range counts {
		out[string(severity)] = n
	}
	return out
}
