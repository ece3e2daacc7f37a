package v1

import (
	"github.com/shenikar/sentinel_monitoring_system/internal/models"
	"github.com/shenikar/sentinel_monitoring_system/internal/replay"
)

// ModelToPositionResponse преобразует доменную модель позиции в DTO
func ModelToPositionResponse(model models.PositionRecord) PositionResponse {
	return PositionResponse{
		DeviceID:     model.DeviceID,
		Timestamp:    model.Timestamp,
		Latitude:     model.Location.Lat,
		Longitude:    model.Location.Lng,
		Speed:        model.Speed,
		Heading:      model.Heading,
		IsPanic:      model.IsPanic,
		BatteryLevel: model.Battery(),
		RiskScore:    model.RiskScore(),
	}
}

// ModelsToPositionResponses преобразует слайс моделей в слайс DTO
func ModelsToPositionResponses(positions []models.PositionRecord) []PositionResponse {
	responses := make([]PositionResponse, len(positions))
	for i, p := range positions {
		responses[i] = ModelToPositionResponse(p)
	}
	return responses
}

// ModelToAlertResponse преобразует доменную модель тревоги в DTO
func ModelToAlertResponse(model models.AlertRecord) AlertResponse {
	resp := AlertResponse{
		AlertID:           model.AlertID,
		DeviceID:          model.DeviceID,
		Type:              model.Type,
		Severity:          model.Severity,
		Status:            model.EffectiveStatus(),
		Timestamp:         model.Timestamp,
		Message:           model.Message,
		IsPanic:           model.IsPanic,
		OwnerID:           model.OwnerID,
		AttestationStatus: model.AttestationStatus,
		Confidence:        model.Confidence,
		SuggestedAction:   model.SuggestedAction,
		IsCritical:        model.IsCritical(),
	}
	if model.Location != nil {
		lat, lng := model.Location.Lat, model.Location.Lng
		resp.Latitude = &lat
		resp.Longitude = &lng
	}
	return resp
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(alerts []models.AlertRecord) []AlertResponse {
	responses := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = ModelToAlertResponse(a)
	}
	return responses
}

// ReplayStatusToResponse преобразует состояние контроллера воспроизведения в DTO
func ReplayStatusToResponse(status replay.Status) ReplayStatusResponse {
	resp := ReplayStatusResponse{
		State:      string(status.State),
		DeviceID:   status.DeviceID,
		FrameCount: status.FrameCount,
		Index:      status.Index,
	}
	if status.Frame != nil {
		resp.Frame = &ReplayFrameResponse{
			Timestamp: status.Frame.Timestamp,
			Latitude:  status.Frame.Location.Lat,
			Longitude: status.Frame.Location.Lng,
			Speed:     status.Frame.Speed,
		}
	}
	if status.LastError != nil {
		resp.Error = status.LastError.Error()
	}
	return resp
}

// JournalEntriesToResponses преобразует записи журнала в слайс DTO
func JournalEntriesToResponses(entries []models.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = JournalEntryResponse{
			AlertID:    e.AlertID,
			DeviceID:   e.DeviceID,
			Type:       e.Type,
			Severity:   e.Severity,
			Status:     e.Status,
			Message:    e.Message,
			Source:     e.Source,
			EventTime:  e.EventTime,
			RecordedAt: e.RecordedAt,
		}
	}
	return responses
}
