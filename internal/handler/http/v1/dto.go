package v1

import "time"

// PositionResponse DTO для позиции устройства на карте
// @Description DTO для позиции устройства на карте
type PositionResponse struct {
	DeviceID     string  `json:"device_id"`
	Timestamp    float64 `json:"timestamp"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Speed        float64 `json:"speed"`
	Heading      float64 `json:"heading"`
	IsPanic      bool    `json:"is_panic"`
	BatteryLevel float64 `json:"battery_level"`
	RiskScore    float64 `json:"risk_score"`
}

// AlertResponse DTO для тревоги в ленте оператора
// @Description DTO для тревоги в ленте оператора
type AlertResponse struct {
	AlertID           string   `json:"alert_id"`
	DeviceID          string   `json:"device_id"`
	Type              string   `json:"type"`
	Severity          string   `json:"severity"`
	Status            string   `json:"status"`
	Timestamp         float64  `json:"timestamp"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Message           string   `json:"message,omitempty"`
	IsPanic           bool     `json:"is_panic"`
	OwnerID           string   `json:"owner_id,omitempty"`
	AttestationStatus string   `json:"attestation_status,omitempty"`
	Confidence        float64  `json:"confidence,omitempty"`
	SuggestedAction   string   `json:"suggested_action,omitempty"`
	IsCritical        bool     `json:"is_critical"`
}

// StatsResponse DTO для агрегированных счетчиков
// @Description DTO для агрегированных счетчиков
type StatsResponse struct {
	Active int `json:"active"`
	Safe   int `json:"safe"`
	Danger int `json:"danger"`
}

// ClaimRequest DTO для назначения владельца инцидента
// @Description DTO для назначения владельца инцидента
type ClaimRequest struct {
	OwnerID string `json:"owner_id" validate:"required,min=1,max=255"`
}

// ReplaySelectRequest DTO для выбора устройства воспроизведения
// @Description DTO для выбора устройства воспроизведения
type ReplaySelectRequest struct {
	DeviceID string `json:"device_id" validate:"required,min=1,max=255"`
}

// ReplaySeekRequest DTO для перемотки воспроизведения
// @Description DTO для перемотки воспроизведения
type ReplaySeekRequest struct {
	Index int `json:"index" validate:"gte=0"`
}

// ReplayStatusResponse DTO для состояния воспроизведения истории
// @Description DTO для состояния воспроизведения истории
type ReplayStatusResponse struct {
	State      string               `json:"state"`
	DeviceID   string               `json:"device_id,omitempty"`
	FrameCount int                  `json:"frame_count"`
	Index      int                  `json:"index"`
	Frame      *ReplayFrameResponse `json:"frame,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// ReplayFrameResponse DTO для кадра исторической траектории
// @Description DTO для кадра исторической траектории
type ReplayFrameResponse struct {
	Timestamp float64 `json:"timestamp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Speed     float64 `json:"speed"`
}

// JournalEntryResponse DTO для записи журнала тревог
// @Description DTO для записи журнала тревог
type JournalEntryResponse struct {
	AlertID    string    `json:"alert_id"`
	DeviceID   string    `json:"device_id"`
	Type       string    `json:"type"`
	Severity   string    `json:"severity"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	Source     string    `json:"source"`
	EventTime  float64   `json:"event_time"`
	RecordedAt time.Time `json:"recorded_at"`
}
