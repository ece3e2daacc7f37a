package models

const defaultBatteryLevel = 100.0

// GeoPoint - географическая точка в градусах
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RiskInfo - оценка риска устройства от бэкенда (0-100)
type RiskInfo struct {
	Score float64 `json:"score"`
}

// PositionRecord - последняя известная телеметрия одного устройства.
// Timestamp - секунды с начала эпохи, как их отдает бэкенд.
type PositionRecord struct {
	DeviceID     string    `json:"device_id"`
	Timestamp    float64   `json:"timestamp"`
	Location     GeoPoint  `json:"location"`
	Speed        float64   `json:"speed"`
	Heading      float64   `json:"heading,omitempty"`
	IsPanic      bool      `json:"is_panic"`
	BatteryLevel *float64  `json:"battery_level,omitempty"`
	Risk         *RiskInfo `json:"risk,omitempty"`
}

// RiskScore возвращает оценку риска, отсутствие оценки трактуется как 0
func (p *PositionRecord) RiskScore() float64 {
	if p.Risk == nil {
		return 0
	}
	return p.Risk.Score
}

// Battery возвращает уровень заряда, отсутствие поля трактуется как 100
func (p *PositionRecord) Battery() float64 {
	if p.BatteryLevel == nil {
		return defaultBatteryLevel
	}
	return *p.BatteryLevel
}

// ReplayFrame - одна историческая точка устройства для тактического воспроизведения
type ReplayFrame struct {
	Timestamp float64  `json:"timestamp"`
	Location  GeoPoint `json:"location"`
	Speed     float64  `json:"speed"`
}
