package models

// Уровни серьезности тревог, приходящие от бэкенда
const (
	SeverityCritical = "CRITICAL"
	SeverityWarning  = "WARNING"
	SeverityInfo     = "INFO"
)

// Статусы жизненного цикла тревоги
const (
	StatusDetected     = "DETECTED"
	StatusAcknowledged = "ACKNOWLEDGED"
	StatusResolved     = "RESOLVED"
)

// Статус аттестации, отражаемый локально после подтверждения бэкендом.
// Само значение непрозрачно для сервиса.
const AttestationAnchored = "ANCHORED"

// AlertRecord - один инцидент. Поля attestation_status, confidence и
// suggested_action - непрозрачные данные бэкенда, сервис их не вычисляет
// и не проверяет, только передает дальше.
type AlertRecord struct {
	AlertID           string    `json:"alert_id"`
	DeviceID          string    `json:"device_id"`
	Type              string    `json:"type"`
	Severity          string    `json:"severity,omitempty"`
	Status            string    `json:"status,omitempty"`
	Timestamp         float64   `json:"timestamp"`
	Location          *GeoPoint `json:"location,omitempty"`
	Message           string    `json:"message"`
	IsPanic           bool      `json:"is_panic,omitempty"`
	OwnerID           string    `json:"owner_id,omitempty"`
	AttestationStatus string    `json:"attestation_status,omitempty"`
	Confidence        float64   `json:"confidence,omitempty"`
	SuggestedAction   string    `json:"suggested_action,omitempty"`
}

// IsCritical - флаг паники принудительно трактует тревогу как критическую,
// независимо от severity
func (a *AlertRecord) IsCritical() bool {
	return a.Severity == SeverityCritical || a.IsPanic
}

// EffectiveStatus возвращает статус тревоги, пустой статус трактуется как DETECTED
func (a *AlertRecord) EffectiveStatus() string {
	if a.Status == "" {
		return StatusDetected
	}
	return a.Status
}
