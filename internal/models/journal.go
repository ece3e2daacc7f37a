package models

import (
	"time"

	"github.com/google/uuid"
)

// Источник, из которого тревога попала в журнал
const (
	JournalSourceSnapshot = "snapshot"
	JournalSourceStream   = "stream"
)

// JournalEntry - запись журнала о наблюдаемой тревоге.
// Журнал дедуплицируется по alert_id, статус хранится последний.
type JournalEntry struct {
	ID         uuid.UUID `json:"id"`
	AlertID    string    `json:"alert_id"`
	DeviceID   string    `json:"device_id"`
	Type       string    `json:"type"`
	Severity   string    `json:"severity"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	Source     string    `json:"source"`
	EventTime  float64   `json:"event_time"`
	RecordedAt time.Time `json:"recorded_at"`
}
