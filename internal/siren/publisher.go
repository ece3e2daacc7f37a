package siren

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sentinel_monitoring_system/internal/models"
)

const (
	sirenQueueKey = "siren_events"
)

// Event - событие внешнего оповещения о критической тревоге.
// Это реализация "звукового сигнала" на границе сервиса: сам сигнал
// воспроизводит внешний потребитель вебхука.
type Event struct {
	AlertID   string  `json:"alert_id"`
	DeviceID  string  `json:"device_id"`
	Type      string  `json:"type"`
	Severity  string  `json:"severity"`
	Message   string  `json:"message"`
	IsPanic   bool    `json:"is_panic"`
	Timestamp float64 `json:"timestamp"`
}

// EventFromAlert собирает событие оповещения из тревоги
func EventFromAlert(alert models.AlertRecord) Event {
	return Event{
		AlertID:   alert.AlertID,
		DeviceID:  alert.DeviceID,
		Type:      alert.Type,
		Severity:  alert.Severity,
		Message:   alert.Message,
		IsPanic:   alert.IsPanic,
		Timestamp: alert.Timestamp,
	}
}

// Publisher - интерфейс для публикации событий оповещения
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие оповещения в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal siren event: %w", err)
	}

	// LPUSH в левую часть списка, воркер читает справа
	if err := p.redisClient.LPush(ctx, sirenQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish siren event to Redis: %w", err)
	}
	return nil
}
