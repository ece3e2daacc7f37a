package stream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/sentinel_monitoring_system/internal/config"
	"github.com/shenikar/sentinel_monitoring_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Имена событий push-канала бэкенда
const (
	EventConnect         = "connect"
	EventNewAlert        = "new_alert"
	EventTelemetryUpdate = "telemetry_update"
)

const maxReconnectDelay = time.Minute

// Envelope - конверт одного события push-канала
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// EventHandler определяет контракт для потребителя событий стрима
type EventHandler interface {
	HandleStreamAlert(ctx context.Context, alert models.AlertRecord)
	HandleStreamTelemetry(ctx context.Context, position models.PositionRecord)
}

// Client - долгоживущий подписчик push-канала бэкенда. Транспортные
// заботы (переподключение, разбор конвертов) остаются здесь, логика
// слияния целиком в обработчике.
type Client struct {
	url     string
	handler EventHandler
	logger  *logrus.Logger

	baseDelay time.Duration
}

func NewClient(cfg *config.Config, handler EventHandler, logger *logrus.Logger) *Client {
	return &Client{
		url:       cfg.BackendWSURL,
		handler:   handler,
		logger:    logger,
		baseDelay: cfg.StreamReconnectDelay,
	}
}

// Run держит соединение с push-каналом до отмены контекста.
// Обрыв соединения не портит состояние стора: события просто перестают
// приходить до переподключения, следующий снапшот выровняет картину.
func (c *Client) Run(ctx context.Context) {
	delay := c.baseDelay

	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
		if err != nil {
			c.logger.WithError(err).Warnf("Failed to connect to event stream. Retrying in %v", delay)
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			delay *= 2 // Экспоненциальная задержка
			if delay > maxReconnectDelay {
				delay = maxReconnectDelay
			}
			continue
		}

		c.logger.Info("Connected to event stream")
		delay = c.baseDelay

		c.readLoop(ctx, conn)
		_ = conn.Close()

		if ctx.Err() != nil {
			return
		}
		c.logger.Warn("Event stream disconnected, reconnecting")
	}
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) {
	// Закрываем сокет при отмене контекста, чтобы разблокировать чтение
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		var envelope Envelope
		if err := conn.ReadJSON(&envelope); err != nil {
			if ctx.Err() == nil {
				c.logger.WithError(err).Warn("Event stream read failed")
			}
			return
		}
		c.dispatch(ctx, envelope)
	}
}

// dispatch разбирает конверт и передает событие обработчику.
// Неразобранное событие логируется и пропускается, оно не фатально.
func (c *Client) dispatch(ctx context.Context, envelope Envelope) {
	switch envelope.Event {
	case EventConnect:
		c.logger.Debug("Event stream handshake confirmed")

	case EventNewAlert:
		var alert models.AlertRecord
		if err := json.Unmarshal(envelope.Payload, &alert); err != nil {
			c.logger.WithError(err).Warn("Failed to unmarshal stream alert, skipping")
			return
		}
		c.handler.HandleStreamAlert(ctx, alert)

	case EventTelemetryUpdate:
		var position models.PositionRecord
		if err := json.Unmarshal(envelope.Payload, &position); err != nil {
			c.logger.WithError(err).Warn("Failed to unmarshal stream telemetry, skipping")
			return
		}
		c.handler.HandleStreamTelemetry(ctx, position)

	default:
		c.logger.WithField("event", envelope.Event).Debug("Unknown stream event, skipping")
	}
}
