package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/sentinel_monitoring_system/internal/config"
	"github.com/shenikar/sentinel_monitoring_system/internal/models"
	"github.com/shenikar/sentinel_monitoring_system/internal/siren"
	"github.com/shenikar/sentinel_monitoring_system/internal/store"
	"github.com/sirupsen/logrus"
)

// BackendClient определяет контракт для работы с командным бэкендом
type BackendClient interface {
	FetchPositions(ctx context.Context) ([]models.PositionRecord, error)
	FetchAlerts(ctx context.Context) ([]models.AlertRecord, error)
	FetchHistory(ctx context.Context, deviceID string, hours int) ([]models.ReplayFrame, error)
	AcknowledgeAlert(ctx context.Context, alertID string) error
	ResolveAlert(ctx context.Context, alertID string) error
	ClaimIncident(ctx context.Context, alertID, ownerID string) error
	AttestAlert(ctx context.Context, alertID string) error
}

// AlertJournal определяет контракт журнала наблюдаемых тревог
type AlertJournal interface {
	SaveAlert(ctx context.Context, alert models.AlertRecord, source string) error
	ListRecent(ctx context.Context, limit int) ([]models.JournalEntry, error)
}

// PositionCache определяет контракт кеша позиций для прогрева при рестарте
type PositionCache interface {
	SavePositions(ctx context.Context, positions []models.PositionRecord) error
	LoadPositions(ctx context.Context) ([]models.PositionRecord, error)
}

// MonitorService определяет контракт для бизнес-логики мониторинга
type MonitorService interface {
	Positions(filter string) ([]models.PositionRecord, error)
	OrderedAlerts() []models.AlertRecord
	Stats() store.Stats
	AcknowledgeAlert(ctx context.Context, alertID string) error
	ResolveAlert(ctx context.Context, alertID string) error
	ClaimIncident(ctx context.Context, alertID, ownerID string) error
	AttestAlert(ctx context.Context, alertID string) error
	RecentJournal(ctx context.Context, limit int) ([]models.JournalEntry, error)
	HandleStreamAlert(ctx context.Context, alert models.AlertRecord)
	HandleStreamTelemetry(ctx context.Context, position models.PositionRecord)
	WarmStart(ctx context.Context)
	RunPolling(ctx context.Context)
}

type monitorService struct {
	store   *store.Store
	backend BackendClient
	journal AlertJournal
	cache   PositionCache
	siren   siren.Publisher
	logger  *logrus.Logger
	cfg     *config.Config
}

func NewMonitorService(
	st *store.Store,
	backend BackendClient,
	journal AlertJournal,
	cache PositionCache,
	sirenPublisher siren.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) MonitorService {
	s := &monitorService{
		store:   st,
		backend: backend,
		journal: journal,
		cache:   cache,
		siren:   sirenPublisher,
		logger:  logger,
		cfg:     cfg,
	}

	// Критическая стрим-тревога озвучивается через очередь сирены
	st.SetCriticalHook(s.publishSiren)
	return s
}

// WarmStart прогревает стор из кеша позиций. Любая ошибка здесь не
// фатальна: первый же снапшот наполнит стор.
func (s *monitorService) WarmStart(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "monitor",
		"method":  "WarmStart",
	})

	positions, err := s.cache.LoadPositions(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load position cache, starting cold")
		return
	}
	if len(positions) == 0 {
		log.Info("Position cache is empty, starting cold")
		return
	}

	s.store.ReplaceAll(positions)
	log.WithField("count", len(positions)).Info("Store warmed up from position cache")
}

// RunPolling крутит цикл опроса снапшотов до отмены контекста.
// Первый опрос выполняется сразу, дальше по тикеру.
func (s *monitorService) RunPolling(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "monitor",
		"method":  "RunPolling",
	})
	log.WithField("interval", s.cfg.PollInterval).Info("Starting snapshot polling")

	s.pollOnce(ctx)

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping snapshot polling")
			return
		case <-ticker.C:
			s.pollOnce(ctx)
		}
	}
}

// pollOnce выполняет один цикл опроса. Любая ошибка выборки оставляет
// стор нетронутым, повтор на следующем тике.
func (s *monitorService) pollOnce(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "monitor",
		"method":  "pollOnce",
	})

	positions, err := s.backend.FetchPositions(ctx)
	if err != nil {
		log.WithError(err).Warn("Snapshot fetch failed, keeping current state")
		return
	}
	alerts, err := s.backend.FetchAlerts(ctx)
	if err != nil {
		log.WithError(err).Warn("Alert snapshot fetch failed, keeping current state")
		return
	}

	s.store.ApplySnapshot(positions, alerts)

	for _, alert := range alerts {
		if err := s.journal.SaveAlert(ctx, alert, models.JournalSourceSnapshot); err != nil {
			log.WithError(err).WithField("alert_id", alert.AlertID).Warn("Failed to journal snapshot alert")
		}
	}

	if err := s.cache.SavePositions(ctx, s.store.Positions()); err != nil {
		log.WithError(err).Warn("Failed to save position cache")
	}
}

// HandleStreamAlert принимает тревогу из push-канала
func (s *monitorService) HandleStreamAlert(ctx context.Context, alert models.AlertRecord) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "monitor",
		"method":   "HandleStreamAlert",
		"alert_id": alert.AlertID,
	})
	log.Info("Stream alert received")

	s.store.ApplyStreamAlert(alert)

	if err := s.journal.SaveAlert(ctx, alert, models.JournalSourceStream); err != nil {
		log.WithError(err).Warn("Failed to journal stream alert")
	}
}

// HandleStreamTelemetry принимает телеметрию из push-канала
func (s *monitorService) HandleStreamTelemetry(_ context.Context, position models.PositionRecord) {
	s.store.ApplyStreamTelemetry(position)
}

func (s *monitorService) publishSiren(alert models.AlertRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.SirenTimeout)
	defer cancel()

	if err := s.siren.Publish(ctx, siren.EventFromAlert(alert)); err != nil {
		s.logger.WithError(err).WithField("alert_id", alert.AlertID).Error("Failed to publish siren event")
	}
}

// Positions возвращает отфильтрованные позиции из согласованного представления
func (s *monitorService) Positions(filter string) ([]models.PositionRecord, error) {
	switch store.PositionFilter(filter) {
	case store.FilterAll, store.PositionFilter(""):
		return s.store.FilteredPositions(store.FilterAll), nil
	case store.FilterHighRisk:
		return s.store.FilteredPositions(store.FilterHighRisk), nil
	case store.FilterSafe:
		return s.store.FilteredPositions(store.FilterSafe), nil
	default:
		return nil, fmt.Errorf("service: unknown position filter %q", filter)
	}
}

// OrderedAlerts возвращает тревоги в порядке показа
func (s *monitorService) OrderedAlerts() []models.AlertRecord {
	return s.store.OrderedAlerts()
}

// Stats возвращает агрегированные счетчики
func (s *monitorService) Stats() store.Stats {
	return s.store.Stats()
}

// AcknowledgeAlert подтверждает тревогу на бэкенде и отражает статус локально
func (s *monitorService) AcknowledgeAlert(ctx context.Context, alertID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "monitor",
		"method":   "AcknowledgeAlert",
		"alert_id": alertID,
	})

	if err := s.backend.AcknowledgeAlert(ctx, alertID); err != nil {
		log.WithError(err).Error("Failed to acknowledge alert on backend")
		return fmt.Errorf("service: could not acknowledge alert: %w", err)
	}

	// Неизвестный id локально — no-op, снапшот выровняет состояние
	if !s.store.ApplyAlertStatusChange(alertID, models.StatusAcknowledged) {
		log.Debug("Acknowledged alert is not in the local view yet")
	}
	log.Info("Alert acknowledged")
	return nil
}

// ResolveAlert закрывает тревогу на бэкенде и отражает статус локально
func (s *monitorService) ResolveAlert(ctx context.Context, alertID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "monitor",
		"method":   "ResolveAlert",
		"alert_id": alertID,
	})

	if err := s.backend.ResolveAlert(ctx, alertID); err != nil {
		log.WithError(err).Error("Failed to resolve alert on backend")
		return fmt.Errorf("service: could not resolve alert: %w", err)
	}

	if !s.store.ApplyAlertStatusChange(alertID, models.StatusResolved) {
		log.Debug("Resolved alert is not in the local view yet")
	}
	log.Info("Alert resolved")
	return nil
}

// ClaimIncident назначает владельца инцидента
func (s *monitorService) ClaimIncident(ctx context.Context, alertID, ownerID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "monitor",
		"method":   "ClaimIncident",
		"alert_id": alertID,
		"owner_id": ownerID,
	})

	if err := s.backend.ClaimIncident(ctx, alertID, ownerID); err != nil {
		log.WithError(err).Error("Failed to claim incident on backend")
		return fmt.Errorf("service: could not claim incident: %w", err)
	}

	s.store.ApplyAlertClaim(alertID, ownerID)
	log.Info("Incident claimed")
	return nil
}

// AttestAlert запрашивает аттестацию тревоги и отражает подтвержденный
// статус локально. Значение статуса непрозрачно для сервиса.
func (s *monitorService) AttestAlert(ctx context.Context, alertID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "monitor",
		"method":   "AttestAlert",
		"alert_id": alertID,
	})

	if err := s.backend.AttestAlert(ctx, alertID); err != nil {
		log.WithError(err).Error("Failed to attest alert on backend")
		return fmt.Errorf("service: could not attest alert: %w", err)
	}

	s.store.ApplyAlertAttestation(alertID, models.AttestationAnchored)
	log.Info("Alert attested")
	return nil
}

// RecentJournal возвращает последние записи журнала тревог
func (s *monitorService) RecentJournal(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	if limit < 1 || limit > 500 {
		limit = 50
	}

	entries, err := s.journal.ListRecent(ctx, limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list journal entries")
		return nil, fmt.Errorf("service: could not list journal entries: %w", err)
	}
	return entries, nil
}
