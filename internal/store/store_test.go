package store

import (
	"bytes"
	"testing"

	"github.com/shenikar/sentinel_monitoring_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore — вспомогательная функция для создания стора с тихим логгером
func newTestStore() *Store {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return New(logger)
}

func position(deviceID string, ts float64) models.PositionRecord {
	return models.PositionRecord{
		DeviceID:  deviceID,
		Timestamp: ts,
		Location:  models.GeoPoint{Lat: 27.588, Lng: 91.862},
	}
}

func TestApplySnapshot_Idempotent(t *testing.T) {
	// Подготовка
	s := newTestStore()
	positions := []models.PositionRecord{
		position("DEV_1", 100),
		position("DEV_2", 200),
	}
	alerts := []models.AlertRecord{
		{AlertID: "A1", DeviceID: "DEV_1", Severity: models.SeverityWarning, Timestamp: 90},
	}

	// Действие
	s.ApplySnapshot(positions, alerts)
	first := s.Positions()
	firstAlerts := s.OrderedAlerts()

	s.ApplySnapshot(positions, alerts)
	second := s.Positions()
	secondAlerts := s.OrderedAlerts()

	// Проверки
	assert.ElementsMatch(t, first, second)
	assert.Equal(t, firstAlerts, secondAlerts)
}

func TestApplySnapshot_KeepsLatestPerDevice(t *testing.T) {
	// Подготовка: снапшот содержит дубли одного устройства
	s := newTestStore()
	positions := []models.PositionRecord{
		position("DEV_1", 100),
		position("DEV_1", 150),
		position("DEV_1", 120),
	}

	// Действие
	s.ApplySnapshot(positions, nil)

	// Проверки
	got := s.Positions()
	require.Len(t, got, 1)
	assert.Equal(t, float64(150), got[0].Timestamp)
}

func TestApplySnapshot_StaleSnapshotDoesNotClobberStream(t *testing.T) {
	// Подготовка: по стриму пришла запись новее, чем в снапшоте
	s := newTestStore()
	s.ApplyStreamTelemetry(position("DEV_1", 100))

	// Действие
	s.ApplySnapshot([]models.PositionRecord{position("DEV_1", 90)}, nil)

	// Проверки
	got := s.Positions()
	require.Len(t, got, 1)
	assert.Equal(t, float64(100), got[0].Timestamp)
}

func TestApplySnapshot_NewerSnapshotWins(t *testing.T) {
	s := newTestStore()
	s.ApplyStreamTelemetry(position("DEV_1", 100))

	s.ApplySnapshot([]models.PositionRecord{position("DEV_1", 110)}, nil)

	got := s.Positions()
	require.Len(t, got, 1)
	assert.Equal(t, float64(110), got[0].Timestamp)
}

func TestApplySnapshot_TieKeepsExisting(t *testing.T) {
	// Подготовка: равные timestamp — остается существующая запись
	s := newTestStore()
	existing := position("DEV_1", 100)
	existing.Speed = 3.5
	s.ApplyStreamTelemetry(existing)

	incoming := position("DEV_1", 100)
	incoming.Speed = 9.9
	s.ApplySnapshot([]models.PositionRecord{incoming}, nil)

	got := s.Positions()
	require.Len(t, got, 1)
	assert.Equal(t, 3.5, got[0].Speed)
}

func TestApplySnapshot_SilentDeviceSurvives(t *testing.T) {
	// Подготовка: устройство отсутствует в очередном снапшоте
	s := newTestStore()
	s.ApplySnapshot([]models.PositionRecord{position("DEV_1", 100), position("DEV_2", 100)}, nil)

	// Действие: следующий снапшот молчит про DEV_2
	s.ApplySnapshot([]models.PositionRecord{position("DEV_1", 200)}, nil)

	// Проверки: запись о позиции не удаляется в нормальной работе
	assert.Len(t, s.Positions(), 2)
}

func TestApplyStreamTelemetry_LatestWinsRegardlessOfOrder(t *testing.T) {
	// Два порядка доставки одной пары записей дают одинаковый итог
	older := position("DEV_1", 100)
	newer := position("DEV_1", 200)

	s1 := newTestStore()
	s1.ApplySnapshot([]models.PositionRecord{older}, nil)
	s1.ApplyStreamTelemetry(newer)

	s2 := newTestStore()
	s2.ApplyStreamTelemetry(newer)
	s2.ApplySnapshot([]models.PositionRecord{older}, nil)

	require.Len(t, s1.Positions(), 1)
	require.Len(t, s2.Positions(), 1)
	assert.Equal(t, float64(200), s1.Positions()[0].Timestamp)
	assert.Equal(t, float64(200), s2.Positions()[0].Timestamp)
}

func TestOrderedAlerts_CriticalFirstThenByTimestamp(t *testing.T) {
	// Подготовка
	s := newTestStore()
	s.ApplySnapshot(nil, []models.AlertRecord{
		{AlertID: "W", Severity: models.SeverityWarning, Timestamp: 10},
		{AlertID: "C", Severity: models.SeverityCritical, Timestamp: 5},
		{AlertID: "I", Severity: models.SeverityInfo, Timestamp: 20},
	})

	// Действие
	ordered := s.OrderedAlerts()

	// Проверки: критическая первой, остальные по убыванию timestamp
	require.Len(t, ordered, 3)
	assert.Equal(t, "C", ordered[0].AlertID)
	assert.Equal(t, "I", ordered[1].AlertID)
	assert.Equal(t, "W", ordered[2].AlertID)
}

func TestOrderedAlerts_PanicForcesCriticalTreatment(t *testing.T) {
	s := newTestStore()
	s.ApplySnapshot(nil, []models.AlertRecord{
		{AlertID: "W", Severity: models.SeverityWarning, Timestamp: 50},
		{AlertID: "P", Severity: models.SeverityInfo, IsPanic: true, Timestamp: 1},
	})

	ordered := s.OrderedAlerts()
	require.Len(t, ordered, 2)
	assert.Equal(t, "P", ordered[0].AlertID)
}

func TestApplyStreamAlert_PrependsAndFiresCriticalHook(t *testing.T) {
	// Подготовка
	s := newTestStore()
	var hooked []models.AlertRecord
	s.SetCriticalHook(func(a models.AlertRecord) {
		hooked = append(hooked, a)
	})
	s.ApplySnapshot(nil, []models.AlertRecord{
		{AlertID: "OLD", Severity: models.SeverityWarning, Timestamp: 10},
	})

	// Действие
	s.ApplyStreamAlert(models.AlertRecord{AlertID: "NEW", Severity: models.SeverityCritical, Timestamp: 5})
	s.ApplyStreamAlert(models.AlertRecord{AlertID: "CALM", Severity: models.SeverityInfo, Timestamp: 6})

	// Проверки: хук сработал только на критической тревоге
	require.Len(t, hooked, 1)
	assert.Equal(t, "NEW", hooked[0].AlertID)

	ordered := s.OrderedAlerts()
	require.Len(t, ordered, 3)
	assert.Equal(t, "NEW", ordered[0].AlertID)
}

func TestApplyAlertStatusChange(t *testing.T) {
	s := newTestStore()
	s.ApplySnapshot(nil, []models.AlertRecord{
		{AlertID: "A1", Status: models.StatusDetected, Timestamp: 10},
	})

	// Известный id перезаписывается
	assert.True(t, s.ApplyAlertStatusChange("A1", models.StatusAcknowledged))
	assert.Equal(t, models.StatusAcknowledged, s.OrderedAlerts()[0].Status)

	// Неизвестный id — no-op, не ошибка
	assert.False(t, s.ApplyAlertStatusChange("MISSING", models.StatusResolved))
	assert.Len(t, s.OrderedAlerts(), 1)
}

func TestStats_StreamBiasCorrectedBySnapshot(t *testing.T) {
	// Подготовка: два устройства без паники
	s := newTestStore()
	s.ApplySnapshot([]models.PositionRecord{position("DEV_1", 1), position("DEV_2", 1)}, nil)

	// Действие: критическая стрим-тревога дает поправку +1 к danger
	s.ApplyStreamAlert(models.AlertRecord{AlertID: "SOS", Severity: models.SeverityCritical, DeviceID: "DEV_1"})

	stats := s.Stats()
	assert.Equal(t, Stats{Active: 2, Safe: 1, Danger: 1}, stats)

	// Следующий снапшот авторитетен и сбрасывает поправку
	s.ApplySnapshot([]models.PositionRecord{position("DEV_1", 2), position("DEV_2", 2)}, nil)
	assert.Equal(t, Stats{Active: 2, Safe: 2, Danger: 0}, s.Stats())
}

func TestStats_BiasClampedToActive(t *testing.T) {
	s := newTestStore()
	s.ApplySnapshot([]models.PositionRecord{position("DEV_1", 1)}, nil)

	s.ApplyStreamAlert(models.AlertRecord{AlertID: "A", Severity: models.SeverityCritical})
	s.ApplyStreamAlert(models.AlertRecord{AlertID: "B", Severity: models.SeverityCritical})
	s.ApplyStreamAlert(models.AlertRecord{AlertID: "C", Severity: models.SeverityCritical})

	stats := s.Stats()
	assert.Equal(t, Stats{Active: 1, Safe: 0, Danger: 1}, stats)
}

func TestFilteredPositions_Boundaries(t *testing.T) {
	// Подготовка: пограничные значения score
	s := newTestStore()
	at50 := position("AT_50", 1)
	at50.Risk = &models.RiskInfo{Score: 50}
	at51 := position("AT_51", 1)
	at51.Risk = &models.RiskInfo{Score: 51}
	unscored := position("UNSCORED", 1)
	panicked := position("PANIC", 1)
	panicked.IsPanic = true

	s.ApplySnapshot([]models.PositionRecord{at50, at51, unscored, panicked}, nil)

	// Проверки: score=51 только в HIGH_RISK, score=50 только в SAFE,
	// отсутствие оценки трактуется как 0
	high := s.FilteredPositions(FilterHighRisk)
	safe := s.FilteredPositions(FilterSafe)
	all := s.FilteredPositions(FilterAll)

	highIDs := deviceIDs(high)
	safeIDs := deviceIDs(safe)

	assert.ElementsMatch(t, []string{"AT_51", "PANIC"}, highIDs)
	assert.ElementsMatch(t, []string{"AT_50", "UNSCORED"}, safeIDs)
	assert.Len(t, all, 4)
}

func deviceIDs(positions []models.PositionRecord) []string {
	ids := make([]string, 0, len(positions))
	for _, p := range positions {
		ids = append(ids, p.DeviceID)
	}
	return ids
}

func TestReplaceAll_WarmStart(t *testing.T) {
	s := newTestStore()
	s.ReplaceAll([]models.PositionRecord{position("DEV_1", 100)})

	require.Len(t, s.Positions(), 1)

	// Прогрев не мешает обычному правилу: более старый снапшот не затирает запись
	s.ApplySnapshot([]models.PositionRecord{position("DEV_1", 90)}, nil)
	assert.Equal(t, float64(100), s.Positions()[0].Timestamp)
}
