package store

import (
	"sort"
	"sync"

	"github.com/shenikar/sentinel_monitoring_system/internal/models"
	"github.com/sirupsen/logrus"
)

// PositionFilter - фильтр для выборки позиций
type PositionFilter string

const (
	FilterAll      PositionFilter = "ALL"
	FilterHighRisk PositionFilter = "HIGH_RISK"
	FilterSafe     PositionFilter = "SAFE"
)

// Порог риска: score > 50 относит устройство к HIGH_RISK
const highRiskThreshold = 50

// Store - единственный владелец согласованного представления
// "текущие позиции устройств" и "текущий список тревог".
// Мутируется только методами Apply*, читатели получают копии.
type Store struct {
	mu        sync.RWMutex
	positions map[string]models.PositionRecord
	alerts    []models.AlertRecord

	// Поправка к счетчику danger от критических стрим-тревог,
	// обнуляется на каждом снапшоте (снапшот авторитетен)
	panicBias int

	logger     *logrus.Logger
	onCritical func(models.AlertRecord)
}

func New(logger *logrus.Logger) *Store {
	return &Store{
		positions: make(map[string]models.PositionRecord),
		logger:    logger,
	}
}

// SetCriticalHook задает колбэк, вызываемый на каждой критической
// стрим-тревоге. Вызывается вне блокировки.
func (s *Store) SetCriticalHook(fn func(models.AlertRecord)) {
	s.onCritical = fn
}

// ApplySnapshot применяет результат периодического опроса.
// Позиции: входящий список схлопывается до последней записи на устройство,
// затем заменяет карту позиций, кроме записей, которые успели прийти по
// стриму с более поздним timestamp. Устройства, отсутствующие в снапшоте,
// сохраняются - запись о позиции не удаляется в нормальной работе.
// Тревоги: список заменяется целиком, снапшот тревог авторитетен.
func (s *Store) ApplySnapshot(positions []models.PositionRecord, alerts []models.AlertRecord) {
	reduced := make(map[string]models.PositionRecord, len(positions))
	for _, p := range positions {
		if cur, ok := reduced[p.DeviceID]; !ok || p.Timestamp > cur.Timestamp {
			reduced[p.DeviceID] = p
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]models.PositionRecord, len(reduced)+len(s.positions))
	for id, p := range reduced {
		next[id] = p
	}
	for id, cur := range s.positions {
		// Снапшот выигрывает только строго большим timestamp,
		// равенство оставляет существующую запись
		if p, ok := next[id]; !ok || cur.Timestamp >= p.Timestamp {
			next[id] = cur
		}
	}
	s.positions = next

	s.alerts = append([]models.AlertRecord(nil), alerts...)
	s.panicBias = 0
}

// ApplyStreamAlert добавляет стрим-тревогу в начало списка. Тревога из
// стрима считается строго новее всего, что уже есть. Критическая тревога
// дает best-effort поправку +1 к danger до следующего снапшота и
// срабатывание критического колбэка.
func (s *Store) ApplyStreamAlert(alert models.AlertRecord) {
	s.mu.Lock()
	s.alerts = append([]models.AlertRecord{alert}, s.alerts...)
	critical := alert.IsCritical()
	if critical {
		s.panicBias++
	}
	s.mu.Unlock()

	if critical && s.onCritical != nil {
		s.onCritical(alert)
	}
}

// ApplyStreamTelemetry выполняет upsert позиции по device_id. Стрим-телеметрия
// принимается безусловно, даже если ее timestamp старше сохраненного -
// отставание только логируется.
func (s *Store) ApplyStreamTelemetry(position models.PositionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.positions[position.DeviceID]; ok && position.Timestamp < cur.Timestamp {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{
				"device_id": position.DeviceID,
				"stored_ts": cur.Timestamp,
				"stream_ts": position.Timestamp,
			}).Debug("Stream telemetry is behind stored record, overwriting anyway")
		}
	}
	s.positions[position.DeviceID] = position
}

// ApplyAlertStatusChange перезаписывает статус тревоги по alert_id.
// Неизвестный id - no-op: бэкенд источник истины, следующий снапшот
// выровняет состояние.
func (s *Store) ApplyAlertStatusChange(alertID, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].AlertID == alertID {
			s.alerts[i].Status = status
			return true
		}
	}
	return false
}

// ApplyAlertClaim проставляет владельца инцидента по alert_id
func (s *Store) ApplyAlertClaim(alertID, ownerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].AlertID == alertID {
			s.alerts[i].OwnerID = ownerID
			return true
		}
	}
	return false
}

// ApplyAlertAttestation проставляет статус аттестации по alert_id.
// Значение непрозрачно, хранится как есть.
func (s *Store) ApplyAlertAttestation(alertID, attestationStatus string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].AlertID == alertID {
			s.alerts[i].AttestationStatus = attestationStatus
			return true
		}
	}
	return false
}

// OrderedAlerts возвращает копию списка тревог: сначала критические
// (по убыванию timestamp), затем остальные по убыванию timestamp.
// Порядок выводится из данных на каждом чтении и не кешируется.
func (s *Store) OrderedAlerts() []models.AlertRecord {
	s.mu.RLock()
	ordered := append([]models.AlertRecord(nil), s.alerts...)
	s.mu.RUnlock()

	sort.SliceStable(ordered, func(i, j int) bool {
		ci, cj := ordered[i].IsCritical(), ordered[j].IsCritical()
		if ci != cj {
			return ci
		}
		return ordered[i].Timestamp > ordered[j].Timestamp
	})
	return ordered
}

// FilteredPositions возвращает копию позиций, прошедших фильтр.
// HIGH_RISK: score > 50 или паника. SAFE: score <= 50 и нет паники.
// Отсутствующая оценка риска трактуется как 0.
func (s *Store) FilteredPositions(filter PositionFilter) []models.PositionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.PositionRecord, 0, len(s.positions))
	for _, p := range s.positions {
		switch filter {
		case FilterHighRisk:
			if p.RiskScore() > highRiskThreshold || p.IsPanic {
				result = append(result, p)
			}
		case FilterSafe:
			if p.RiskScore() <= highRiskThreshold && !p.IsPanic {
				result = append(result, p)
			}
		default:
			result = append(result, p)
		}
	}
	return result
}

// Positions возвращает копию всех позиций
func (s *Store) Positions() []models.PositionRecord {
	return s.FilteredPositions(FilterAll)
}

// Stats возвращает агрегированные счетчики с учетом best-effort поправки
// от критических стрим-тревог. Поправка ограничена числом активных
// устройств и исправляется следующим снапшотом.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := projectStatsLocked(s.positions)
	stats.Danger += s.panicBias
	if stats.Danger > stats.Active {
		stats.Danger = stats.Active
	}
	stats.Safe = stats.Active - stats.Danger
	return stats
}

// ReplaceAll целиком заменяет карту позиций. Используется только для
// прогрева из кеша при старте, до первого снапшота.
func (s *Store) ReplaceAll(positions []models.PositionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]models.PositionRecord, len(positions))
	for _, p := range positions {
		next[p.DeviceID] = p
	}
	s.positions = next
}
