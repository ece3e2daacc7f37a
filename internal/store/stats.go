package store

import "github.com/shenikar/sentinel_monitoring_system/internal/models"

// Stats - агрегированные счетчики по текущей карте позиций
type Stats struct {
	Active int `json:"active"`
	Safe   int `json:"safe"`
	Danger int `json:"danger"`
}

// ProjectStats - чистая проекция списка позиций в счетчики:
// danger - число устройств с поднятым флагом паники, safe - остальные
func ProjectStats(positions []models.PositionRecord) Stats {
	stats := Stats{Active: len(positions)}
	for _, p := range positions {
		if p.IsPanic {
			stats.Danger++
		}
	}
	stats.Safe = stats.Active - stats.Danger
	return stats
}

func projectStatsLocked(positions map[string]models.PositionRecord) Stats {
	stats := Stats{Active: len(positions)}
	for _, p := range positions {
		if p.IsPanic {
			stats.Danger++
		}
	}
	stats.Safe = stats.Active - stats.Danger
	return stats
}
