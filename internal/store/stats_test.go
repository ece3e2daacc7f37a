package store

import (
	"testing"

	"github.com/shenikar/sentinel_monitoring_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestProjectStats(t *testing.T) {
	positions := []models.PositionRecord{
		{DeviceID: "A", IsPanic: false},
		{DeviceID: "B", IsPanic: true},
		{DeviceID: "C", IsPanic: true},
	}

	stats := ProjectStats(positions)

	assert.Equal(t, Stats{Active: 3, Safe: 1, Danger: 2}, stats)
}

func TestProjectStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ProjectStats(nil))
}
