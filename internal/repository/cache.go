package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sentinel_monitoring_system/internal/models"
	"github.com/shenikar/sentinel_monitoring_system/internal/service"
)

const positionCacheKey = "sentinel:positions"

type PositionCacheRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewPositionCacheRepository(redisClient *redis.Client, ttl time.Duration) service.PositionCache {
	return &PositionCacheRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// SavePositions сохраняет срез позиций в Redis для прогрева при рестарте
func (r *PositionCacheRepository) SavePositions(ctx context.Context, positions []models.PositionRecord) error {
	val, err := json.Marshal(positions)
	if err != nil {
		return fmt.Errorf("failed to marshal positions for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, positionCacheKey, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set positions in cache: %w", err)
	}
	return nil
}

// LoadPositions пытается получить позиции из Redis. Отсутствие ключа
// не является ошибкой.
func (r *PositionCacheRepository) LoadPositions(ctx context.Context) ([]models.PositionRecord, error) {
	val, err := r.redisClient.Get(ctx, positionCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get positions from cache: %w", err)
	}

	var positions []models.PositionRecord
	if err := json.Unmarshal(val, &positions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal positions from cache: %w", err)
	}
	return positions, nil
}
