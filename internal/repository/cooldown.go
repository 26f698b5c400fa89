package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type CooldownStore struct {
	redisClient *redis.Client
}

func NewCooldownStore(client *redis.Client) service.CooldownStore {
	return &CooldownStore{redisClient: client}
}

// AcquireZoneCooldown атомарно захватывает окно подавления для пары
// (турист, зона) через SET NX с TTL. true - окно было свободно,
// тревогу следует создать; false - недавняя тревога уже была.
func (s *CooldownStore) AcquireZoneCooldown(ctx context.Context, touristID string, zoneID uuid.UUID, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("geofence_cooldown:%s:%s", touristID, zoneID.String())
	acquired, err := s.redisClient.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire zone cooldown: %w", err)
	}
	return acquired, nil
}
