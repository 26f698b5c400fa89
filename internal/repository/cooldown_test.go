package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCooldownStore(t *testing.T) (*miniredis.Miniredis, *CooldownStore) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, NewCooldownStore(client).(*CooldownStore)
}

func TestAcquireZoneCooldown_FirstAcquire(t *testing.T) {
	// Подготовка
	_, store := newTestCooldownStore(t)
	ctx := context.Background()
	zoneID := uuid.New()

	// Действие
	acquired, err := store.AcquireZoneCooldown(ctx, "tourist-1", zoneID, 10*time.Minute)

	// Проверки
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestAcquireZoneCooldown_SecondAcquire_Blocked(t *testing.T) {
	// Подготовка: окно уже захвачено
	_, store := newTestCooldownStore(t)
	ctx := context.Background()
	zoneID := uuid.New()

	acquired, err := store.AcquireZoneCooldown(ctx, "tourist-1", zoneID, 10*time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	// Действие
	acquired, err = store.AcquireZoneCooldown(ctx, "tourist-1", zoneID, 10*time.Minute)

	// Проверки
	require.NoError(t, err)
	assert.False(t, acquired)
}

func TestAcquireZoneCooldown_IndependentPairs(t *testing.T) {
	// Подготовка: окна независимы по туристу и по зоне
	_, store := newTestCooldownStore(t)
	ctx := context.Background()
	zoneA, zoneB := uuid.New(), uuid.New()

	acquired, err := store.AcquireZoneCooldown(ctx, "tourist-1", zoneA, 10*time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	// Действие и проверки: другая зона того же туриста
	acquired, err = store.AcquireZoneCooldown(ctx, "tourist-1", zoneB, 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	// Другой турист в той же зоне
	acquired, err = store.AcquireZoneCooldown(ctx, "tourist-2", zoneA, 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestAcquireZoneCooldown_ExpiresAfterTTL(t *testing.T) {
	// Подготовка
	mr, store := newTestCooldownStore(t)
	ctx := context.Background()
	zoneID := uuid.New()

	acquired, err := store.AcquireZoneCooldown(ctx, "tourist-1", zoneID, 10*time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	// Действие: мотаем время за границу окна
	mr.FastForward(11 * time.Minute)
	acquired, err = store.AcquireZoneCooldown(ctx, "tourist-1", zoneID, 10*time.Minute)

	// Проверки
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestAcquireZoneCooldown_RedisDown(t *testing.T) {
	// Подготовка
	mr, store := newTestCooldownStore(t)
	mr.Close()
	ctx := context.Background()

	// Действие
	acquired, err := store.AcquireZoneCooldown(ctx, "tourist-1", uuid.New(), 10*time.Minute)

	// Проверки
	require.Error(t, err)
	assert.False(t, acquired)
}
