package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestGeofenceService - вспомогательная функция для создания сервиса геозон с моками
func newTestGeofenceService(t *testing.T) (*geofenceService, *mocks.MockZoneRepository, *mocks.MockAlertService, *mocks.MockCooldownStore) {
	ctrl := gomock.NewController(t)
	zonesMock := mocks.NewMockZoneRepository(ctrl)
	alertsMock := mocks.NewMockAlertService(ctrl)
	cooldownMock := mocks.NewMockCooldownStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewGeofenceService(zonesMock, alertsMock, cooldownMock, logger, testConfig())
	return service.(*geofenceService), zonesMock, alertsMock, cooldownMock
}

func TestCheckLocation_InsideZone_AlertCreated(t *testing.T) {
	// Подготовка
	service, zonesMock, alertsMock, cooldownMock := newTestGeofenceService(t)
	ctx := context.Background()
	touristID := "tourist-1"
	lat, lon := 55.75, 37.61
	zone := &models.DangerZone{ID: uuid.New(), Name: "Обрыв у смотровой площадки"}

	// Ожидания
	zonesMock.EXPECT().FindZonesContaining(ctx, lat, lon).Return([]*models.DangerZone{zone}, nil).Times(1)
	cooldownMock.EXPECT().
		AcquireZoneCooldown(ctx, touristID, zone.ID, service.cfg.GeofenceCooldown).
		Return(true, nil).Times(1)
	alertsMock.EXPECT().
		CreateAndDispatch(ctx, gomock.Any(), true, false).
		DoAndReturn(func(_ context.Context, alert *models.Alert, _, _ bool) (*models.Alert, *models.DispatchSummary, error) {
			// Нарушение геозоны - всегда high, независимо от сенсоров
			assert.Equal(t, models.AlertTypeGeofence, alert.Type)
			assert.Equal(t, models.SeverityHigh, alert.Severity)
			require.NotNil(t, alert.ZoneID)
			assert.Equal(t, zone.ID, *alert.ZoneID)
			alert.ID = uuid.New()
			return alert, &models.DispatchSummary{Sent: 1}, nil
		}).Times(1)
	zonesMock.EXPECT().
		SaveLocationCheck(ctx, gomock.Any()).
		Do(func(_ context.Context, check *models.LocationCheck) {
			assert.True(t, check.IsDangerous)
			assert.Equal(t, touristID, check.TouristID)
		}).Return(nil).Times(1)

	// Действие
	result, err := service.CheckLocation(ctx, touristID, lat, lon)

	// Проверки
	require.NoError(t, err)
	assert.Len(t, result.Zones, 1)
	assert.Len(t, result.Alerts, 1)
	assert.Zero(t, result.Suppressed)
}

func TestCheckLocation_OutsideZones_NoAlert(t *testing.T) {
	// Подготовка
	service, zonesMock, alertsMock, _ := newTestGeofenceService(t)
	ctx := context.Background()

	// Ожидания
	zonesMock.EXPECT().FindZonesContaining(ctx, 50.0, 50.0).Return(nil, nil).Times(1)
	alertsMock.EXPECT().CreateAndDispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	zonesMock.EXPECT().
		SaveLocationCheck(ctx, gomock.Any()).
		Do(func(_ context.Context, check *models.LocationCheck) {
			assert.False(t, check.IsDangerous)
		}).Return(nil).Times(1)

	// Действие
	result, err := service.CheckLocation(ctx, "tourist-1", 50.0, 50.0)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, result.Zones)
	assert.Empty(t, result.Alerts)
}

func TestCheckLocation_CooldownActive_AlertSuppressed(t *testing.T) {
	// Подготовка: пара (турист, зона) еще в окне кулдауна
	service, zonesMock, alertsMock, cooldownMock := newTestGeofenceService(t)
	ctx := context.Background()
	zone := &models.DangerZone{ID: uuid.New(), Name: "Зона А"}

	// Ожидания
	zonesMock.EXPECT().FindZonesContaining(ctx, 55.75, 37.61).Return([]*models.DangerZone{zone}, nil).Times(1)
	cooldownMock.EXPECT().
		AcquireZoneCooldown(ctx, "tourist-1", zone.ID, gomock.Any()).
		Return(false, nil).Times(1)
	alertsMock.EXPECT().CreateAndDispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	zonesMock.EXPECT().SaveLocationCheck(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.CheckLocation(ctx, "tourist-1", 55.75, 37.61)

	// Проверки: зона видна в результате, но тревога подавлена
	require.NoError(t, err)
	assert.Len(t, result.Zones, 1)
	assert.Empty(t, result.Alerts)
	assert.Equal(t, 1, result.Suppressed)
}

func TestCheckLocation_ZeroCooldown_AlertPerUpdate(t *testing.T) {
	// Подготовка: нулевой кулдаун отключает подавление полностью
	service, zonesMock, alertsMock, cooldownMock := newTestGeofenceService(t)
	service.cfg.GeofenceCooldown = 0
	ctx := context.Background()
	zone := &models.DangerZone{ID: uuid.New(), Name: "Зона А"}

	// Ожидания: хранилище кулдаунов даже не опрашивается
	zonesMock.EXPECT().FindZonesContaining(ctx, 55.75, 37.61).Return([]*models.DangerZone{zone}, nil).Times(2)
	cooldownMock.EXPECT().AcquireZoneCooldown(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	alertsMock.EXPECT().
		CreateAndDispatch(ctx, gomock.Any(), true, false).
		Return(&models.Alert{ID: uuid.New()}, nil, nil).Times(2)
	zonesMock.EXPECT().SaveLocationCheck(ctx, gomock.Any()).Return(nil).Times(2)

	// Действие: два подряд обновления местоположения внутри одной зоны
	first, err := service.CheckLocation(ctx, "tourist-1", 55.75, 37.61)
	require.NoError(t, err)
	second, err := service.CheckLocation(ctx, "tourist-1", 55.75, 37.61)
	require.NoError(t, err)

	// Проверки: тревога на каждое обновление
	assert.Len(t, first.Alerts, 1)
	assert.Len(t, second.Alerts, 1)
}

func TestCheckLocation_CooldownStoreDown_AlertsAnyway(t *testing.T) {
	// Подготовка: redis недоступен
	service, zonesMock, alertsMock, cooldownMock := newTestGeofenceService(t)
	ctx := context.Background()
	zone := &models.DangerZone{ID: uuid.New(), Name: "Зона А"}

	// Ожидания: лучше лишняя тревога, чем пропущенная
	zonesMock.EXPECT().FindZonesContaining(ctx, 55.75, 37.61).Return([]*models.DangerZone{zone}, nil).Times(1)
	cooldownMock.EXPECT().
		AcquireZoneCooldown(ctx, "tourist-1", zone.ID, gomock.Any()).
		Return(false, fmt.Errorf("redis: connection refused")).Times(1)
	alertsMock.EXPECT().
		CreateAndDispatch(ctx, gomock.Any(), true, false).
		Return(&models.Alert{ID: uuid.New()}, nil, nil).Times(1)
	zonesMock.EXPECT().SaveLocationCheck(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.CheckLocation(ctx, "tourist-1", 55.75, 37.61)

	// Проверки
	require.NoError(t, err)
	assert.Len(t, result.Alerts, 1)
	assert.Zero(t, result.Suppressed)
}

func TestCheckLocation_ZoneLookupError(t *testing.T) {
	// Подготовка
	service, zonesMock, _, _ := newTestGeofenceService(t)
	ctx := context.Background()

	// Ожидания
	zonesMock.EXPECT().FindZonesContaining(ctx, 55.75, 37.61).Return(nil, fmt.Errorf("db down")).Times(1)

	// Действие
	result, err := service.CheckLocation(ctx, "tourist-1", 55.75, 37.61)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "could not check danger zones")
}

func TestGeofenceGetStats_Success(t *testing.T) {
	// Подготовка
	service, zonesMock, _, _ := newTestGeofenceService(t)
	ctx := context.Background()

	// Ожидания
	zonesMock.EXPECT().GetLocationCheckStats(ctx, 60).Return(42, nil).Times(1)

	// Действие
	count, err := service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}
