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

// newTestAlertService - вспомогательная функция для создания сервиса тревог с моками
func newTestAlertService(t *testing.T) (*alertService, *mocks.MockAlertRepository, *mocks.MockContactRepository, *mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	contactsMock := mocks.NewMockContactRepository(ctrl)
	notifierMock := mocks.NewMockNotifier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewAlertService(repoMock, contactsMock, notifierMock, logger, testConfig())
	return service.(*alertService), repoMock, contactsMock, notifierMock
}

func TestCreateAndDispatch_Success(t *testing.T) {
	// Подготовка
	service, repoMock, contactsMock, notifierMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{
		TouristID: "tourist-1",
		Type:      models.AlertTypeAuto,
		Severity:  models.SeverityHigh,
	}
	contacts := []*models.EmergencyContact{
		{ID: 1, TouristID: "tourist-1", Name: "Анна", Phone: "+79990001122", Priority: 1},
	}
	summary := &models.DispatchSummary{Sent: 1}

	// Ожидания: запись в БД строго до рассылки
	created := repoMock.EXPECT().
		Create(ctx, alert).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = uuid.New()
			return nil
		}).Times(1)
	contactsMock.EXPECT().ListContacts(ctx, "tourist-1").Return(contacts, nil).Times(1).After(created)
	notifierMock.EXPECT().Dispatch(ctx, alert, contacts, false).Return(summary).Times(1)

	// Действие
	result, dispatch, err := service.CreateAndDispatch(ctx, alert, true, false)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusActive, result.Status)
	assert.NotEqual(t, uuid.Nil, result.ID)
	assert.Equal(t, summary, dispatch)
}

func TestCreateAndDispatch_RepoError_NoDispatch(t *testing.T) {
	// Подготовка
	service, repoMock, _, notifierMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{TouristID: "tourist-1", Severity: models.SeverityCritical}
	repoErr := fmt.Errorf("db down")

	// Ожидания: при отказе записи рассылка не запускается
	repoMock.EXPECT().Create(ctx, alert).Return(repoErr).Times(1)
	notifierMock.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, dispatch, err := service.CreateAndDispatch(ctx, alert, true, true)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Nil(t, dispatch)
	assert.ErrorContains(t, err, "could not create alert")
}

func TestCreateAndDispatch_NoNotify(t *testing.T) {
	// Подготовка: уровень не требует уведомлений
	service, repoMock, contactsMock, notifierMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{TouristID: "tourist-1", Severity: models.SeverityModerate}

	// Ожидания
	repoMock.EXPECT().Create(ctx, alert).Return(nil).Times(1)
	contactsMock.EXPECT().ListContacts(gomock.Any(), gomock.Any()).Times(0)
	notifierMock.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, dispatch, err := service.CreateAndDispatch(ctx, alert, false, false)

	// Проверки
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Nil(t, dispatch)
}

func TestCreateAndDispatch_ContactsUnavailable_DispatchContinues(t *testing.T) {
	// Подготовка
	service, repoMock, contactsMock, notifierMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{TouristID: "tourist-1", Severity: models.SeverityCritical}
	summary := &models.DispatchSummary{}

	// Ожидания: контакты недоступны, внешняя служба все равно уведомляется
	repoMock.EXPECT().Create(ctx, alert).Return(nil).Times(1)
	contactsMock.EXPECT().ListContacts(ctx, "tourist-1").Return(nil, fmt.Errorf("db error")).Times(1)
	notifierMock.EXPECT().Dispatch(ctx, alert, nil, true).Return(summary).Times(1)

	// Действие
	result, dispatch, err := service.CreateAndDispatch(ctx, alert, true, true)

	// Проверки: тревога уже записана, операция не считается отказавшей
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, summary, dispatch)
}

func TestGetAlert_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	expected := &models.Alert{ID: alertID, Status: models.AlertStatusActive}

	// Ожидания
	repoMock.EXPECT().GetAlertFromCache(ctx, alertID).Return(expected, nil).Times(1)

	// Действие
	alert, err := service.GetAlert(ctx, alertID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, alert)
}

func TestGetAlert_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	expected := &models.Alert{ID: alertID, Status: models.AlertStatusActive}

	// Ожидания
	repoMock.EXPECT().GetAlertFromCache(ctx, alertID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, alertID).Return(expected, nil).Times(1)
	repoMock.EXPECT().SetAlertCache(ctx, expected).Return(nil).Times(1)

	// Действие
	alert, err := service.GetAlert(ctx, alertID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, alert)
}

func TestGetAlert_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetAlertFromCache(ctx, alertID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, alertID).Return(nil, models.ErrAlertNotFound).Times(1)

	// Действие
	alert, err := service.GetAlert(ctx, alertID)

	// Проверки: сентинел сохраняется сквозь обертку
	require.ErrorIs(t, err, models.ErrAlertNotFound)
	assert.Nil(t, alert)
}

func TestAcknowledgeAlert_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	expected := &models.Alert{ID: alertID, Status: models.AlertStatusAcknowledged, AcknowledgedBy: "operator-1"}

	// Ожидания
	repoMock.EXPECT().Acknowledge(ctx, alertID, "operator-1").Return(expected, nil).Times(1)
	repoMock.EXPECT().InvalidateAlertCache(ctx, alertID).Return(nil).Times(1)

	// Действие
	alert, err := service.AcknowledgeAlert(ctx, alertID, "operator-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusAcknowledged, alert.Status)
}

func TestAcknowledgeAlert_StateConflict(t *testing.T) {
	// Подготовка: тревога уже разрешена
	service, repoMock, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания
	repoMock.EXPECT().Acknowledge(ctx, alertID, "operator-1").Return(nil, models.ErrStateConflict).Times(1)

	// Действие
	alert, err := service.AcknowledgeAlert(ctx, alertID, "operator-1")

	// Проверки
	require.ErrorIs(t, err, models.ErrStateConflict)
	assert.Nil(t, alert)
}

func TestResolveAlert_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	expected := &models.Alert{ID: alertID, Status: models.AlertStatusResolved, ResolutionNotes: "false alarm"}

	// Ожидания
	repoMock.EXPECT().Resolve(ctx, alertID, "operator-1", "false alarm").Return(expected, nil).Times(1)
	repoMock.EXPECT().InvalidateAlertCache(ctx, alertID).Return(nil).Times(1)

	// Действие
	alert, err := service.ResolveAlert(ctx, alertID, "operator-1", "false alarm")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusResolved, alert.Status)
}

func TestListAlerts_PaginationDefaults(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestAlertService(t)
	ctx := context.Background()
	expected := []*models.Alert{{ID: uuid.New()}}

	// Ожидания: некорректная пагинация нормализуется
	repoMock.EXPECT().ListAlerts(ctx, "tourist-1", models.AlertStatusActive, 1, 20).Return(expected, nil).Times(1)

	// Действие
	alerts, err := service.ListAlerts(ctx, "tourist-1", models.AlertStatusActive, 0, 500)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}
