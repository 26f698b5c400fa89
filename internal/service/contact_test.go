package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestContactService - вспомогательная функция для создания сервиса контактов с моком
func newTestContactService(t *testing.T) (*contactService, *mocks.MockContactRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockContactRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewContactService(repoMock, logger)
	return service.(*contactService), repoMock
}

func TestReplaceContacts_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestContactService(t)
	ctx := context.Background()
	contacts := []*models.EmergencyContact{
		{Name: "Анна", Phone: "+79990001122", Priority: 1},
		{Name: "Борис", Email: "boris@example.com", Priority: 2},
	}
	saved := []*models.EmergencyContact{
		{ID: 1, TouristID: "tourist-1", Name: "Анна", Phone: "+79990001122", Priority: 1},
		{ID: 2, TouristID: "tourist-1", Name: "Борис", Email: "boris@example.com", Priority: 2},
	}

	// Ожидания
	repoMock.EXPECT().ReplaceContacts(ctx, "tourist-1", contacts).Return(nil).Times(1)
	repoMock.EXPECT().ListContacts(ctx, "tourist-1").Return(saved, nil).Times(1)

	// Действие
	result, err := service.ReplaceContacts(ctx, "tourist-1", contacts)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, saved, result)
}

func TestReplaceContacts_NoChannel_ValidationError(t *testing.T) {
	// Подготовка: контакт без единого канала связи бесполезен
	service, repoMock := newTestContactService(t)
	ctx := context.Background()
	contacts := []*models.EmergencyContact{
		{Name: "Анна", Priority: 1},
	}

	// Ожидания
	repoMock.EXPECT().ReplaceContacts(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.ReplaceContacts(ctx, "tourist-1", contacts)

	// Проверки
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Nil(t, result)
}

func TestReplaceContacts_RepoError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestContactService(t)
	ctx := context.Background()
	contacts := []*models.EmergencyContact{{Name: "Анна", Phone: "+79990001122"}}

	// Ожидания
	repoMock.EXPECT().ReplaceContacts(ctx, "tourist-1", contacts).Return(fmt.Errorf("db down")).Times(1)

	// Действие
	result, err := service.ReplaceContacts(ctx, "tourist-1", contacts)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "could not replace contacts")
}

func TestListContacts_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestContactService(t)
	ctx := context.Background()
	expected := []*models.EmergencyContact{
		{ID: 1, Name: "Анна", Phone: "+79990001122", Priority: 1},
	}

	// Ожидания
	repoMock.EXPECT().ListContacts(ctx, "tourist-1").Return(expected, nil).Times(1)

	// Действие
	contacts, err := service.ListContacts(ctx, "tourist-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, contacts)
}
