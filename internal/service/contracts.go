package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// AlertRepository определяет контракт для работы с бд тревог.
// Acknowledge и Resolve обязаны сериализовать конкурентные переходы
// по одной тревоге (блокировка строки), переходы по разным тревогам
// независимы.
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	Acknowledge(ctx context.Context, id uuid.UUID, actor string) (*models.Alert, error)
	Resolve(ctx context.Context, id uuid.UUID, actor, notes string) (*models.Alert, error)
	ListAlerts(ctx context.Context, touristID string, status models.AlertStatus, page, pageSize int) ([]*models.Alert, error)
	GetAlertFromCache(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	SetAlertCache(ctx context.Context, alert *models.Alert) error
	InvalidateAlertCache(ctx context.Context, id uuid.UUID) error
}

// ZoneRepository определяет контракт чтения геозон и журнала проверок
// местоположения. Зоны управляются вне подсистемы.
type ZoneRepository interface {
	FindZonesContaining(ctx context.Context, lat, lon float64) ([]*models.DangerZone, error)
	SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error
	GetLocationCheckStats(ctx context.Context, minutes int) (int, error)
}

// ContactRepository определяет контракт для экстренных контактов туриста
type ContactRepository interface {
	ReplaceContacts(ctx context.Context, touristID string, contacts []*models.EmergencyContact) error
	ListContacts(ctx context.Context, touristID string) ([]*models.EmergencyContact, error)
}

// CooldownStore определяет контракт подавления повторных срабатываний
// геозоны. Acquire возвращает true, если окно свободно и было захвачено.
type CooldownStore interface {
	AcquireZoneCooldown(ctx context.Context, touristID string, zoneID uuid.UUID, ttl time.Duration) (bool, error)
}

// Notifier определяет контракт веерной рассылки уведомлений по тревоге.
// Рассылка никогда не возвращает ошибку: отказ отдельного канала
// фиксируется в итоге попыткой со статусом failed.
type Notifier interface {
	Dispatch(ctx context.Context, alert *models.Alert, contacts []*models.EmergencyContact, includeExternal bool) *models.DispatchSummary
}

// AlertService определяет контракт жизненного цикла тревог
type AlertService interface {
	CreateAndDispatch(ctx context.Context, alert *models.Alert, notifyContacts, notifyExternal bool) (*models.Alert, *models.DispatchSummary, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	AcknowledgeAlert(ctx context.Context, id uuid.UUID, actor string) (*models.Alert, error)
	ResolveAlert(ctx context.Context, id uuid.UUID, actor, notes string) (*models.Alert, error)
	ListAlerts(ctx context.Context, touristID string, status models.AlertStatus, page, pageSize int) ([]*models.Alert, error)
}

// DetectionService определяет контракт обработки запросов на обнаружение
type DetectionService interface {
	Detect(ctx context.Context, input *models.DetectionInput) (*models.DetectionResult, error)
	TriggerManual(ctx context.Context, input *models.DetectionInput) (*models.DetectionResult, error)
}

// GeofenceService определяет контракт мониторинга геозон
type GeofenceService interface {
	CheckLocation(ctx context.Context, touristID string, lat, lon float64) (*models.GeofenceResult, error)
	GetStats(ctx context.Context) (int, error)
}

// ContactService определяет контракт управления экстренными контактами
type ContactService interface {
	ReplaceContacts(ctx context.Context, touristID string, contacts []*models.EmergencyContact) ([]*models.EmergencyContact, error)
	ListContacts(ctx context.Context, touristID string) ([]*models.EmergencyContact, error)
}
