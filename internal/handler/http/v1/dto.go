package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// DetectionRequest DTO запроса на обнаружение
// @Description DTO запроса на обнаружение
type DetectionRequest struct {
	TouristID     string                 `json:"tourist_id" validate:"required"`
	Sensors       *models.SensorSnapshot `json:"sensors,omitempty"`
	Latitude      float64                `json:"latitude" validate:"required,latitude"`
	Longitude     float64                `json:"longitude" validate:"required,longitude"`
	ManualTrigger bool                   `json:"manual_trigger"`
	Category      string                 `json:"category,omitempty" validate:"omitempty,oneof=sos panic medical crime accident disaster"`
	Message       string                 `json:"message,omitempty"`
}

// ManualTriggerRequest DTO ручного вызова SOS
// @Description DTO ручного вызова SOS
type ManualTriggerRequest struct {
	TouristID string  `json:"tourist_id" validate:"required"`
	Category  string  `json:"category" validate:"required,oneof=sos panic medical crime accident disaster"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	Message   string  `json:"message,omitempty"`
}

// LocationUpdateRequest DTO обновления местоположения
// @Description DTO обновления местоположения
type LocationUpdateRequest struct {
	TouristID string  `json:"tourist_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// AcknowledgeRequest DTO подтверждения тревоги
// @Description DTO подтверждения тревоги
type AcknowledgeRequest struct {
	Actor string `json:"actor" validate:"required"`
}

// ResolveRequest DTO разрешения тревоги
// @Description DTO разрешения тревоги
type ResolveRequest struct {
	Actor string `json:"actor" validate:"required"`
	Notes string `json:"notes,omitempty"`
}

// ContactRequest DTO одного экстренного контакта
// @Description DTO одного экстренного контакта
type ContactRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=255"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,e164"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Relationship string `json:"relationship,omitempty"`
	Priority     int    `json:"priority" validate:"gte=0"`
}

// ReplaceContactsRequest DTO полной замены списка контактов
// @Description DTO полной замены списка контактов
type ReplaceContactsRequest struct {
	Contacts []ContactRequest `json:"contacts" validate:"required,dive"`
}

// AlertResponse DTO ответа с информацией о тревоге
// @Description DTO ответа с информацией о тревоге
type AlertResponse struct {
	ID              uuid.UUID  `json:"id"`
	TouristID       string     `json:"tourist_id"`
	Type            string     `json:"type"`
	Severity        string     `json:"severity"`
	Status          string     `json:"status"`
	Message         string     `json:"message"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	RiskScore       *float64   `json:"risk_score,omitempty"`
	Confidence      *float64   `json:"confidence,omitempty"`
	ZoneID          *uuid.UUID `json:"zone_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	AcknowledgedAt  *time.Time `json:"acknowledged_at,omitempty"`
	AcknowledgedBy  string     `json:"acknowledged_by,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy      string     `json:"resolved_by,omitempty"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
}

// DetectionResponse DTO полного результата обнаружения
// @Description DTO полного результата обнаружения
type DetectionResponse struct {
	Assessment      *models.RiskAssessment  `json:"assessment"`
	LocationRisk    *models.LocationRisk    `json:"location_risk"`
	Overall         *models.OverallRisk     `json:"overall"`
	Alert           *AlertResponse          `json:"alert,omitempty"`
	Dispatch        *models.DispatchSummary `json:"dispatch,omitempty"`
	Recommendations []string                `json:"recommendations"`
}

// GeofenceResponse DTO результата проверки местоположения
// @Description DTO результата проверки местоположения
type GeofenceResponse struct {
	Zones      []*models.DangerZone `json:"zones"`
	Alerts     []*AlertResponse     `json:"alerts"`
	Suppressed int                  `json:"suppressed"`
}

// ContactResponse DTO ответа с контактом
// @Description DTO ответа с контактом
type ContactResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Priority     int    `json:"priority"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TouristCount int `json:"tourist_count"`
}
