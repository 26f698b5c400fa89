package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity - уровень серьезности оценки риска
type Severity string

const (
	SeverityMinimal  Severity = "minimal"
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AlertType - тип тревоги
type AlertType string

const (
	AlertTypeSOS       AlertType = "sos"
	AlertTypePanic     AlertType = "panic"
	AlertTypeAuto      AlertType = "auto_detection"
	AlertTypeGeofence  AlertType = "geofence_violation"
	AlertTypeMedical   AlertType = "medical"
	AlertTypeCrime     AlertType = "crime"
	AlertTypeAccident  AlertType = "accident"
	AlertTypeDisaster  AlertType = "disaster"
)

// AlertStatus - статус жизненного цикла тревоги
type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

// Alert - запись о тревоге. Единственная сущность подсистемы с идентичностью
// и жизненным циклом. Severity и Type неизменяемы после создания, мутируют
// только статус и метаданные обработки.
type Alert struct {
	ID              uuid.UUID   `json:"id"`
	TouristID       string      `json:"tourist_id"`
	Type            AlertType   `json:"type"`
	Severity        Severity    `json:"severity"`
	Status          AlertStatus `json:"status"`
	Message         string      `json:"message"`
	Latitude        float64     `json:"latitude"`
	Longitude       float64     `json:"longitude"`
	RiskScore       *float64    `json:"risk_score,omitempty"`
	Confidence      *float64    `json:"confidence,omitempty"`
	ZoneID          *uuid.UUID  `json:"zone_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	AcknowledgedAt  *time.Time  `json:"acknowledged_at,omitempty"`
	AcknowledgedBy  string      `json:"acknowledged_by,omitempty"`
	ResolvedAt      *time.Time  `json:"resolved_at,omitempty"`
	ResolvedBy      string      `json:"resolved_by,omitempty"`
	ResolutionNotes string      `json:"resolution_notes,omitempty"`
}

// Acknowledge переводит тревогу в статус acknowledged.
// Повторное подтверждение - no-op (сетевые ретраи не должны падать),
// подтверждение resolved тревоги - конфликт состояния.
// Возвращает true, если состояние действительно изменилось.
func (a *Alert) Acknowledge(actor string, now time.Time) (bool, error) {
	switch a.Status {
	case AlertStatusAcknowledged:
		return false, nil
	case AlertStatusResolved:
		return false, ErrStateConflict
	}
	a.Status = AlertStatusAcknowledged
	a.AcknowledgedAt = &now
	a.AcknowledgedBy = actor
	return true, nil
}

// Resolve переводит тревогу в терминальный статус resolved.
// Допустим из active и acknowledged; повторное разрешение - no-op.
func (a *Alert) Resolve(actor, notes string, now time.Time) (bool, error) {
	if a.Status == AlertStatusResolved {
		return false, nil
	}
	a.Status = AlertStatusResolved
	a.ResolvedAt = &now
	a.ResolvedBy = actor
	a.ResolutionNotes = notes
	return true, nil
}
