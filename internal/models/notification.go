package models

import (
	"time"

	"github.com/google/uuid"
)

// Channel - канал доставки уведомления
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelEmail    Channel = "email"
	ChannelVoice    Channel = "voice"
	ChannelExternal Channel = "external_service"
)

// AttemptStatus - исход одной попытки доставки
type AttemptStatus string

const (
	AttemptStatusSent   AttemptStatus = "sent"
	AttemptStatusFailed AttemptStatus = "failed"
)

// NotificationAttempt - неизменяемая запись об одной попытке доставки
// по одному каналу одному контакту. Ретраи создают новые записи,
// существующие никогда не обновляются.
type NotificationAttempt struct {
	ID        int64         `json:"id"`
	AlertID   uuid.UUID     `json:"alert_id"`
	ContactID int64         `json:"contact_id,omitempty"`
	Channel   Channel       `json:"channel"`
	Status    AttemptStatus `json:"status"`
	Error     string        `json:"error,omitempty"`
	SentAt    time.Time     `json:"sent_at"`
}

// AlertEvent - полезная нагрузка уведомления внешней экстренной службы
type AlertEvent struct {
	AlertID   uuid.UUID `json:"alert_id"`
	TouristID string    `json:"tourist_id"`
	Type      AlertType `json:"type"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// NewAlertEvent собирает событие из тревоги
func NewAlertEvent(alert *Alert) AlertEvent {
	return AlertEvent{
		AlertID:   alert.ID,
		TouristID: alert.TouristID,
		Type:      alert.Type,
		Severity:  alert.Severity,
		Message:   alert.Message,
		Latitude:  alert.Latitude,
		Longitude: alert.Longitude,
		Timestamp: time.Now(),
	}
}

// ChannelOutcome - счетчики исходов по одному каналу
type ChannelOutcome struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// DispatchSummary - агрегированный итог веерной рассылки по одной тревоге.
// Носит информационный характер: существование тревоги не зависит от
// успеха доставки.
type DispatchSummary struct {
	AlertID   uuid.UUID                   `json:"alert_id"`
	Sent      int                         `json:"sent"`
	Failed    int                         `json:"failed"`
	ByChannel map[Channel]*ChannelOutcome `json:"by_channel"`
}

// Add учитывает исход одной попытки
func (s *DispatchSummary) Add(ch Channel, ok bool) {
	if s.ByChannel == nil {
		s.ByChannel = make(map[Channel]*ChannelOutcome)
	}
	out := s.ByChannel[ch]
	if out == nil {
		out = &ChannelOutcome{}
		s.ByChannel[ch] = out
	}
	if ok {
		s.Sent++
		out.Sent++
	} else {
		s.Failed++
		out.Failed++
	}
}
