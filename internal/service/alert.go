package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

type alertService struct {
	repo     AlertRepository
	contacts ContactRepository
	notifier Notifier
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewAlertService(repo AlertRepository, contacts ContactRepository, notifier Notifier, logger *logrus.Logger, cfg *config.Config) AlertService {
	return &alertService{
		repo:     repo,
		contacts: contacts,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
	}
}

// CreateAndDispatch создает тревогу и синхронно запускает рассылку до
// возврата: вызывающий должен знать, была ли рассылка хотя бы начата.
// Отказ каналов не делает операцию ошибочной - тревога уже записана.
func (s *alertService) CreateAndDispatch(ctx context.Context, alert *models.Alert, notifyContacts, notifyExternal bool) (*models.Alert, *models.DispatchSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "CreateAndDispatch",
		"tourist_id": alert.TouristID,
		"type":       alert.Type,
		"severity":   alert.Severity,
	})
	log.Info("Creating a new alert")

	alert.Status = models.AlertStatusActive
	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return nil, nil, fmt.Errorf("service: could not create alert: %w", err)
	}
	log.WithField("alert_id", alert.ID).Info("Alert created successfully")

	if !notifyContacts && !notifyExternal {
		return alert, nil, nil
	}

	var contacts []*models.EmergencyContact
	if notifyContacts {
		var err error
		contacts, err = s.contacts.ListContacts(ctx, alert.TouristID)
		if err != nil {
			// тревога уже записана, отсутствие списка контактов не должно
			// выглядеть для вызывающего как отказ всей операции
			log.WithError(err).Error("Failed to load emergency contacts, dispatching without them")
			contacts = nil
		}
	}

	summary := s.notifier.Dispatch(ctx, alert, contacts, notifyExternal)
	log.WithFields(logrus.Fields{
		"sent":   summary.Sent,
		"failed": summary.Failed,
	}).Info("Notification dispatch completed")

	return alert, summary, nil
}

// GetAlert получает тревогу по ID, сначала из кеша
func (s *alertService) GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "GetAlert",
		"alert_id": id,
	})

	cached, err := s.repo.GetAlertFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read alert cache")
	}
	if cached != nil {
		return cached, nil
	}

	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert from repository")
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}

	if err := s.repo.SetAlertCache(ctx, alert); err != nil {
		log.WithError(err).Warn("Failed to cache alert")
	}
	return alert, nil
}

// AcknowledgeAlert подтверждает тревогу. Повторное подтверждение -
// идемпотентный no-op, подтверждение разрешенной тревоги - конфликт.
func (s *alertService) AcknowledgeAlert(ctx context.Context, id uuid.UUID, actor string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "AcknowledgeAlert",
		"alert_id": id,
		"actor":    actor,
	})
	log.Info("Acknowledging alert")

	alert, err := s.repo.Acknowledge(ctx, id, actor)
	if err != nil {
		log.WithError(err).Warn("Failed to acknowledge alert")
		return nil, fmt.Errorf("service: could not acknowledge alert: %w", err)
	}

	if err := s.repo.InvalidateAlertCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate alert cache")
	}
	log.Info("Alert acknowledged")
	return alert, nil
}

// ResolveAlert разрешает тревогу с заметками. Идемпотентен.
func (s *alertService) ResolveAlert(ctx context.Context, id uuid.UUID, actor, notes string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "ResolveAlert",
		"alert_id": id,
		"actor":    actor,
	})
	log.Info("Resolving alert")

	alert, err := s.repo.Resolve(ctx, id, actor, notes)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve alert")
		return nil, fmt.Errorf("service: could not resolve alert: %w", err)
	}

	if err := s.repo.InvalidateAlertCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate alert cache")
	}
	log.Info("Alert resolved")
	return alert, nil
}

// ListAlerts возвращает список тревог с пагинацией
func (s *alertService) ListAlerts(ctx context.Context, touristID string, status models.AlertStatus, page, pageSize int) ([]*models.Alert, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "ListAlerts",
		"page":      page,
		"page_size": pageSize,
	})

	alerts, err := s.repo.ListAlerts(ctx, touristID, status, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}
