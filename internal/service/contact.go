package service

import (
	"context"
	"fmt"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

type contactService struct {
	repo   ContactRepository
	logger *logrus.Logger
}

func NewContactService(repo ContactRepository, logger *logrus.Logger) ContactService {
	return &contactService{repo: repo, logger: logger}
}

// ReplaceContacts полностью заменяет список экстренных контактов туриста
// и возвращает новый список в порядке приоритета
func (s *contactService) ReplaceContacts(ctx context.Context, touristID string, contacts []*models.EmergencyContact) ([]*models.EmergencyContact, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "contact",
		"method":     "ReplaceContacts",
		"tourist_id": touristID,
		"count":      len(contacts),
	})
	log.Info("Replacing emergency contacts")

	for _, c := range contacts {
		if c.Phone == "" && c.Email == "" {
			return nil, fmt.Errorf("contact %q has neither phone nor email: %w", c.Name, models.ErrValidation)
		}
	}

	if err := s.repo.ReplaceContacts(ctx, touristID, contacts); err != nil {
		log.WithError(err).Error("Failed to replace contacts in repository")
		return nil, fmt.Errorf("service: could not replace contacts: %w", err)
	}

	updated, err := s.repo.ListContacts(ctx, touristID)
	if err != nil {
		log.WithError(err).Error("Failed to list contacts after replace")
		return nil, fmt.Errorf("service: could not list contacts: %w", err)
	}
	log.Info("Emergency contacts replaced successfully")
	return updated, nil
}

// ListContacts возвращает контакты туриста в порядке приоритета
func (s *contactService) ListContacts(ctx context.Context, touristID string) ([]*models.EmergencyContact, error) {
	contacts, err := s.repo.ListContacts(ctx, touristID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list contacts from repository")
		return nil, fmt.Errorf("service: could not list contacts: %w", err)
	}
	return contacts, nil
}
