package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) service.ContactRepository {
	return &ContactRepository{db: db}
}

// ReplaceContacts полностью заменяет список контактов туриста в одной
// транзакции: старый список удаляется, новый вставляется целиком
func (r *ContactRepository) ReplaceContacts(ctx context.Context, touristID string, contacts []*models.EmergencyContact) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin replace transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM emergency_contacts WHERE tourist_id = $1;`, touristID); err != nil {
		return fmt.Errorf("failed to delete old contacts: %w", err)
	}

	query := `
		INSERT INTO emergency_contacts (tourist_id, name, phone, email, relationship, priority)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`
	for _, c := range contacts {
		c.TouristID = touristID
		err := tx.QueryRow(ctx, query,
			touristID,
			c.Name,
			c.Phone,
			c.Email,
			c.Relationship,
			c.Priority,
		).Scan(&c.ID, &c.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert contact: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit contacts replace: %w", err)
	}
	return nil
}

// ListContacts возвращает контакты туриста в порядке возрастания priority
func (r *ContactRepository) ListContacts(ctx context.Context, touristID string) ([]*models.EmergencyContact, error) {
	query := `
		SELECT id, tourist_id, name, phone, email, relationship, priority, created_at
		FROM emergency_contacts
		WHERE tourist_id = $1
		ORDER BY priority ASC, id ASC;
	`
	rows, err := r.db.Query(ctx, query, touristID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*models.EmergencyContact, 0)
	for rows.Next() {
		c := &models.EmergencyContact{}
		err := rows.Scan(&c.ID, &c.TouristID, &c.Name, &c.Phone, &c.Email, &c.Relationship, &c.Priority, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error contacts iteration: %w", err)
	}
	return contacts, nil
}
