package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/notifier"
)

type AttemptRepository struct {
	db *pgxpool.Pool
}

func NewAttemptRepository(db *pgxpool.Pool) notifier.AttemptRepository {
	return &AttemptRepository{db: db}
}

// SaveAttempt добавляет запись о попытке доставки. Записи неизменяемы:
// ретраи создают новые строки, полный журнал попыток сохраняется.
func (r *AttemptRepository) SaveAttempt(ctx context.Context, attempt *models.NotificationAttempt) error {
	query := `
		INSERT INTO notification_attempts (alert_id, contact_id, channel, status, error, sent_at)
		VALUES ($1, NULLIF($2, 0), $3, $4, NULLIF($5, ''), $6) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		attempt.AlertID,
		attempt.ContactID,
		attempt.Channel,
		attempt.Status,
		attempt.Error,
		attempt.SentAt,
	).Scan(&attempt.ID)
	if err != nil {
		return fmt.Errorf("failed to save notification attempt: %w", err)
	}
	return nil
}
