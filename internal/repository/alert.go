package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type AlertRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewAlertRepository(db *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config) service.AlertRepository {
	return &AlertRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cfg.AlertCacheTTL,
	}
}

const alertColumns = `
	id,
	tourist_id,
	type,
	severity,
	status,
	message,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	risk_score,
	confidence,
	zone_id,
	created_at,
	acknowledged_at,
	acknowledged_by,
	resolved_at,
	resolved_by,
	resolution_notes
`

// Create создает новую запись о тревоге в бд
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (tourist_id, type, severity, status, message, location, risk_score, confidence, zone_id)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326), $8, $9, $10)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.TouristID,
		alert.Type,
		alert.Severity,
		alert.Status,
		alert.Message,
		alert.Longitude,
		alert.Latitude,
		alert.RiskScore,
		alert.Confidence,
		alert.ZoneID,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetByID возвращает тревогу по ее UUID
func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1;`

	alert, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s: %w", id, models.ErrAlertNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// Acknowledge подтверждает тревогу. Переход выполняется в транзакции
// с блокировкой строки: конкурентные переходы по одной тревоге
// сериализуются, по разным - независимы.
func (r *AlertRepository) Acknowledge(ctx context.Context, id uuid.UUID, actor string) (*models.Alert, error) {
	return r.transition(ctx, id, func(alert *models.Alert, now time.Time) (bool, error) {
		return alert.Acknowledge(actor, now)
	})
}

// Resolve разрешает тревогу с заметками, также под блокировкой строки
func (r *AlertRepository) Resolve(ctx context.Context, id uuid.UUID, actor, notes string) (*models.Alert, error) {
	return r.transition(ctx, id, func(alert *models.Alert, now time.Time) (bool, error) {
		return alert.Resolve(actor, notes, now)
	})
}

// transition выполняет один переход жизненного цикла под SELECT FOR UPDATE.
// apply возвращает false без ошибки для идемпотентного no-op: запись
// не трогается, возвращается текущее состояние.
func (r *AlertRepository) transition(ctx context.Context, id uuid.UUID, apply func(*models.Alert, time.Time) (bool, error)) (*models.Alert, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transition transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1 FOR UPDATE;`
	alert, err := scanAlert(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s: %w", id, models.ErrAlertNotFound)
		}
		return nil, fmt.Errorf("failed to lock alert for transition: %w", err)
	}

	changed, err := apply(alert, time.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		// идемпотентный повтор: состояние уже целевое
		return alert, nil
	}

	updateQuery := `
		UPDATE alerts SET
			status = $1,
			acknowledged_at = $2,
			acknowledged_by = $3,
			resolved_at = $4,
			resolved_by = $5,
			resolution_notes = $6
		WHERE id = $7;
	`
	_, err = tx.Exec(ctx, updateQuery,
		alert.Status,
		alert.AcknowledgedAt,
		nullIfEmpty(alert.AcknowledgedBy),
		alert.ResolvedAt,
		nullIfEmpty(alert.ResolvedBy),
		nullIfEmpty(alert.ResolutionNotes),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update alert status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}
	return alert, nil
}

// ListAlerts возвращает тревоги с фильтрами и пагинацией
func (r *AlertRepository) ListAlerts(ctx context.Context, touristID string, status models.AlertStatus, page, pageSize int) ([]*models.Alert, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + alertColumns + `
		FROM alerts
		WHERE ($1 = '' OR tourist_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, touristID, string(status), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alerts iteration: %w", err)
	}
	return alerts, nil
}

// GetAlertFromCache пытается получить тревогу из Redis
func (r *AlertRepository) GetAlertFromCache(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	key := fmt.Sprintf("alert:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert from cache: %w", err)
	}

	alert := &models.Alert{}
	if err := json.Unmarshal(val, alert); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert from cache: %w", err)
	}
	return alert, nil
}

// SetAlertCache сохраняет тревогу в Redis
func (r *AlertRepository) SetAlertCache(ctx context.Context, alert *models.Alert) error {
	key := fmt.Sprintf("alert:%s", alert.ID.String())
	val, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set alert in cache: %w", err)
	}
	return nil
}

// InvalidateAlertCache удаляет тревогу из Redis кэша
func (r *AlertRepository) InvalidateAlertCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("alert:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate alert cache: %w", err)
	}
	return nil
}

// scanAlert читает одну строку тревоги
func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	var (
		ackBy, resBy, notes *string
	)
	err := row.Scan(
		&alert.ID,
		&alert.TouristID,
		&alert.Type,
		&alert.Severity,
		&alert.Status,
		&alert.Message,
		&alert.Latitude,
		&alert.Longitude,
		&alert.RiskScore,
		&alert.Confidence,
		&alert.ZoneID,
		&alert.CreatedAt,
		&alert.AcknowledgedAt,
		&ackBy,
		&alert.ResolvedAt,
		&resBy,
		&notes,
	)
	if err != nil {
		return nil, err
	}
	if ackBy != nil {
		alert.AcknowledgedBy = *ackBy
	}
	if resBy != nil {
		alert.ResolvedBy = *resBy
	}
	if notes != nil {
		alert.ResolutionNotes = *notes
	}
	return alert, nil
}

// nullIfEmpty превращает пустую строку в NULL
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
