package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type ZoneRepository struct {
	db *pgxpool.Pool
}

func NewZoneRepository(db *pgxpool.Pool) service.ZoneRepository {
	return &ZoneRepository{db: db}
}

// FindZonesContaining находит опасные зоны, в радиус которых попадает точка
func (r *ZoneRepository) FindZonesContaining(ctx context.Context, lat, lon float64) ([]*models.DangerZone, error) {
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			radius_meters,
			class,
			created_at
		FROM danger_zones
		WHERE
			class IN ('danger', 'caution')
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				radius_meters
			);
	`
	rows, err := r.db.Query(ctx, query, lon, lat)
	if err != nil {
		return nil, fmt.Errorf("failed to find zones containing point: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.DangerZone, 0)
	for rows.Next() {
		zone := &models.DangerZone{}
		err := rows.Scan(
			&zone.ID,
			&zone.Name,
			&zone.Latitude,
			&zone.Longitude,
			&zone.RadiusMeters,
			&zone.Class,
			&zone.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error zones iteration: %w", err)
	}
	return zones, nil
}

// SaveLocationCheck сохраняет запись о проверке местоположения в бд
func (r *ZoneRepository) SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error {
	query := `
		INSERT INTO location_checks (tourist_id, location, is_dangerous)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4) RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		check.TouristID,
		check.Longitude,
		check.Latitude,
		check.IsDangerous,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save location check: %w", err)
	}
	return nil
}

// GetLocationCheckStats возвращает количество уникальных туристов,
// проверивших местоположение за окно
func (r *ZoneRepository) GetLocationCheckStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT tourist_id)
		FROM location_checks
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get location check stats: %w", err)
	}
	return count, nil
}
