package models

import (
	"time"

	"github.com/google/uuid"
)

// ZoneClass - классификация зоны
type ZoneClass string

const (
	ZoneClassDanger  ZoneClass = "danger"
	ZoneClassCaution ZoneClass = "caution"
	ZoneClassSafe    ZoneClass = "safe"
)

// DangerZone - геозона, за входом в которую следит монитор.
// Зоны создаются вне этой подсистемы, здесь только читаются.
type DangerZone struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters int       `json:"radius_meters"`
	Class        ZoneClass `json:"class"`
	CreatedAt    time.Time `json:"created_at"`
}

// LocationCheck - запись о проверке местоположения туриста
type LocationCheck struct {
	ID          int64     `json:"id"`
	TouristID   string    `json:"tourist_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	IsDangerous bool      `json:"is_dangerous"`
	CheckedAt   time.Time `json:"checked_at"`
}
