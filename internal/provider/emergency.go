package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// EmergencyServicesFeed - клиент справочника экстренных служб.
// Балл растет с расстоянием до ближайшей службы: удаленность от помощи
// и есть фактор риска.
type EmergencyServicesFeed struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewEmergencyServicesFeed(cfg *config.Config) *EmergencyServicesFeed {
	return &EmergencyServicesFeed{
		url:        cfg.EmergencyFeedURL,
		apiKey:     cfg.RiskFeedAPIKey,
		httpClient: &http.Client{},
	}
}

func (f *EmergencyServicesFeed) Assess(ctx context.Context, lat, lon float64) (models.FactorRisk, error) {
	if f.url == "" {
		return models.FactorRisk{}, fmt.Errorf("emergency services feed is not configured")
	}

	url := fmt.Sprintf("%s/v1/nearest?lat=%f&lon=%f", f.url, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.FactorRisk{}, fmt.Errorf("failed to create emergency services request: %w", err)
	}

	var payload struct {
		NearestKm float64 `json:"nearest_km"`
	}
	if err := getJSON(f.httpClient, req, f.apiKey, &payload); err != nil {
		return models.FactorRisk{}, err
	}

	// 25 км и дальше до ближайшей службы - максимальный балл
	score := clamp(payload.NearestKm * 4)
	return models.FactorRisk{Level: levelForScore(score), Score: score}, nil
}
