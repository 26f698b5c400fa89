package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// CrimeFeed - клиент источника криминальной статистики.
// Источник отдает индекс преступности района 0-100.
type CrimeFeed struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewCrimeFeed(cfg *config.Config) *CrimeFeed {
	return &CrimeFeed{
		url:        cfg.CrimeFeedURL,
		apiKey:     cfg.RiskFeedAPIKey,
		httpClient: &http.Client{},
	}
}

func (f *CrimeFeed) Assess(ctx context.Context, lat, lon float64) (models.FactorRisk, error) {
	if f.url == "" {
		return models.FactorRisk{}, fmt.Errorf("crime feed is not configured")
	}

	url := fmt.Sprintf("%s/v1/crime-index?lat=%f&lon=%f", f.url, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.FactorRisk{}, fmt.Errorf("failed to create crime feed request: %w", err)
	}

	var payload struct {
		Index float64 `json:"index"`
	}
	if err := getJSON(f.httpClient, req, f.apiKey, &payload); err != nil {
		return models.FactorRisk{}, err
	}

	score := clamp(payload.Index)
	return models.FactorRisk{Level: levelForScore(score), Score: score}, nil
}
