package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// IsolationFeed - клиент источника плотности инфраструктуры.
// Чем меньше точек интереса вокруг координаты, тем выше риск изоляции.
type IsolationFeed struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewIsolationFeed(cfg *config.Config) *IsolationFeed {
	return &IsolationFeed{
		url:        cfg.IsolationFeedURL,
		apiKey:     cfg.RiskFeedAPIKey,
		httpClient: &http.Client{},
	}
}

func (f *IsolationFeed) Assess(ctx context.Context, lat, lon float64) (models.FactorRisk, error) {
	if f.url == "" {
		return models.FactorRisk{}, fmt.Errorf("isolation feed is not configured")
	}

	url := fmt.Sprintf("%s/v1/poi-density?lat=%f&lon=%f&radius=1000", f.url, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.FactorRisk{}, fmt.Errorf("failed to create isolation feed request: %w", err)
	}

	var payload struct {
		PoiCount int `json:"poi_count"`
	}
	if err := getJSON(f.httpClient, req, f.apiKey, &payload); err != nil {
		return models.FactorRisk{}, err
	}

	// 20 и более точек интереса в радиусе считаем нулевой изоляцией
	score := clamp(100 - float64(payload.PoiCount)*5)
	return models.FactorRisk{Level: levelForScore(score), Score: score}, nil
}
