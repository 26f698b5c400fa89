package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// WeatherFeed - клиент метеоисточника. Балл складывается из числа
// активных погодных предупреждений и их максимальной серьезности.
type WeatherFeed struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewWeatherFeed(cfg *config.Config) *WeatherFeed {
	return &WeatherFeed{
		url:        cfg.WeatherFeedURL,
		apiKey:     cfg.RiskFeedAPIKey,
		httpClient: &http.Client{},
	}
}

func (f *WeatherFeed) Assess(ctx context.Context, lat, lon float64) (models.FactorRisk, error) {
	if f.url == "" {
		return models.FactorRisk{}, fmt.Errorf("weather feed is not configured")
	}

	url := fmt.Sprintf("%s/v1/warnings?lat=%f&lon=%f", f.url, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.FactorRisk{}, fmt.Errorf("failed to create weather feed request: %w", err)
	}

	var payload struct {
		Warnings []struct {
			Severity int `json:"severity"` // 1-4 по шкале источника
		} `json:"warnings"`
	}
	if err := getJSON(f.httpClient, req, f.apiKey, &payload); err != nil {
		return models.FactorRisk{}, err
	}

	maxSeverity := 0
	for _, w := range payload.Warnings {
		if w.Severity > maxSeverity {
			maxSeverity = w.Severity
		}
	}
	score := clamp(float64(maxSeverity) * 25)
	return models.FactorRisk{Level: levelForScore(score), Score: score}, nil
}
