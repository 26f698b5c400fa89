// Package provider содержит HTTP-клиенты внешних источников данных о
// рисках. Каждый клиент реализует service.RiskFeed; таймаут несет
// контекст вызова, на "нет данных" возвращается ошибка, которую
// оценщик деградирует до unknown.
package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shenikar/tourist_safety_system/internal/models"
)

// getJSON выполняет GET и декодирует JSON-ответ в out
func getJSON(client *http.Client, req *http.Request, apiKey string, out any) error {
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("risk feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("risk feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read risk feed response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode risk feed response: %w", err)
	}
	return nil
}

// levelForScore сопоставляет балл 0-100 с качественным уровнем
func levelForScore(score float64) models.RiskLevel {
	switch {
	case score >= 70:
		return models.RiskLevelHigh
	case score >= 40:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}

// clamp ограничивает балл диапазоном 0-100
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
