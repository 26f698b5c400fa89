package service

import (
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// RiskClassifier - чистый классификатор: сводит оценку сенсоров, риск
// местоположения и флаг ручного вызова к одному уровню серьезности.
type RiskClassifier struct {
	cfg *config.Config
}

func NewRiskClassifier(cfg *config.Config) *RiskClassifier {
	return &RiskClassifier{cfg: cfg}
}

// Classify вычисляет итоговый риск.
// Ручной вызов - безусловный override: critical, балл 1.0, уверенность 1.0,
// остальные входы игнорируются.
func (c *RiskClassifier) Classify(assessment *models.RiskAssessment, location *models.LocationRisk, manualTrigger bool) *models.OverallRisk {
	if manualTrigger {
		return &models.OverallRisk{
			Severity:   models.SeverityCritical,
			Score:      1.0,
			Factors:    []string{"manual trigger"},
			Confidence: 1.0,
		}
	}

	score := assessment.EmergencyProbability*c.cfg.SensorWeight + (location.Aggregate/100)*c.cfg.LocationWeight

	factors := make([]string, 0, len(assessment.RiskFactors))
	factors = append(factors, assessment.RiskFactors...)

	return &models.OverallRisk{
		Severity:   c.severityFor(score),
		Score:      score,
		Factors:    factors,
		Confidence: assessment.Confidence,
	}
}

// severityFor сопоставляет балл с уровнем серьезности.
// Пороги строгие: значение ровно на границе относится к нижнему уровню.
func (c *RiskClassifier) severityFor(score float64) models.Severity {
	switch {
	case score > c.cfg.TierCriticalScore:
		return models.SeverityCritical
	case score > c.cfg.TierHighScore:
		return models.SeverityHigh
	case score > c.cfg.TierModerateScore:
		return models.SeverityModerate
	case score > c.cfg.TierLowScore:
		return models.SeverityLow
	default:
		return models.SeverityMinimal
	}
}
