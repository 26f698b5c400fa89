package service

import (
	"testing"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_ManualTrigger_Override(t *testing.T) {
	// Подготовка: сенсоры и местоположение намеренно спокойные
	classifier := NewRiskClassifier(testConfig())
	assessment := &models.RiskAssessment{EmergencyProbability: 0}
	location := &models.LocationRisk{Aggregate: 0}

	// Действие
	overall := classifier.Classify(assessment, location, true)

	// Проверки: ручной вызов перекрывает любые входы
	require.NotNil(t, overall)
	assert.Equal(t, models.SeverityCritical, overall.Severity)
	assert.Equal(t, 1.0, overall.Score)
	assert.Equal(t, 1.0, overall.Confidence)
	assert.Equal(t, []string{"manual trigger"}, overall.Factors)
}

func TestClassify_ScoreFormula(t *testing.T) {
	// Подготовка: prob 0.5, агрегат 50 -> 0.5*0.6 + 0.5*0.4 = 0.5
	classifier := NewRiskClassifier(testConfig())
	assessment := &models.RiskAssessment{
		EmergencyProbability: 0.5,
		Confidence:           0.5,
		RiskFactors:          []string{"abnormal heart rate"},
	}
	location := &models.LocationRisk{Aggregate: 50}

	// Действие
	overall := classifier.Classify(assessment, location, false)

	// Проверки
	assert.InDelta(t, 0.5, overall.Score, 1e-9)
	assert.Equal(t, models.SeverityModerate, overall.Severity)
	assert.Equal(t, 0.5, overall.Confidence)
	assert.Equal(t, []string{"abnormal heart rate"}, overall.Factors)
}

func TestClassify_SeverityTiers(t *testing.T) {
	// Пороги строгие: значение ровно на границе падает на нижний уровень
	tests := []struct {
		name     string
		prob     float64
		expected models.Severity
	}{
		{"zero score", 0, models.SeverityMinimal},
		{"exactly low boundary", 0.2, models.SeverityMinimal},
		{"just above low boundary", 0.21, models.SeverityLow},
		{"exactly moderate boundary", 0.4, models.SeverityLow},
		{"just above moderate boundary", 0.41, models.SeverityModerate},
		{"exactly high boundary", 0.6, models.SeverityModerate},
		{"just above high boundary", 0.61, models.SeverityHigh},
		{"exactly critical boundary", 0.8, models.SeverityHigh},
		{"just above critical boundary", 0.81, models.SeverityCritical},
		{"maximum score", 1.0, models.SeverityCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewRiskClassifier(testConfig())
			// Агрегат prob*100 дает score = prob*0.6 + prob*0.4 = prob
			assessment := &models.RiskAssessment{EmergencyProbability: tt.prob}
			location := &models.LocationRisk{Aggregate: tt.prob * 100}

			overall := classifier.Classify(assessment, location, false)

			assert.Equal(t, tt.expected, overall.Severity, "score %.2f", overall.Score)
		})
	}
}

func TestClassify_QuietInputs_Minimal(t *testing.T) {
	// Подготовка: полностью спокойные входы
	classifier := NewRiskClassifier(testConfig())

	overall := classifier.Classify(&models.RiskAssessment{}, &models.LocationRisk{}, false)

	assert.Equal(t, models.SeverityMinimal, overall.Severity)
	assert.Zero(t, overall.Score)
	assert.Empty(t, overall.Factors)
}
