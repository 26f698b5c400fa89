package models

// RiskLevel - качественный уровень отдельного фактора риска
type RiskLevel string

const (
	RiskLevelLow     RiskLevel = "low"
	RiskLevelMedium  RiskLevel = "medium"
	RiskLevelHigh    RiskLevel = "high"
	RiskLevelUnknown RiskLevel = "unknown"
)

// FactorRisk - оценка одного внешнего фактора (преступность, погода и т.д.).
// При недоступности источника уровень unknown и нулевой балл.
type FactorRisk struct {
	Level RiskLevel `json:"level"`
	Score float64   `json:"score"`
}

// UnknownFactor возвращает деградированную оценку для недоступного источника
func UnknownFactor() FactorRisk {
	return FactorRisk{Level: RiskLevelUnknown, Score: 0}
}

// LocationRisk - совокупная оценка риска местоположения по четырем
// независимым источникам. Aggregate в диапазоне 0-100.
type LocationRisk struct {
	Crime             FactorRisk `json:"crime"`
	Weather           FactorRisk `json:"weather"`
	Isolation         FactorRisk `json:"isolation"`
	EmergencyServices FactorRisk `json:"emergency_services"`
	Aggregate         float64    `json:"aggregate"`
}

// OverallRisk - итог классификации: уровень серьезности, численный балл
// в [0,1], перечень факторов и уверенность.
type OverallRisk struct {
	Severity   Severity `json:"severity"`
	Score      float64  `json:"score"`
	Factors    []string `json:"factors"`
	Confidence float64  `json:"confidence"`
}
